package config

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

func intPtr(v int) *int { return &v }

// Seed loads the catalog, tables, and a default admin on first boot.
// Safe to run on every start: it skips anything already present.
func Seed(db *gorm.DB) error {
	var tableCount int64
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount > 0 {
		return nil
	}

	categories := []models.MenuCategory{
		{Name: "Unliwings", DisplayOrder: 1},
		{Name: "Ala Carte Wings", DisplayOrder: 2},
		{Name: "Rice Meals", DisplayOrder: 3},
		{Name: "Nachos", DisplayOrder: 4},
		{Name: "Fries", DisplayOrder: 5},
		{Name: "Extras", DisplayOrder: 6},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	categoryID := make(map[string]uint, len(categories))
	for _, cat := range categories {
		categoryID[cat.Name] = cat.ID
	}

	flavorNames := []string{
		"Soy Garlic", "Honey Garlic", "Spicy Buffalo", "Honey Butter",
		"Honey Mustard", "Garlic Parmesan", "Wings Express Signature",
		"Salted Egg", "Spicy Teriyaki", "Teriyaki", "Lemon Glazed",
		"Sweet Chili", "Garlic Butter", "Spicy BBQ", "Cheesy Cheese",
		"Chili Cheese", "Salt and Pepper",
	}
	flavors := make([]models.WingFlavor, 0, len(flavorNames))
	for _, name := range flavorNames {
		flavors = append(flavors, models.WingFlavor{Name: name, IsAvailable: true})
	}
	if err := db.Create(&flavors).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{Name: "Unliwings", Description: "Unlimited wings with 17 different flavors", Price: 289, CategoryID: categoryID["Unliwings"], IsAvailable: true, IsWingItem: true, IsUnliEligible: true},
		{Name: "3pcs Wings", Description: "3 pieces of wings (1 flavor)", Price: 109, CategoryID: categoryID["Ala Carte Wings"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(3), MaxFlavorCount: intPtr(1)},
		{Name: "6pcs Wings", Description: "6 pieces of wings (2 flavors)", Price: 169, CategoryID: categoryID["Ala Carte Wings"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(6), MaxFlavorCount: intPtr(2)},
		{Name: "12pcs Wings", Description: "12 pieces of wings (3 flavors)", Price: 299, CategoryID: categoryID["Ala Carte Wings"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(12), MaxFlavorCount: intPtr(3)},
		{Name: "24pcs Wings", Description: "24 pieces of wings (6 flavors)", Price: 559, CategoryID: categoryID["Ala Carte Wings"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(24), MaxFlavorCount: intPtr(6)},
		{Name: "36pcs Wings", Description: "36 pieces of wings (9 flavors)", Price: 849, CategoryID: categoryID["Ala Carte Wings"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(36), MaxFlavorCount: intPtr(9)},
		{Name: "3pcs Wings with Rice", Description: "3 pieces of wings with 1 cup of rice", Price: 119, CategoryID: categoryID["Rice Meals"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(3), MaxFlavorCount: intPtr(1)},
		{Name: "6pcs Wings with 1 Rice", Description: "6 pieces of wings with 1 cup of rice", Price: 179, CategoryID: categoryID["Rice Meals"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(6), MaxFlavorCount: intPtr(2)},
		{Name: "6pcs Wings with 2 Rice", Description: "6 pieces of wings with 2 cups of rice", Price: 189, CategoryID: categoryID["Rice Meals"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(6), MaxFlavorCount: intPtr(2)},
		{Name: "12pcs Wings with 2 Rice", Description: "12 pieces of wings with 2 cups of rice", Price: 319, CategoryID: categoryID["Rice Meals"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(12), MaxFlavorCount: intPtr(3)},
		{Name: "24pcs Wings with 2 Rice", Description: "24 pieces of wings with 2 cups of rice", Price: 619, CategoryID: categoryID["Rice Meals"], IsAvailable: true, IsWingItem: true, PortionSize: intPtr(24), MaxFlavorCount: intPtr(6)},
		{Name: "Nuggets with Rice", Description: "Chicken nuggets with rice", Price: 119, CategoryID: categoryID["Rice Meals"], IsAvailable: true},
		{Name: "Cheesy Nachos", Description: "Nachos with cheese sauce", Price: 89, CategoryID: categoryID["Nachos"], IsAvailable: true},
		{Name: "Overload Nachos", Description: "Nachos with special toppings", Price: 99, CategoryID: categoryID["Nachos"], IsAvailable: true},
		{Name: "Plain Fries", Description: "Classic french fries", Price: 49, CategoryID: categoryID["Fries"], IsAvailable: true},
		{Name: "Cheese Fries", Description: "Fries with cheese flavor", Price: 59, CategoryID: categoryID["Fries"], IsAvailable: true},
		{Name: "Sour Cream Fries", Description: "Fries with sour cream flavor", Price: 59, CategoryID: categoryID["Fries"], IsAvailable: true},
		{Name: "BBQ Fries", Description: "Fries with BBQ flavor", Price: 59, CategoryID: categoryID["Fries"], IsAvailable: true},
		{Name: "Extra Rice", Description: "1 cup of rice", Price: 25, CategoryID: categoryID["Extras"], IsAvailable: true},
		{Name: "Soft Drinks", Description: "Assorted soft drinks", Price: 35, CategoryID: categoryID["Extras"], IsAvailable: true},
		{Name: "Ketchup", Description: "Tomato ketchup", Price: 15, CategoryID: categoryID["Extras"], IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	tables := make([]models.Table, 0, 6)
	for i := 1; i <= 6; i++ {
		tables = append(tables, models.Table{
			TableNumber: strconv.Itoa(i),
			Status:      models.TableAvailable,
		})
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(envOr("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{Username: "admin", Password: string(hashed), Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Println("Database seeded")
	}
	return nil
}
