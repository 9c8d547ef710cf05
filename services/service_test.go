package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.WingFlavor{},
		&models.TableSession{},
		&models.OrderTicket{},
		&models.OrderItem{},
		&models.OrderItemFlavor{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTable(t *testing.T, db *gorm.DB, number string) models.Table {
	t.Helper()
	table := models.Table{TableNumber: number, Status: models.TableAvailable}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}

func seedCatalog(t *testing.T, db *gorm.DB) models.MenuItem {
	t.Helper()
	category := models.MenuCategory{Name: "Ala Carte Wings", DisplayOrder: 1}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	item := models.MenuItem{
		Name:        "6pcs Wings",
		Price:       169,
		CategoryID:  category.ID,
		IsAvailable: true,
		IsWingItem:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}

	flavors := []models.WingFlavor{
		{Name: "Soy Garlic", IsAvailable: true},
		{Name: "Honey Garlic", IsAvailable: true},
	}
	if err := db.Create(&flavors).Error; err != nil {
		t.Fatalf("failed to seed flavors: %v", err)
	}
	return item
}

func startAlaCarteSession(t *testing.T, db *gorm.DB, tableID uint) *models.TableSession {
	t.Helper()
	session, err := NewSessionLedger(db).StartSession(tableID, models.ServiceAlaCarte, 2)
	if err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	return session
}

func uintPtr(v uint) *uint { return &v }
