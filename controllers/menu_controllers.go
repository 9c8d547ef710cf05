package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllCategories -> catalog categories in display order
func (mc *MenuController) GetAllCategories(c *gin.Context) {
	var categories []models.MenuCategory
	if err := mc.DB.Order("display_order").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu categories", categories)
}

// GetCategoryItems -> items of one category
func (mc *MenuController) GetCategoryItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Where("category_id = ?", c.Param("id")).
		Order("name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category items", items)
}

// GetAllItems -> the whole menu
func (mc *MenuController) GetAllItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category_id, name").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// GetAllFlavors -> wing flavor catalog
func (mc *MenuController) GetAllFlavors(c *gin.Context) {
	var flavors []models.WingFlavor
	if err := mc.DB.Order("name").Find(&flavors).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Wing flavors", flavors)
}

// UpdateItemAvailability -> kitchen marks an item in/out of stock
func (mc *MenuController) UpdateItemAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item.IsAvailable = *req.IsAvailable
	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// UpdateFlavorAvailability -> kitchen marks a flavor in/out of stock
func (mc *MenuController) UpdateFlavorAvailability(c *gin.Context) {
	var req struct {
		IsAvailable *bool `json:"is_available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var flavor models.WingFlavor
	if err := mc.DB.First(&flavor, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("flavor not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	flavor.IsAvailable = *req.IsAvailable
	if err := mc.DB.Save(&flavor).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Flavor updated", flavor)
}
