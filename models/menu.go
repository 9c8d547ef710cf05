package models

import "time"

type MenuCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"type:varchar(50);not null;unique" json:"name"`
	DisplayOrder int    `gorm:"not null" json:"display_order"`
}

type MenuItem struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"type:varchar(100);not null" json:"name"`
	Description    string       `gorm:"type:text" json:"description"`
	Price          float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID     uint         `gorm:"not null" json:"category_id"`
	Category       MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	IsAvailable    bool         `gorm:"not null;default:true" json:"is_available"`
	IsWingItem     bool         `gorm:"not null;default:false" json:"is_wing_item"`
	IsUnliEligible bool         `gorm:"not null;default:false" json:"is_unli_eligible"`
	PortionSize    *int         `json:"portion_size,omitempty"`
	MaxFlavorCount *int         `json:"max_flavor_count,omitempty"`
	OrderCount     int          `gorm:"not null;default:0" json:"order_count"`
	CreatedAt      time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null" json:"updated_at"`
}
