package models

import "time"

// OrderItem is one priced line of a ticket. Name and unit price are
// snapshotted at order time so later menu edits never alter old tickets.
// The unliwings placeholder line carries no menu reference at all.
type OrderItem struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	TicketID    uint              `gorm:"not null;index" json:"ticket_id"`
	Ticket      OrderTicket       `gorm:"foreignKey:TicketID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID  *uint             `json:"menu_item_id,omitempty"`
	ItemName    string            `gorm:"type:varchar(100);not null" json:"item_name"`
	UnitPrice   float64           `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int               `gorm:"not null;default:1" json:"quantity"`
	Subtotal    float64           `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	IsUnliwings bool              `gorm:"not null;default:false" json:"is_unliwings"`
	Notes       *string           `gorm:"type:text" json:"notes,omitempty"`
	Flavors     []OrderItemFlavor `gorm:"foreignKey:OrderItemID" json:"flavors,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
}

type OrderItemFlavor struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrderItemID uint       `gorm:"not null;index" json:"order_item_id"`
	FlavorID    uint       `gorm:"not null" json:"flavor_id"`
	Flavor      WingFlavor `gorm:"foreignKey:FlavorID" json:"flavor"`
	Quantity    int        `gorm:"not null;default:1" json:"quantity"`
}
