package models

import "time"

const (
	TableAvailable  = "Available"
	TableOccupied   = "Occupied"
	TableForPayment = "For Payment"
)

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"type:varchar(20);not null;unique" json:"table_number"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	QRCodePath  string    `gorm:"type:varchar(255)" json:"qr_code_path"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// ValidTableStatus reports whether s is one of the statuses a table may hold.
func ValidTableStatus(s string) bool {
	return s == TableAvailable || s == TableOccupied || s == TableForPayment
}
