package models

import "time"

// Payment records exactly one settlement: a whole dine-in session, or a
// single takeout ticket. Exactly one of SessionID / TicketID /
// TakeOutOrderID is non-null; the finalizer's check-then-insert keeps it
// to at most one row per settled entity.
type Payment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SessionID      *uint     `gorm:"index" json:"session_id,omitempty"`
	TicketID       *uint     `gorm:"index" json:"ticket_id,omitempty"`
	TakeOutOrderID *uint     `gorm:"index" json:"take_out_order_id,omitempty"`
	AmountPaid     float64   `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	PaymentMethod  string    `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentDate    time.Time `gorm:"not null" json:"payment_date"`
	ProcessedBy    *uint     `json:"processed_by,omitempty"`
}
