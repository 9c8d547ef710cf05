package models

import "time"

const (
	TicketPending   = "Pending"
	TicketAccepted  = "Accepted"
	TicketDeclined  = "Declined"
	TicketReady     = "Ready" // takeout only
	TicketCompleted = "Completed"
)

// OrderTicket is one batch of items submitted together. Dine-in tickets
// always reference a session; takeout tickets stand alone.
type OrderTicket struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	SessionID    *uint         `gorm:"index" json:"session_id,omitempty"`
	Session      *TableSession `gorm:"foreignKey:SessionID" json:"-"`
	IsTakeout    bool          `gorm:"not null;default:false" json:"is_takeout"`
	TicketNumber string        `gorm:"type:varchar(20);not null;unique" json:"ticket_number"`
	Status       string        `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	TotalAmount  float64       `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
	Items        []OrderItem   `gorm:"foreignKey:TicketID" json:"items,omitempty"`
}
