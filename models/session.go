package models

import "time"

const (
	ServiceUnliwings = "Unliwings"
	ServiceAlaCarte  = "Ala-carte"

	SessionActive    = "Active"
	SessionCompleted = "Completed"
	SessionPaid      = "Paid"
)

// TableSession covers one dine-in visit: a table is claimed, tickets
// accumulate against the session, and payment closes it out and frees the
// table. The unliwings charge is frozen at creation; TotalAmount is a
// display cache and must always be recomputable from non-declined tickets.
type TableSession struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	TableID              uint       `gorm:"not null;index" json:"table_id"`
	Table                Table      `gorm:"foreignKey:TableID" json:"-"`
	ServiceType          string     `gorm:"type:varchar(20);not null" json:"service_type"`
	OccupancyCount       int        `gorm:"not null" json:"occupancy_count"`
	Status               string     `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	UnliwingsBasePrice   *float64   `gorm:"type:decimal(10,2)" json:"unliwings_base_price,omitempty"`
	UnliwingsTotalCharge *float64   `gorm:"type:decimal(10,2)" json:"unliwings_total_charge,omitempty"`
	TotalAmount          float64    `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	IsPaid               bool       `gorm:"not null;default:false" json:"is_paid"`
	PaymentMethod        *string    `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentDate          *time.Time `json:"payment_date,omitempty"`
	StartedAt            time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	CreatedAt            time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"not null" json:"updated_at"`

	// Filled on reads with extra table context.
	TableNumber string `gorm:"-" json:"table_number,omitempty"`
	TableStatus string `gorm:"-" json:"table_status,omitempty"`
}
