package models

// WingFlavor is the catalog of sauces a wing item can be tossed in.
// OrderCount is an advisory statistic, bumped inside the ticket transaction.
type WingFlavor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50);not null;unique" json:"name"`
	IsAvailable bool   `gorm:"not null;default:true" json:"is_available"`
	OrderCount  int    `gorm:"not null;default:0" json:"order_count"`
}
