package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

// TicketBuilder validates and prices an incoming batch of items into a
// persisted ticket with its line items and flavor selections. Everything —
// ticket, items, flavors, counters, the session total bump — commits in a
// single transaction or not at all.
type TicketBuilder struct {
	DB *gorm.DB
}

func NewTicketBuilder(db *gorm.DB) *TicketBuilder {
	return &TicketBuilder{DB: db}
}

// TicketItemInput is one requested line. The unliwings placeholder is an
// explicit flag: placeholder lines are priced at zero and stored without a
// menu reference, and they never bump a real item's order count.
type TicketItemInput struct {
	MenuItemID  *uint    `json:"menu_item_id,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Flavors     []string `json:"flavors,omitempty"`
	IsUnliwings bool     `json:"is_unliwings,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// TicketReceipt is what order submission hands back to the customer UI.
type TicketReceipt struct {
	TicketID     uint    `json:"ticketId"`
	TicketNumber string  `json:"ticketNumber"`
	TotalAmount  float64 `json:"totalAmount"`
}

// CreateTicket builds a dine-in ticket against an Active session, or a
// standalone takeout ticket when sessionID is nil and isTakeout is set.
func (tb *TicketBuilder) CreateTicket(sessionID *uint, items []TicketItemInput, isTakeout bool) (*TicketReceipt, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items array is required", ErrInvalidInput)
	}
	if !isTakeout && sessionID == nil {
		return nil, fmt.Errorf("%w: sessionId is required for dine-in orders", ErrInvalidInput)
	}
	for i := range items {
		if items[i].Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has quantity below 1", ErrInvalidInput, i)
		}
		if items[i].Price < 0 {
			return nil, fmt.Errorf("%w: item %d has a negative price", ErrInvalidInput, i)
		}
	}

	var receipt TicketReceipt
	err := tb.DB.Transaction(func(tx *gorm.DB) error {
		if sessionID != nil {
			var session models.TableSession
			if err := tx.First(&session, *sessionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: session %d", ErrNotFound, *sessionID)
				}
				return err
			}
			if session.Status != models.SessionActive {
				return fmt.Errorf("%w: session %d", ErrSessionNotActive, *sessionID)
			}
		}

		ticketNumber, err := allocateTicketNumber(tx, isTakeout)
		if err != nil {
			return err
		}

		var total float64
		for i := range items {
			price := items[i].Price
			if items[i].IsUnliwings {
				price = 0
			}
			total += price * float64(items[i].Quantity)
		}

		ticket := models.OrderTicket{
			SessionID:    sessionID,
			IsTakeout:    isTakeout,
			TicketNumber: ticketNumber,
			Status:       models.TicketPending,
			TotalAmount:  total,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}

		for i := range items {
			if err := tb.createLine(tx, ticket.ID, &items[i]); err != nil {
				return err
			}
		}

		if sessionID != nil {
			if err := applyTicketDelta(tx, *sessionID, total); err != nil {
				return err
			}
		}

		receipt = TicketReceipt{
			TicketID:     ticket.ID,
			TicketNumber: ticket.TicketNumber,
			TotalAmount:  ticket.TotalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// createLine persists one item row plus its flavor rows and counter bumps.
func (tb *TicketBuilder) createLine(tx *gorm.DB, ticketID uint, in *TicketItemInput) error {
	price := in.Price
	menuItemID := in.MenuItemID
	if in.IsUnliwings {
		// Placeholder line: no catalog identity, nothing to charge here.
		price = 0
		menuItemID = nil
	}

	name, err := resolveItemName(tx, in, menuItemID)
	if err != nil {
		return err
	}

	item := models.OrderItem{
		TicketID:    ticketID,
		MenuItemID:  menuItemID,
		ItemName:    name,
		UnitPrice:   price,
		Quantity:    in.Quantity,
		Subtotal:    price * float64(in.Quantity),
		IsUnliwings: in.IsUnliwings,
		Notes:       in.Notes,
	}
	if err := tx.Create(&item).Error; err != nil {
		return err
	}

	for _, flavorName := range in.Flavors {
		var flavor models.WingFlavor
		if err := tx.Where("name = ?", flavorName).First(&flavor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Lenient policy: an unknown flavor name is dropped rather
				// than failing the whole ticket.
				if utils.InfoLogger != nil {
					utils.InfoLogger.Printf("skipping unknown flavor %q on ticket %d", flavorName, ticketID)
				}
				continue
			}
			return err
		}

		selection := models.OrderItemFlavor{
			OrderItemID: item.ID,
			FlavorID:    flavor.ID,
			Quantity:    1,
		}
		if err := tx.Create(&selection).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.WingFlavor{}).
			Where("id = ?", flavor.ID).
			UpdateColumn("order_count", gorm.Expr("order_count + 1")).Error; err != nil {
			return err
		}
	}

	if menuItemID != nil {
		if err := tx.Model(&models.MenuItem{}).
			Where("id = ?", *menuItemID).
			Updates(map[string]interface{}{
				"order_count": gorm.Expr("order_count + ?", in.Quantity),
				"updated_at":  time.Now(),
			}).Error; err != nil {
			return err
		}
	}
	return nil
}

// resolveItemName falls back to the catalog name when the request omits one.
func resolveItemName(tx *gorm.DB, in *TicketItemInput, menuItemID *uint) (string, error) {
	if in.Name != "" {
		return in.Name, nil
	}
	if in.IsUnliwings {
		return "Unliwings", nil
	}
	if menuItemID != nil {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, *menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Sprintf("Item #%d", *menuItemID), nil
			}
			return "", err
		}
		return menuItem.Name, nil
	}
	return "Unnamed Item", nil
}
