package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
)

// StatusEngine drives ticket status changes and the side effects each
// transition carries: declining a dine-in ticket subtracts it from the
// session total, completing a takeout ticket settles it. Completing a
// dine-in ticket never creates a payment — dine-in money is settled once,
// session-wide, at checkout.
type StatusEngine struct {
	DB *gorm.DB
}

func NewStatusEngine(db *gorm.DB) *StatusEngine {
	return &StatusEngine{DB: db}
}

// Ready exists only on the takeout flow; Declined and Completed are
// terminal everywhere.
var (
	dineInTransitions = map[string][]string{
		models.TicketPending:  {models.TicketAccepted, models.TicketDeclined},
		models.TicketAccepted: {models.TicketCompleted},
	}
	takeoutTransitions = map[string][]string{
		models.TicketPending:  {models.TicketAccepted, models.TicketDeclined},
		models.TicketAccepted: {models.TicketReady, models.TicketCompleted},
		models.TicketReady:    {models.TicketCompleted},
	}
)

func validTicketStatus(status string, takeout bool) bool {
	switch status {
	case models.TicketPending, models.TicketAccepted, models.TicketDeclined, models.TicketCompleted:
		return true
	case models.TicketReady:
		return takeout
	}
	return false
}

func transitionAllowed(from, to string, takeout bool) bool {
	table := dineInTransitions
	if takeout {
		table = takeoutTransitions
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SetTicketStatus moves a ticket to newStatus, applying side effects in the
// same transaction. With takeoutOnly set, the lookup matches takeout
// tickets exclusively (the /orders/takeout surface).
func (se *StatusEngine) SetTicketStatus(ticketID uint, newStatus, paymentMethod string, processedBy *uint, takeoutOnly bool) (*models.OrderTicket, error) {
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	var updated models.OrderTicket
	err := se.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.OrderTicket
		query := tx.Where("id = ?", ticketID)
		if takeoutOnly {
			query = query.Where("is_takeout = ?", true)
		}
		if err := query.First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: ticket %d", ErrNotFound, ticketID)
			}
			return err
		}

		if !validTicketStatus(newStatus, ticket.IsTakeout) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
		}
		if !transitionAllowed(ticket.Status, newStatus, ticket.IsTakeout) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, ticket.Status, newStatus)
		}

		previous := ticket.Status
		ticket.Status = newStatus
		ticket.UpdatedAt = time.Now()
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}

		// A declined dine-in ticket no longer counts toward the session.
		if newStatus == models.TicketDeclined && previous != models.TicketDeclined &&
			!ticket.IsTakeout && ticket.SessionID != nil {
			if err := applyTicketDelta(tx, *ticket.SessionID, -ticket.TotalAmount); err != nil {
				return err
			}
		}

		// Completing a takeout ticket settles it on the spot.
		if newStatus == models.TicketCompleted && previous != models.TicketCompleted && ticket.IsTakeout {
			if _, err := recordTakeoutPayment(tx, &ticket, paymentMethod, processedBy); err != nil {
				return err
			}
		}

		updated = ticket
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
