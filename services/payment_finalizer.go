package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/utils"
)

// PaymentFinalizer atomically closes out a session or a takeout ticket.
// Every path is a single transaction; a failure anywhere leaves the settled
// flags and amount-due computation untouched.
type PaymentFinalizer struct {
	DB *gorm.DB
}

func NewPaymentFinalizer(db *gorm.DB) *PaymentFinalizer {
	return &PaymentFinalizer{DB: db}
}

// PaySession settles a dine-in session: amount due is the recomputed sum of
// non-declined tickets plus the frozen unliwings charge. The session flips
// to Paid, exactly one payment row is written, and the table is released.
func (pf *PaymentFinalizer) PaySession(sessionID uint, paymentMethod string, processedBy *uint) (*models.Payment, error) {
	var payment models.Payment
	err := pf.DB.Transaction(func(tx *gorm.DB) error {
		var session models.TableSession
		if err := tx.First(&session, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
			}
			return err
		}
		if session.IsPaid {
			return ErrAlreadyPaid
		}

		itemsTotal, err := currentTotal(tx, session.ID)
		if err != nil {
			return err
		}
		amountDue := itemsTotal
		if session.UnliwingsTotalCharge != nil {
			amountDue += *session.UnliwingsTotalCharge
		}

		now := time.Now()
		session.Status = models.SessionPaid
		session.IsPaid = true
		session.PaymentMethod = &paymentMethod
		session.PaymentDate = &now
		session.CompletedAt = &now
		session.TotalAmount = itemsTotal
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		sid := session.ID
		payment = models.Payment{
			SessionID:     &sid,
			AmountPaid:    amountDue,
			PaymentMethod: paymentMethod,
			PaymentDate:   now,
			ProcessedBy:   processedBy,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Table{}).
			Where("id = ?", session.TableID).
			Updates(map[string]interface{}{
				"status":     models.TableAvailable,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		if utils.InfoLogger != nil {
			utils.InfoLogger.Printf("session %d settled for %s (%s)", session.ID, utils.FormatCurrencyPHP(amountDue), paymentMethod)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// PayTakeoutTicket settles a standalone takeout ticket: marks it Completed
// and records the payment. Safe to call twice — the second call finds the
// existing payment row and changes nothing.
func (pf *PaymentFinalizer) PayTakeoutTicket(ticketID uint, paymentMethod string, processedBy *uint) (*models.Payment, error) {
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	var payment *models.Payment
	err := pf.DB.Transaction(func(tx *gorm.DB) error {
		var ticket models.OrderTicket
		if err := tx.Where("id = ? AND is_takeout = ?", ticketID, true).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: takeout order %d", ErrNotFound, ticketID)
			}
			return err
		}

		if ticket.Status != models.TicketCompleted {
			ticket.Status = models.TicketCompleted
			ticket.UpdatedAt = time.Now()
			if err := tx.Save(&ticket).Error; err != nil {
				return err
			}
		}

		recorded, err := recordTakeoutPayment(tx, &ticket, paymentMethod, processedBy)
		if err != nil {
			return err
		}
		payment = recorded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// recordTakeoutPayment is the single idempotent check-then-insert for
// takeout settlement. Both the explicit payment endpoint and the
// Completed status transition funnel through here, so double entry cannot
// produce a second row.
func recordTakeoutPayment(tx *gorm.DB, ticket *models.OrderTicket, paymentMethod string, processedBy *uint) (*models.Payment, error) {
	var existing models.Payment
	err := tx.Where("take_out_order_id = ?", ticket.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tid := ticket.ID
	payment := models.Payment{
		TakeOutOrderID: &tid,
		AmountPaid:     ticket.TotalAmount,
		PaymentMethod:  paymentMethod,
		PaymentDate:    time.Now(),
		ProcessedBy:    processedBy,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}
