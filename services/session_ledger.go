package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
)

const defaultUnliwingsBasePrice = 289.0

// SessionLedger owns the dine-in session lifecycle and the session's
// running total. The stored total_amount column is only a cache: every
// read and every payment recomputes the figure from non-declined tickets,
// which keeps the cache self-healing after partial failures.
type SessionLedger struct {
	DB *gorm.DB
}

func NewSessionLedger(db *gorm.DB) *SessionLedger {
	return &SessionLedger{DB: db}
}

// UnliwingsBasePrice is the flat per-person rate for unlimited wings,
// overridable via UNLIWINGS_BASE_PRICE.
func UnliwingsBasePrice() float64 {
	if v := os.Getenv("UNLIWINGS_BASE_PRICE"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil && price > 0 {
			return price
		}
	}
	return defaultUnliwingsBasePrice
}

// StartSession claims a table for a new dine-in visit. For unliwings
// service the total charge (base price x occupancy) is computed once here
// and never recomputed, regardless of later occupancy edits. A table with
// an Active session cannot be claimed again.
func (sl *SessionLedger) StartSession(tableID uint, serviceType string, occupancyCount int) (*models.TableSession, error) {
	if serviceType != models.ServiceUnliwings && serviceType != models.ServiceAlaCarte {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, serviceType)
	}
	if occupancyCount < 1 {
		return nil, fmt.Errorf("%w: occupancy count must be at least 1", ErrInvalidInput)
	}

	var session models.TableSession
	err := sl.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: table %d", ErrNotFound, tableID)
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.TableSession{}).
			Where("table_id = ? AND status = ?", tableID, models.SessionActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return fmt.Errorf("%w: table %s", ErrTableOccupied, table.TableNumber)
		}

		session = models.TableSession{
			TableID:        tableID,
			ServiceType:    serviceType,
			OccupancyCount: occupancyCount,
			Status:         models.SessionActive,
			StartedAt:      time.Now(),
		}
		if serviceType == models.ServiceUnliwings {
			base := UnliwingsBasePrice()
			charge := base * float64(occupancyCount)
			session.UnliwingsBasePrice = &base
			session.UnliwingsTotalCharge = &charge
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		table.Status = models.TableOccupied
		return tx.Save(&table).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// currentTotal recomputes a session's total from its non-declined tickets.
// This is the authoritative figure; the cached column is never trusted.
func currentTotal(tx *gorm.DB, sessionID uint) (float64, error) {
	var total float64
	err := tx.Model(&models.OrderTicket{}).
		Where("session_id = ? AND status <> ?", sessionID, models.TicketDeclined).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

// CurrentTotal exposes the recomputed non-declined ticket sum.
func (sl *SessionLedger) CurrentTotal(sessionID uint) (float64, error) {
	return currentTotal(sl.DB, sessionID)
}

// applyTicketDelta adjusts the cached running total. Invoked when a ticket
// joins the session or moves into Declined status.
func applyTicketDelta(tx *gorm.DB, sessionID uint, delta float64) error {
	return tx.Model(&models.TableSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"total_amount": gorm.Expr("total_amount + ?", delta),
			"updated_at":   time.Now(),
		}).Error
}

// GetSession returns one session with table context, total_amount
// overridden by the recomputed figure.
func (sl *SessionLedger) GetSession(sessionID uint) (*models.TableSession, error) {
	var session models.TableSession
	if err := sl.DB.Preload("Table").First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: session %d", ErrNotFound, sessionID)
		}
		return nil, err
	}

	total, err := currentTotal(sl.DB, session.ID)
	if err != nil {
		return nil, err
	}
	session.TotalAmount = total
	session.TableNumber = session.Table.TableNumber
	session.TableStatus = session.Table.Status
	return &session, nil
}

// ActiveSessions returns every Active session, newest first, each with its
// recomputed total.
func (sl *SessionLedger) ActiveSessions() ([]models.TableSession, error) {
	var sessions []models.TableSession
	if err := sl.DB.Preload("Table").
		Where("status = ?", models.SessionActive).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	for i := range sessions {
		total, err := currentTotal(sl.DB, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].TotalAmount = total
		sessions[i].TableNumber = sessions[i].Table.TableNumber
		sessions[i].TableStatus = sessions[i].Table.Status
	}
	return sessions, nil
}
