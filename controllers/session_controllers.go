package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/events"
	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/services"
	"github.com/Poopyy17/Wings/utils"
)

type SessionController struct {
	DB        *gorm.DB
	ledger    *services.SessionLedger
	finalizer *services.PaymentFinalizer
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{
		DB:        db,
		ledger:    services.NewSessionLedger(db),
		finalizer: services.NewPaymentFinalizer(db),
	}
}

// CreateSession -> claim a table for a dine-in visit
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req struct {
		TableID        uint   `json:"table_id" binding:"required"`
		ServiceType    string `json:"service_type" binding:"required"`
		OccupancyCount int    `json:"occupancy_count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := sc.ledger.StartSession(req.TableID, req.ServiceType, req.OccupancyCount)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	events.BroadcastSessionUpdate(*session)

	var table models.Table
	if err := sc.DB.First(&table, session.TableID).Error; err == nil {
		events.BroadcastTableUpdate(table)
	}

	utils.InfoLogger.Printf("Session %d started on table %d (%s, %d pax)",
		session.ID, session.TableID, session.ServiceType, session.OccupancyCount)
	utils.RespondJSON(c, http.StatusCreated, "Table session created successfully", session)
}

// GetActiveSessions -> all Active sessions with reconciled totals
func (sc *SessionController) GetActiveSessions(c *gin.Context) {
	sessions, err := sc.ledger.ActiveSessions()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active sessions", sessions)
}

// GetSessionByID -> one session, total recomputed from non-declined tickets
func (sc *SessionController) GetSessionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session, err := sc.ledger.GetSession(uint(id))
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session detail", session)
}

// PaySession -> settle the whole visit and release the table
func (sc *SessionController) PaySession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
		ProcessedBy   *uint  `json:"processed_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := sc.finalizer.PaySession(uint(id), req.PaymentMethod, req.ProcessedBy)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	events.BroadcastPaymentUpdate(*payment)
	if session, err := sc.ledger.GetSession(uint(id)); err == nil {
		events.BroadcastSessionUpdate(*session)
		var table models.Table
		if err := sc.DB.First(&table, session.TableID).Error; err == nil {
			events.BroadcastTableUpdate(table)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Payment processed successfully", payment)
}
