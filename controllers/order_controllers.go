package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/events"
	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/services"
	"github.com/Poopyy17/Wings/utils"
)

type OrderController struct {
	DB        *gorm.DB
	builder   *services.TicketBuilder
	engine    *services.StatusEngine
	finalizer *services.PaymentFinalizer
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		builder:   services.NewTicketBuilder(db),
		engine:    services.NewStatusEngine(db),
		finalizer: services.NewPaymentFinalizer(db),
	}
}

// orderItemReq accepts both the dine-in shape ("id") and the takeout shape
// ("menu_item_id") for the catalog reference.
type orderItemReq struct {
	ID          *uint    `json:"id"`
	MenuItemID  *uint    `json:"menu_item_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Flavors     []string `json:"flavors"`
	IsUnliwings bool     `json:"is_unliwings"`
	Notes       *string  `json:"notes"`
}

func (r *orderItemReq) toInput() services.TicketItemInput {
	menuID := r.MenuItemID
	if menuID == nil {
		menuID = r.ID
	}
	return services.TicketItemInput{
		MenuItemID:  menuID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Flavors:     r.Flavors,
		IsUnliwings: r.IsUnliwings,
		Notes:       r.Notes,
	}
}

func toInputs(items []orderItemReq) []services.TicketItemInput {
	inputs := make([]services.TicketItemInput, 0, len(items))
	for i := range items {
		inputs = append(inputs, items[i].toInput())
	}
	return inputs
}

// CreateTicket -> submit one batch of items against a dine-in session
func (oc *OrderController) CreateTicket(c *gin.Context) {
	var req struct {
		SessionID *uint          `json:"sessionId"`
		Items     []orderItemReq `json:"items"`
		IsTakeout bool           `json:"isTakeout"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	receipt, err := oc.builder.CreateTicket(req.SessionID, toInputs(req.Items), req.IsTakeout)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	oc.broadcastTicket(receipt.TicketID)
	utils.InfoLogger.Printf("Ticket %s created, total %s", receipt.TicketNumber, utils.FormatCurrencyPHP(receipt.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", receipt)
}

// CreateTakeoutOrder -> standalone ticket, no session
func (oc *OrderController) CreateTakeoutOrder(c *gin.Context) {
	var req struct {
		Items []orderItemReq `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	receipt, err := oc.builder.CreateTicket(nil, toInputs(req.Items), true)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	oc.broadcastTicket(receipt.TicketID)
	utils.InfoLogger.Printf("Take-out order %s created, total %s", receipt.TicketNumber, utils.FormatCurrencyPHP(receipt.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Take-out order created successfully", gin.H{
		"id":          receipt.TicketID,
		"orderNumber": receipt.TicketNumber,
		"totalAmount": receipt.TotalAmount,
	})
}

type statusReq struct {
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	ProcessedBy   *uint  `json:"processed_by"`
}

// UpdateTicketStatus -> staff accept/decline/complete a dine-in ticket
func (oc *OrderController) UpdateTicketStatus(c *gin.Context) {
	oc.updateStatus(c, false)
}

// UpdateTakeoutStatus -> same flow with the takeout-only status set (Ready)
func (oc *OrderController) UpdateTakeoutStatus(c *gin.Context) {
	oc.updateStatus(c, true)
}

func (oc *OrderController) updateStatus(c *gin.Context, takeoutOnly bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ticket, err := oc.engine.SetTicketStatus(uint(id), req.Status, req.PaymentMethod, req.ProcessedBy, takeoutOnly)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	events.BroadcastTicketUpdate(*ticket)
	utils.InfoLogger.Printf("Ticket %s status -> %s", ticket.TicketNumber, ticket.Status)
	utils.RespondJSON(c, http.StatusOK, "Ticket status updated to "+ticket.Status, ticket)
}

// PayTakeoutOrder -> explicit settlement endpoint for a takeout ticket
func (oc *OrderController) PayTakeoutOrder(c *gin.Context) {
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

	payment, err := oc.finalizer.PayTakeoutTicket(uint(id), req.PaymentMethod, req.ProcessedBy)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	events.BroadcastPaymentUpdate(*payment)
	oc.broadcastTicket(uint(id))
	utils.RespondJSON(c, http.StatusOK, "Take-out payment processed successfully", payment)
}

// GetSessionTickets -> every ticket of a session, items and flavors included
func (oc *OrderController) GetSessionTickets(c *gin.Context) {
	sessionID := c.Param("id")

	var tickets []models.OrderTicket
	if err := oc.DB.Preload("Items.Flavors.Flavor").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Session tickets", tickets)
}

// GetTicketByID -> one ticket with its lines
func (oc *OrderController) GetTicketByID(c *gin.Context) {
	id := c.Param("id")

	var ticket models.OrderTicket
	if err := oc.DB.Preload("Items.Flavors.Flavor").First(&ticket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("ticket not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Ticket detail", ticket)
}

// GetTakeoutOrders -> take-out tickets, optional created_at range filter
func (oc *OrderController) GetTakeoutOrders(c *gin.Context) {
	query := oc.DB.Where("is_takeout = ?", true)
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		query = query.Where("created_at BETWEEN ? AND ?", start, end)
	}

	var tickets []models.OrderTicket
	if err := query.Order("created_at DESC").Find(&tickets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Take-out orders", tickets)
}

// GetTakeoutOrderByID -> one take-out ticket with items and flavors
func (oc *OrderController) GetTakeoutOrderByID(c *gin.Context) {
	id := c.Param("id")

	var ticket models.OrderTicket
	if err := oc.DB.Preload("Items.Flavors.Flavor").
		Where("id = ? AND is_takeout = ?", id, true).
		First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("take-out order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Take-out order detail", ticket)
}

// GetCompletedOrders -> completed tickets of either kind, newest first
func (oc *OrderController) GetCompletedOrders(c *gin.Context) {
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	query := oc.DB.Preload("Items.Flavors.Flavor").
		Where("status = ?", models.TicketCompleted)
	if start, end := c.Query("startDate"), c.Query("endDate"); start != "" && end != "" {
		query = query.Where("updated_at BETWEEN ? AND ?", start, end)
	}

	var tickets []models.OrderTicket
	if err := query.Order("updated_at DESC").Limit(limit).Find(&tickets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Completed orders", tickets)
}

// GetAllPayments -> admin overview of every settlement
func (oc *OrderController) GetAllPayments(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" && role != "cashier" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var payments []models.Payment
	if err := oc.DB.Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All payments retrieved", payments)
}

func (oc *OrderController) broadcastTicket(ticketID uint) {
	var ticket models.OrderTicket
	if err := oc.DB.Preload("Items").First(&ticket, ticketID).Error; err == nil {
		events.BroadcastTicketUpdate(ticket)
	}
}
