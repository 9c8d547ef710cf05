package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Poopyy17/Wings/models"
)

// Full dine-in walkthrough: claim a table, order, decline the ticket,
// settle the zero balance, table comes back.
func TestDineInLifecycle(t *testing.T) {
	db, r := setupTestServer(t)
	table, item := seedFixtures(t, db)

	// Claim the table.
	w, env := doRequest(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"table_id":        table.ID,
		"service_type":    "Ala-carte",
		"occupancy_count": 2,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var session models.TableSession
	decodeData(t, env, &session)
	assert.Equal(t, models.SessionActive, session.Status)

	// Same table cannot be claimed twice.
	w, _ = doRequest(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"table_id":        table.ID,
		"service_type":    "Ala-carte",
		"occupancy_count": 2,
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Submit one ticket.
	w, env = doRequest(t, r, http.MethodPost, "/api/orders/tickets", map[string]interface{}{
		"sessionId": session.ID,
		"items": []map[string]interface{}{
			{
				"id":       item.ID,
				"name":     "6pcs Wings",
				"price":    169,
				"quantity": 1,
				"flavors":  []string{"Soy Garlic", "Honey Garlic"},
			},
		},
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var receipt struct {
		TicketID     uint    `json:"ticketId"`
		TicketNumber string  `json:"ticketNumber"`
		TotalAmount  float64 `json:"totalAmount"`
	}
	decodeData(t, env, &receipt)
	assert.Equal(t, 169.0, receipt.TotalAmount)

	// The session now carries the ticket total.
	w, env = doRequest(t, r, http.MethodGet, sessionPath(session.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &session)
	assert.Equal(t, 169.0, session.TotalAmount)

	// Staff decline the ticket; the total falls back to zero.
	w, _ = doRequest(t, r, http.MethodPut, ticketStatusPath(receipt.TicketID), map[string]interface{}{
		"status": "Declined",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, r, http.MethodGet, sessionPath(session.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	decodeData(t, env, &session)
	assert.Equal(t, 0.0, session.TotalAmount)

	// Declining doesn't free the table; payment does.
	var occupied models.Table
	assert.NoError(t, db.First(&occupied, table.ID).Error)
	assert.Equal(t, models.TableOccupied, occupied.Status)

	w, env = doRequest(t, r, http.MethodPost, sessionPaymentPath(session.ID), map[string]interface{}{
		"payment_method": "Cash",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var payment models.Payment
	decodeData(t, env, &payment)
	assert.Equal(t, 0.0, payment.AmountPaid)

	var freed models.Table
	assert.NoError(t, db.First(&freed, table.ID).Error)
	assert.Equal(t, models.TableAvailable, freed.Status)

	// Settling twice is a conflict.
	w, _ = doRequest(t, r, http.MethodPost, sessionPaymentPath(session.ID), map[string]interface{}{
		"payment_method": "Cash",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateSessionValidation(t *testing.T) {
	_, r := setupTestServer(t)

	// Missing required fields.
	w, env := doRequest(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"table_id": 1,
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// Unknown table.
	w, _ = doRequest(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"table_id":        9999,
		"service_type":    "Ala-carte",
		"occupancy_count": 2,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetActiveSessions(t *testing.T) {
	t.Setenv("UNLIWINGS_BASE_PRICE", "")
	db, r := setupTestServer(t)
	table, _ := seedFixtures(t, db)

	w, _ := doRequest(t, r, http.MethodPost, "/api/sessions", map[string]interface{}{
		"table_id":        table.ID,
		"service_type":    "Unliwings",
		"occupancy_count": 3,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env := doRequest(t, r, http.MethodGet, "/api/sessions/active", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var sessions []models.TableSession
	decodeData(t, env, &sessions)
	if assert.Len(t, sessions, 1) {
		assert.Equal(t, "3", sessions[0].TableNumber)
		if assert.NotNil(t, sessions[0].UnliwingsTotalCharge) {
			assert.Equal(t, 867.0, *sessions[0].UnliwingsTotalCharge)
		}
	}
}

func TestGetSessionNotFound(t *testing.T) {
	_, r := setupTestServer(t)
	w, env := doRequest(t, r, http.MethodGet, "/api/sessions/424242", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
