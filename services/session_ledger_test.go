package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Poopyy17/Wings/models"
)

func TestStartSessionUnliwingsFreezesCharge(t *testing.T) {
	t.Setenv("UNLIWINGS_BASE_PRICE", "")
	db := setupTestDB(t)
	table := seedTable(t, db, "3")

	session, err := NewSessionLedger(db).StartSession(table.ID, models.ServiceUnliwings, 4)
	assert.NoError(t, err)
	assert.Equal(t, models.SessionActive, session.Status)
	if assert.NotNil(t, session.UnliwingsBasePrice) {
		assert.Equal(t, 289.0, *session.UnliwingsBasePrice)
	}
	if assert.NotNil(t, session.UnliwingsTotalCharge) {
		assert.Equal(t, 1156.0, *session.UnliwingsTotalCharge)
	}

	var updated models.Table
	assert.NoError(t, db.First(&updated, table.ID).Error)
	assert.Equal(t, models.TableOccupied, updated.Status)
}

func TestStartSessionAlaCarteHasNoUnliwingsCharge(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "1")

	session, err := NewSessionLedger(db).StartSession(table.ID, models.ServiceAlaCarte, 2)
	assert.NoError(t, err)
	assert.Nil(t, session.UnliwingsBasePrice)
	assert.Nil(t, session.UnliwingsTotalCharge)
	assert.Equal(t, 0.0, session.TotalAmount)
}

func TestStartSessionRejectsOccupiedTable(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "2")
	ledger := NewSessionLedger(db)

	_, err := ledger.StartSession(table.ID, models.ServiceAlaCarte, 2)
	assert.NoError(t, err)

	_, err = ledger.StartSession(table.ID, models.ServiceUnliwings, 3)
	assert.ErrorIs(t, err, ErrTableOccupied)

	var count int64
	db.Model(&models.TableSession{}).Where("table_id = ?", table.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestStartSessionAllowsNewSessionAfterPayment(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "5")
	ledger := NewSessionLedger(db)

	first, err := ledger.StartSession(table.ID, models.ServiceAlaCarte, 2)
	assert.NoError(t, err)
	_, err = NewPaymentFinalizer(db).PaySession(first.ID, "Cash", nil)
	assert.NoError(t, err)

	second, err := ledger.StartSession(table.ID, models.ServiceAlaCarte, 4)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStartSessionValidation(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "4")
	ledger := NewSessionLedger(db)

	_, err := ledger.StartSession(table.ID, "Buffet", 2)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.StartSession(table.ID, models.ServiceAlaCarte, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ledger.StartSession(9999, models.ServiceAlaCarte, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSessionRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, db, "6")
	seedCatalog(t, db)
	session := startAlaCarteSession(t, db, table.ID)

	_, err := NewTicketBuilder(db).CreateTicket(uintPtr(session.ID), []TicketItemInput{
		{Name: "6pcs Wings", Price: 169, Quantity: 2},
	}, false)
	assert.NoError(t, err)

	// Corrupt the cached column; the read path must not trust it.
	assert.NoError(t, db.Model(&models.TableSession{}).
		Where("id = ?", session.ID).
		UpdateColumn("total_amount", 9999).Error)

	loaded, err := NewSessionLedger(db).GetSession(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 338.0, loaded.TotalAmount)
	assert.Equal(t, "6", loaded.TableNumber)
}

func TestActiveSessionsExcludesPaid(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewSessionLedger(db)

	tableA := seedTable(t, db, "7")
	tableB := seedTable(t, db, "8")
	open, err := ledger.StartSession(tableA.ID, models.ServiceAlaCarte, 2)
	assert.NoError(t, err)
	closed, err := ledger.StartSession(tableB.ID, models.ServiceAlaCarte, 2)
	assert.NoError(t, err)

	_, err = NewPaymentFinalizer(db).PaySession(closed.ID, "Cash", nil)
	assert.NoError(t, err)

	active, err := ledger.ActiveSessions()
	assert.NoError(t, err)
	if assert.Len(t, active, 1) {
		assert.Equal(t, open.ID, active[0].ID)
	}
}
