package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Poopyy17/Wings/models"
)

func TestMenuReads(t *testing.T) {
	db, r := setupTestServer(t)
	_, item := seedFixtures(t, db)

	w, env := doRequest(t, r, http.MethodGet, "/api/menu/categories", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var categories []models.MenuCategory
	decodeData(t, env, &categories)
	assert.Len(t, categories, 1)

	w, env = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/menu/categories/%d/items", item.CategoryID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var items []models.MenuItem
	decodeData(t, env, &items)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "6pcs Wings", items[0].Name)
	}

	w, env = doRequest(t, r, http.MethodGet, "/api/menu/flavors", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var flavors []models.WingFlavor
	decodeData(t, env, &flavors)
	assert.Len(t, flavors, 2)
}

func TestUpdateItemAvailability(t *testing.T) {
	db, r := setupTestServer(t)
	_, item := seedFixtures(t, db)
	token := loginAs(t, r, "chef1", "chef")

	// Staff-only: no token, no update.
	w, _ := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/menu/items/%d", item.ID), map[string]interface{}{
		"is_available": false,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/menu/items/%d", item.ID), map[string]interface{}{
		"is_available": false,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.MenuItem
	decodeData(t, env, &updated)
	assert.False(t, updated.IsAvailable)

	// "false" must survive the pointer binding rather than failing required.
	var stored models.MenuItem
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.False(t, stored.IsAvailable)

	w, _ = doRequest(t, r, http.MethodPatch, "/api/menu/items/424242", map[string]interface{}{
		"is_available": true,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFlavorAvailability(t *testing.T) {
	db, r := setupTestServer(t)
	seedFixtures(t, db)
	token := loginAs(t, r, "chef2", "chef")

	var flavor models.WingFlavor
	assert.NoError(t, db.Where("name = ?", "Soy Garlic").First(&flavor).Error)

	w, env := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/menu/flavors/%d", flavor.ID), map[string]interface{}{
		"is_available": false,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.WingFlavor
	decodeData(t, env, &updated)
	assert.False(t, updated.IsAvailable)
}
