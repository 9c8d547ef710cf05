package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
	"github.com/Poopyy17/Wings/router"
	"github.com/Poopyy17/Wings/utils"
)

func setupTestServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.WingFlavor{},
		&models.TableSession{},
		&models.OrderTicket{},
		&models.OrderItem{},
		&models.OrderItemFlavor{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db, router.SetupRouter(db)
}

func seedFixtures(t *testing.T, db *gorm.DB) (models.Table, models.MenuItem) {
	t.Helper()
	table := models.Table{TableNumber: "3", Status: models.TableAvailable}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}

	category := models.MenuCategory{Name: "Ala Carte Wings", DisplayOrder: 1}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	item := models.MenuItem{
		Name:        "6pcs Wings",
		Price:       169,
		CategoryID:  category.ID,
		IsAvailable: true,
		IsWingItem:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed menu item: %v", err)
	}

	flavors := []models.WingFlavor{
		{Name: "Soy Garlic", IsAvailable: true},
		{Name: "Honey Garlic", IsAvailable: true},
	}
	if err := db.Create(&flavors).Error; err != nil {
		t.Fatalf("failed to seed flavors: %v", err)
	}
	return table, item
}

func sessionPath(id uint) string        { return fmt.Sprintf("/api/sessions/%d", id) }
func sessionPaymentPath(id uint) string { return fmt.Sprintf("/api/sessions/%d/payment", id) }
func ticketStatusPath(id uint) string   { return fmt.Sprintf("/api/orders/tickets/%d/status", id) }
func takeoutStatusPath(id uint) string  { return fmt.Sprintf("/api/orders/takeout/%d/status", id) }
func takeoutPaymentPath(id uint) string { return fmt.Sprintf("/api/orders/takeout/%d/payment", id) }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not a JSON envelope: %v (%s)", err, w.Body.String())
		}
	}
	return w, env
}

func loginAs(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()

	w, _ := doRequest(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": username,
		"password": "secret123",
		"role":     role,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register %s: %d %s", username, w.Code, w.Body.String())
	}

	w, env := doRequest(t, r, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": username,
		"password": "secret123",
		"role":     role,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("failed to log in %s: %d %s", username, w.Code, w.Body.String())
	}

	var login struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &login)
	return login.Token
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("failed to decode response data: %v (%s)", err, string(env.Data))
	}
}
