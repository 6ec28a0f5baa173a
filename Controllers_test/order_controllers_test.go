package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/controllers"
	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.MenuCategory{},
		&models.Menu{},
		&models.MenuOption{},
		&models.OptionChoice{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// fakeAuth meniru AuthMiddleware: langsung set claims tanpa memeriksa token.
func fakeAuth(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("role", role)
		c.Next()
	}
}

func setupOrderRouter(db *gorm.DB, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/order", orderCtrl.CreateOrder)
	router.GET("/order/:order_id/status", orderCtrl.GetOrderStatusByID)
	router.GET("/order-history/:session_id", orderCtrl.GetOrderHistoryBySession)
	auth := router.Group("/")
	auth.Use(fakeAuth(role))
	{
		auth.GET("/order", orderCtrl.GetAllOrders)
		auth.PUT("/order-status/:order_id", orderCtrl.UpdateOrderStatus)
	}
	return router
}

func seedTestMenu(t *testing.T, db *gorm.DB, id string, tracked bool, stock *int) {
	tersedia := true
	if tracked {
		tersedia = stock != nil && *stock > 0
	}
	menu := models.Menu{
		ID:         id,
		Name:       "Menu " + id,
		StatusStok: tracked,
		JumlahStok: stock,
		Tersedia:   tersedia,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to seed menu: %v", err)
	}
}

func stockPtr(v int) *int { return &v }

func doJSON(router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderPayload(sessionID string) map[string]interface{} {
	payload := map[string]interface{}{
		"orderType":     "dine_in",
		"paymentMethod": "cash",
		"subtotal":      "50000",
		"total":         "55000",
		"items": []map[string]interface{}{
			{
				"menuId":   "BUR001",
				"name":     "Cheese Burger",
				"quantity": 2,
				"price":    "25000",
			},
		},
	}
	if sessionID != "" {
		payload["sessionId"] = sessionID
	}
	return payload
}

func TestCreateOrderAndPollStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(10))
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "POST", "/order", orderPayload(""))
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "Order created successfully", createResp["message"])

	data := createResp["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	orderID := order["id"].(string)
	assert.NotEmpty(t, orderID)
	assert.Equal(t, float64(100), order["queue_number"])
	assert.Equal(t, "PENDING", order["status"])

	w = doJSON(router, "GET", "/order/"+orderID+"/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var statusResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &statusResp))
	statusData := statusResp["data"].(map[string]interface{})
	assert.Equal(t, orderID, statusData["orderId"])
	assert.Equal(t, "PENDING", statusData["status"])
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db, "admin")

	payload := map[string]interface{}{
		"orderType":     "dine_in",
		"paymentMethod": "cash",
		"items":         []map[string]interface{}{},
	}
	w := doJSON(router, "POST", "/order", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusFullFlow(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(10))
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "POST", "/order", orderPayload(""))
	assert.Equal(t, http.StatusCreated, w.Code)
	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	orderID := createResp["data"].(map[string]interface{})["order"].(map[string]interface{})["id"].(string)

	w = doJSON(router, "PUT", "/order-status/"+orderID, map[string]string{"action": "pending_to_progress"})
	assert.Equal(t, http.StatusOK, w.Code)
	var updateResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updateResp))
	assert.Equal(t, "Status pesanan berhasil diubah menjadi IN_PROGRESS", updateResp["message"])

	// stok terpotong saat masuk produksi
	var menu models.Menu
	assert.NoError(t, db.First(&menu, "id_menu = ?", "BUR001").Error)
	assert.Equal(t, 8, *menu.JumlahStok)

	w = doJSON(router, "PUT", "/order-status/"+orderID, map[string]string{"action": "progress_to_done"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/order/"+orderID+"/status", nil)
	var statusResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &statusResp))
	assert.Equal(t, "DONE", statusResp["data"].(map[string]interface{})["status"])
}

func TestUpdateOrderStatusInvalidAction(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", false, nil)
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "POST", "/order", orderPayload(""))
	orderID := extractOrderID(t, w)

	w = doJSON(router, "PUT", "/order-status/"+orderID, map[string]string{"action": "teleport"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "aksi tidak valid", resp["message"])
}

func TestUpdateOrderStatusIllegalTransition(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", false, nil)
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "POST", "/order", orderPayload(""))
	orderID := extractOrderID(t, w)

	// complete dari PENDING harus ditolak
	w = doJSON(router, "PUT", "/order-status/"+orderID, map[string]string{"action": "progress_to_done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "PENDING")
	assert.Contains(t, resp["message"], "progress_to_done")
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "PUT", "/order-status/tidak-ada", map[string]string{"action": "pending_to_progress"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusRequiresStaffRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", false, nil)
	router := setupOrderRouter(db, "viewer")

	w := doJSON(router, "POST", "/order", orderPayload(""))
	orderID := extractOrderID(t, w)

	w = doJSON(router, "PUT", "/order-status/"+orderID, map[string]string{"action": "pending_to_progress"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetOrderStatusNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "GET", "/order/999/status", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderHistoryBySession(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders(t)
	seedTestMenu(t, db, "BUR001", false, nil)
	router := setupOrderRouter(db, "admin")

	w := doJSON(router, "POST", "/order", orderPayload("sesi-abc"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "GET", "/order-history/sesi-abc", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	history := resp["data"].([]interface{})
	assert.Len(t, history, 1)
	entry := history[0].(map[string]interface{})
	assert.Equal(t, "pending", entry["status"])
	assert.Equal(t, float64(100), entry["queueNumber"])

	// sesi lain tidak melihat pesanan ini
	w = doJSON(router, "GET", "/order-history/sesi-lain", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func extractOrderID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return resp["data"].(map[string]interface{})["order"].(map[string]interface{})["id"].(string)
}
