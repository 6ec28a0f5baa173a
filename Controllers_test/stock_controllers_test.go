package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/controllers"
	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

func setupTestDBForStock(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Menu{}, &models.MenuCategory{}, &models.MenuOption{}, &models.OptionChoice{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupStockRouter(db *gorm.DB, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	stockCtrl := controllers.NewStockController(db)
	auth := router.Group("/")
	auth.Use(fakeAuth(role))
	{
		auth.POST("/menus/:menu_id/restock", stockCtrl.RestockMenu)
		auth.POST("/menus/:menu_id/reduce", stockCtrl.ReduceMenu)
	}
	return router
}

func TestRestockEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(0))
	router := setupStockRouter(db, "staff")

	w := doJSON(router, "POST", "/menus/BUR001/restock", map[string]int{"quantity": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Stok berhasil ditambah", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["jumlah_stok"])
	assert.Equal(t, true, data["tersedia"])
}

func TestReduceEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(5))
	router := setupStockRouter(db, "admin")

	w := doJSON(router, "POST", "/menus/BUR001/reduce", map[string]int{"quantity": 5})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["jumlah_stok"])
	assert.Equal(t, false, data["tersedia"])
}

func TestReduceEndpointInsufficientStock(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(2))
	router := setupStockRouter(db, "admin")

	w := doJSON(router, "POST", "/menus/BUR001/reduce", map[string]int{"quantity": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// stok tidak berubah
	var menu models.Menu
	assert.NoError(t, db.First(&menu, "id_menu = ?", "BUR001").Error)
	assert.Equal(t, 2, *menu.JumlahStok)
}

func TestRestockEndpointNotTracked(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR002", false, nil)
	router := setupStockRouter(db, "admin")

	w := doJSON(router, "POST", "/menus/BUR002/restock", map[string]int{"quantity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestockEndpointInvalidQuantity(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(1))
	router := setupStockRouter(db, "admin")

	w := doJSON(router, "POST", "/menus/BUR001/restock", map[string]int{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestockEndpointMenuNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	router := setupStockRouter(db, "admin")

	w := doJSON(router, "POST", "/menus/BUR999/restock", map[string]int{"quantity": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStockEndpointsRequireRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForStock(t)
	seedTestMenu(t, db, "BUR001", true, stockPtr(5))
	router := setupStockRouter(db, "viewer")

	w := doJSON(router, "POST", "/menus/BUR001/restock", map[string]int{"quantity": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, "POST", "/menus/BUR001/reduce", map[string]int{"quantity": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
