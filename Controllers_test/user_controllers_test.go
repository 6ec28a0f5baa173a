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

func setupTestDBForUsers(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers(t)
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Admin Burgerin",
		"email":    "admin@burgerin.id",
		"password": "rahasia-banget",
		"role":     "admin",
	}
	w := doJSON(router, "POST", "/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	// password tersimpan sebagai hash
	var user models.User
	assert.NoError(t, db.Where("email = ?", "admin@burgerin.id").First(&user).Error)
	assert.NotEqual(t, "rahasia-banget", user.Password)

	w = doJSON(router, "POST", "/login", map[string]string{
		"email":    "admin@burgerin.id",
		"password": "rahasia-banget",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "admin", data["user_role"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers(t)
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Admin",
		"email":    "admin@burgerin.id",
		"password": "rahasia-banget",
		"role":     "admin",
	}
	w := doJSON(router, "POST", "/register", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email sudah terdaftar", resp["message"])
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers(t)
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/register", map[string]string{
		"name":     "Admin",
		"email":    "admin@burgerin.id",
		"password": "rahasia-banget",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/login", map[string]string{
		"email":    "admin@burgerin.id",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers(t)
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/login", map[string]string{
		"email":    "ghost@burgerin.id",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
