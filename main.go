package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/config"
	"github.com/aldifirmansyah/burgerin-app/middlewares"
	"github.com/aldifirmansyah/burgerin-app/models"
	"github.com/aldifirmansyah/burgerin-app/router"
	"github.com/aldifirmansyah/burgerin-app/storage"
	"github.com/aldifirmansyah/burgerin-app/utils"
)

func main() {
	// .env opsional, env dari sistem tetap dipakai
	_ = godotenv.Load()

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	uploadDir := getenv("UPLOAD_DIR", "public/uploads")
	baseURL := getenv("PUBLIC_BASE_URL", "http://localhost:8080") + "/uploads"
	store, err := storage.NewLocal(uploadDir, baseURL)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to init storage: %v", err)
	}

	r := router.SetupRouter(db, store, uploadDir)
	r.Use(middlewares.NewRateLimiter(50, 100))

	port := getenv("PORT", "8080")
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.MenuCategory{},
		&models.Menu{},
		&models.MenuOption{},
		&models.OptionChoice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Onboarding{},
		&models.Carousel{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
