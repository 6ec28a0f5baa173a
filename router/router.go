package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aldifirmansyah/burgerin-app/controllers"
	"github.com/aldifirmansyah/burgerin-app/middlewares"
	"github.com/aldifirmansyah/burgerin-app/storage"
)

func SetupRouter(db *gorm.DB, store storage.Storage, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Gambar katalog dilayani langsung dari disk
	r.Static("/uploads", uploadDir)

	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db, store)
	optionCtrl := controllers.NewMenuOptionController(db)
	orderCtrl := controllers.NewOrderController(db)
	stockCtrl := controllers.NewStockController(db)
	contentCtrl := controllers.NewContentController(db, store)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Katalog untuk aplikasi customer
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/options", optionCtrl.GetOptions)
	r.GET("/options/:option_id", optionCtrl.GetOptionByID)
	r.GET("/onboarding", contentCtrl.GetOnboarding)
	r.GET("/carousel", contentCtrl.GetCarousel)

	// Alur order customer (tanpa auth, seperti kios self-service)
	r.POST("/order", orderCtrl.CreateOrder)
	r.GET("/order/:order_id/status", orderCtrl.GetOrderStatusByID)
	r.GET("/order-history/:session_id", orderCtrl.GetOrderHistoryBySession)

	// Papan antrean realtime
	r.GET("/orders/ws", controllers.OrderBoardHandler)

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES
	// ----------------------------------------------------------------

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.PUT("/change-password", userCtrl.ChangePassword)

		// Dashboard order
		auth.GET("/order", orderCtrl.GetAllOrders)
		auth.GET("/order-history", orderCtrl.GetOrderHistory)
		auth.GET("/order-progress", orderCtrl.GetOrderProgress)
		auth.PUT("/order-status/:order_id", orderCtrl.UpdateOrderStatus)

		// Manajemen katalog
		auth.POST("/menus", menuCtrl.CreateMenu)
		auth.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
		auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
		auth.PATCH("/menus/:menu_id/stock", menuCtrl.UpdateMenuStock)
		auth.POST("/menus/:menu_id/restock", stockCtrl.RestockMenu)
		auth.POST("/menus/:menu_id/reduce", stockCtrl.ReduceMenu)

		auth.POST("/categories", categoryCtrl.CreateCategory)
		auth.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
		auth.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		auth.POST("/options", optionCtrl.CreateOption)
		auth.PUT("/options/:option_id", optionCtrl.EditOption)
		auth.DELETE("/options/:option_id", optionCtrl.DeleteOption)

		// Konten aplikasi
		auth.POST("/onboarding", contentCtrl.CreateOnboarding)
		auth.POST("/carousel", contentCtrl.CreateCarousel)
		auth.DELETE("/carousel/:carousel_id", contentCtrl.DeleteCarousel)
	}

	return r
}
