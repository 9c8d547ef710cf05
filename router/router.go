package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/controllers"
	"github.com/Poopyy17/Wings/middlewares"
	"github.com/Poopyy17/Wings/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	// QR code images served straight from disk
	r.Static("/uploads", "uploads")

	authCtrl := controllers.NewAuthController(db)
	tableCtrl := controllers.NewTableController(db)
	sessionCtrl := controllers.NewSessionController(db)
	orderCtrl := controllers.NewOrderController(db)
	menuCtrl := controllers.NewMenuController(db)

	r.GET("/ping", func(c *gin.Context) {
		database := "up"
		if shared := utils.GetDB(); shared != nil {
			if sqlDB, err := shared.DB(); err != nil || sqlDB.Ping() != nil {
				database = "down"
			}
		}
		c.JSON(200, gin.H{"message": "pong", "database": database})
	})

	// Staff realtime event feed
	r.GET("/ws", controllers.EventsHandler)

	api := r.Group("/api")

	// -- AUTH --
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)

	// -- TABLES --
	api.GET("/tables", tableCtrl.GetAllTables)
	api.GET("/tables/:id", tableCtrl.GetTableByID)
	api.POST("/tables", tableCtrl.CreateTable)
	api.PUT("/tables/:id/status", tableCtrl.UpdateTableStatus)

	// -- SESSIONS --
	api.POST("/sessions", sessionCtrl.CreateSession)
	api.GET("/sessions/active", sessionCtrl.GetActiveSessions)
	api.GET("/sessions/:id", sessionCtrl.GetSessionByID)
	api.POST("/sessions/:id/payment", sessionCtrl.PaySession)

	// -- ORDERS --
	api.POST("/orders/tickets", orderCtrl.CreateTicket)
	api.GET("/orders/tickets/:id", orderCtrl.GetTicketByID)
	api.PUT("/orders/tickets/:id/status", orderCtrl.UpdateTicketStatus)
	api.GET("/orders/sessions/:id/tickets", orderCtrl.GetSessionTickets)
	api.GET("/orders/completed", orderCtrl.GetCompletedOrders)

	api.POST("/orders/takeout", orderCtrl.CreateTakeoutOrder)
	api.GET("/orders/takeout", orderCtrl.GetTakeoutOrders)
	api.GET("/orders/takeout/:id", orderCtrl.GetTakeoutOrderByID)
	api.PUT("/orders/takeout/:id/status", orderCtrl.UpdateTakeoutStatus)
	api.POST("/orders/takeout/:id/payment", orderCtrl.PayTakeoutOrder)

	// -- MENU --
	api.GET("/menu/categories", menuCtrl.GetAllCategories)
	api.GET("/menu/categories/:id/items", menuCtrl.GetCategoryItems)
	api.GET("/menu/items", menuCtrl.GetAllItems)
	api.GET("/menu/flavors", menuCtrl.GetAllFlavors)

	// Staff-only mutations
	staff := api.Group("/")
	staff.Use(middlewares.AuthMiddleware())
	staff.PATCH("/menu/items/:id", menuCtrl.UpdateItemAvailability)
	staff.PATCH("/menu/flavors/:id", menuCtrl.UpdateFlavorAvailability)
	staff.GET("/orders/payments/all", orderCtrl.GetAllPayments)

	return r
}
