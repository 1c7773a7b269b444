package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/devshahzaibali/FSH-Traders/controllers/order"
	"github.com/devshahzaibali/FSH-Traders/feed"
	"github.com/devshahzaibali/FSH-Traders/mailer"
	"github.com/devshahzaibali/FSH-Traders/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, m *mailer.Mailer, hub *feed.Hub) {
	orders := r.Group("/orders")
	{
		// Checkout (JWT-gated): runs the full orchestration
		orders.POST("/checkout", middleware.ValidateToken, orderControllers.CheckoutHandler(db, m, hub))

		// Orders for a specific user (JWT-gated)
		orders.GET("/user/:userID", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(db))

		// Back-office: all orders, single order, status updates, live feed
		orders.GET("/", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(db))
		orders.GET("/:orderID", middleware.ValidateAPIKey, orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:orderID/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db, hub))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler(hub))
	}
}
