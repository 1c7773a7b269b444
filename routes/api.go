package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	notifyControllers "github.com/devshahzaibali/FSH-Traders/controllers/notify"
	productcontroller "github.com/devshahzaibali/FSH-Traders/controllers/product"
	"github.com/devshahzaibali/FSH-Traders/mailer"
	"github.com/devshahzaibali/FSH-Traders/middleware"
)

// SetupAPIRoutes registers the "/api/*" endpoints used by the storefront
// for email notifications, newsletter signups and catalog syncing.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB, m *mailer.Mailer) {
	api := r.Group("/api")
	{
		api.POST("/orders/notify", notifyControllers.OrderNotifyHandler(m))
		api.POST("/cart/notify", notifyControllers.CartNotifyHandler(m))
		api.POST("/newsletter", notifyControllers.NewsletterHandler(db, m))
		api.POST("/contact", notifyControllers.ContactHandler(m))

		// Destructive catalog replace, kept behind the admin API key.
		api.POST("/sync-products", middleware.ValidateAPIKey, productcontroller.SyncProductsHandler(db))
	}
}
