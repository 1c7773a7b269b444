package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/feed"
	"github.com/devshahzaibali/FSH-Traders/mailer"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Order,
// Admin and API route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, m *mailer.Mailer, hub *feed.Hub) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 3️⃣ Order routes (checkout + back-office)
	SetupOrderRoutes(r, db, m, hub)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)

	// 5️⃣ Notification glue endpoints
	SetupAPIRoutes(r, db, m)
}
