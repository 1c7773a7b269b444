package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Customer login via Firebase ID token
		authGroup.POST("/login", auth.LoginHandler(db))

		// Back-office login (approval-gated)
		authGroup.POST("/admin-login", auth.AdminLoginHandler(db))
	}
}
