package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/devshahzaibali/FSH-Traders/controllers/cart"
	productcontroller "github.com/devshahzaibali/FSH-Traders/controllers/product"
	userControllers "github.com/devshahzaibali/FSH-Traders/controllers/user"
	wishlistControllers "github.com/devshahzaibali/FSH-Traders/controllers/wishlist"
	"github.com/devshahzaibali/FSH-Traders/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/items", cartControllers.AddCartItem(db))
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/:product_id", wishlistControllers.AddToWishlist(db))
			wishlistGroup.PUT("/:product_id", wishlistControllers.ToggleWishlist(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db))
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db))

		// ──────────────── Browse Categories + Products ────────────────
		userGroup.GET("/categories", productcontroller.GetCategoriesWithProducts(db))
	}
}
