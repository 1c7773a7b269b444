package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/wishlist"
)

// attachedStore loads the user's wishlist into a store bound to their
// profile.
func attachedStore(c *gin.Context, db *gorm.DB) (*wishlist.Store, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	store := wishlist.NewStore(wishlist.GormProfiles{DB: db})
	if err := store.Attach(c.Request.Context(), userIDVal.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return nil, false
	}
	return store, true
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := attachedStore(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlist": store.IDs()})
	}
}

// POST /user/wishlist/:product_id
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := attachedStore(c, db)
		if !ok {
			return
		}
		store.Add(c.Request.Context(), c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"wishlist": store.IDs()})
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := attachedStore(c, db)
		if !ok {
			return
		}
		store.Remove(c.Request.Context(), c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"wishlist": store.IDs()})
	}
}

// PUT /user/wishlist/:product_id
// Toggles membership and reports the new state.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := attachedStore(c, db)
		if !ok {
			return
		}
		wishlisted := store.Toggle(c.Request.Context(), c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{
			"wishlisted": wishlisted,
			"wishlist":   store.IDs(),
		})
	}
}
