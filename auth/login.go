package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/models"
	"github.com/devshahzaibali/FSH-Traders/wishlist"
)

type loginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
	// Wishlist accumulated before login; merged into the profile by union.
	Wishlist []string `json:"wishlist"`
}

// LoginHandler verifies a Firebase ID token, upserts the user record and
// issues a session JWT. On login the locally cached wishlist is reconciled
// with the profile's set.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if projectID != "" && token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", uid).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:       uid,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Role:     models.RoleCustomer,
				Cart:     models.Cart{UserID: uid},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		// Union-merge the pre-login wishlist into the profile. Entries are
		// never lost on reconcile, only added.
		store := wishlist.NewStore(wishlist.GormProfiles{DB: db})
		for _, id := range req.Wishlist {
			store.Add(c.Request.Context(), id)
		}
		if err := store.Attach(c.Request.Context(), uid); err != nil {
			log.Printf("⚠️ Wishlist reconcile failed for %s: %v", uid, err)
		}

		jwtToken, err := issueJWT(user.ID, user.Email, string(user.Role), user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful",
			"user":     user,
			"token":    jwtToken,
			"wishlist": store.IDs(),
		})
	}
}
