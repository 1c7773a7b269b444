package auth

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/models"
)

type adminLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AdminLoginHandler verifies a Firebase ID token for back-office access.
// First-time admins are registered pending approval; the configured super
// admin is approved implicitly.
func AdminLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		approved := email != "" && email == os.Getenv("SUPER_ADMIN_EMAIL")

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: approved}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			log.Printf("📝 New admin registered: %s (approved=%v)", email, approved)
		case err == nil:
			db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if !admin.Approved && !approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account pending approval"})
			return
		}

		jwtToken, err := issueJWT(token.UID, email, string(models.RoleAdmin), name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"admin":   admin,
			"token":   jwtToken,
		})
	}
}
