package notifyControllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/mailer"
	"github.com/devshahzaibali/FSH-Traders/models"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

// POST /api/newsletter
func NewsletterHandler(db *gorm.DB, m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil || !strings.Contains(req.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid email address"})
			return
		}

		subscriber := models.NewsletterSubscriber{Email: req.Email, SubscribedAt: time.Now()}
		if err := db.Where(models.NewsletterSubscriber{Email: req.Email}).
			FirstOrCreate(&subscriber).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to subscribe"})
			return
		}

		if err := m.SendNewsletterWelcome(c.Request.Context(), req.Email); err != nil {
			// Subscription is recorded; the welcome mail is best-effort.
			log.Printf("newsletter: welcome email to %s failed: %v", req.Email, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
	}
}
