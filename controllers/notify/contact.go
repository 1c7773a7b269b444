package notifyControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devshahzaibali/FSH-Traders/mailer"
)

// POST /api/contact
// Mails the operator the submission and sends the sender a confirmation.
func ContactHandler(m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg mailer.ContactMessage
		if err := c.ShouldBindJSON(&msg); err != nil ||
			msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		ctx := c.Request.Context()
		if err := m.NotifyContactMessage(ctx, msg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message. Please try again."})
			return
		}
		if err := m.SendContactConfirmation(ctx, msg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message. Please try again."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
	}
}
