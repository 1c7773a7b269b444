// Package notifyControllers exposes the transactional email glue endpoints.
// Send failures map to 5xx here, but checkout callers treat them as
// non-fatal.
package notifyControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/devshahzaibali/FSH-Traders/mailer"
	"github.com/devshahzaibali/FSH-Traders/models"
)

type orderPayload struct {
	ID            string            `json:"id"`
	Items         []mailer.LineItem `json:"items"`
	Status        string            `json:"status"`
	PaymentMethod string            `json:"paymentMethod"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type orderNotifyRequest struct {
	Order    *orderPayload     `json:"order"`
	Customer *mailer.Recipient `json:"customer"`
}

// POST /api/orders/notify
// Dispatches both the operator and the customer order mails. The total is
// recomputed from the submitted items.
func OrderNotifyHandler(m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderNotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Order == nil || req.Customer == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order and customer information are required"})
			return
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Order.Items))
		for _, it := range req.Order.Items {
			total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			items = append(items, models.OrderItem{
				ProductName: it.Name,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
			})
		}

		createdAt := req.Order.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		order := models.Order{
			ID:            req.Order.ID,
			Items:         items,
			Total:         total,
			Status:        models.OrderStatus(req.Order.Status),
			PaymentMethod: models.PaymentMethod(req.Order.PaymentMethod),
			CustomerName:  req.Customer.FirstName + " " + req.Customer.LastName,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: req.Customer.Phone,
			Address: models.Address{
				FullName:   req.Customer.FirstName + " " + req.Customer.LastName,
				Street:     req.Customer.Address,
				City:       req.Customer.City,
				State:      req.Customer.State,
				PostalCode: req.Customer.ZipCode,
			},
			CreatedAt: createdAt,
		}

		ctx := c.Request.Context()
		if err := m.NotifyNewOrder(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send order notification"})
			return
		}
		if err := m.SendOrderConfirmation(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send order notification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order notification sent successfully"})
	}
}

type cartNotifyRequest struct {
	Cart     []mailer.LineItem `json:"cart"`
	Customer *mailer.Recipient `json:"customer"`
	Total    *decimal.Decimal  `json:"total"`
}

// POST /api/cart/notify
func CartNotifyHandler(m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartNotifyRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Cart) == 0 || req.Customer == nil || req.Total == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cart, customer, and total information are required"})
			return
		}

		if err := m.SendCartReminder(c.Request.Context(), *req.Customer, req.Cart, *req.Total); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send cart notification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart notification sent successfully"})
	}
}
