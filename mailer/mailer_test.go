package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/devshahzaibali/FSH-Traders/models"
)

func testOrder() models.Order {
	return models.Order{
		ID:            "ord-1",
		CustomerName:  "Asha Khan",
		CustomerEmail: "asha@example.com",
		Total:         decimal.RequireFromString("25.50"),
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentPayOnDelivery,
		Items: []models.OrderItem{
			{ProductName: "Rice 5kg", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductName: "Lentils", Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
		},
		Address: models.Address{
			FullName: "Asha Khan", Street: "12 Canal Road", City: "Lahore",
			State: "Punjab", PostalCode: "54000", Country: "Pakistan",
		},
		CreatedAt: time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC),
	}
}

func captureMailer(cfg Config) (*Mailer, *[]*gomail.Message) {
	var sent []*gomail.Message
	m := NewWithSender(cfg, func(msg *gomail.Message) error {
		sent = append(sent, msg)
		return nil
	})
	return m, &sent
}

func TestNotifyNewOrder(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com", AdminEmail: "admin@example.com"})

	require.NoError(t, m.NotifyNewOrder(context.Background(), testOrder()))
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	assert.Equal(t, []string{"admin@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"New Order Received: #ord-1"}, msg.GetHeader("Subject"))
}

func TestNotifyNewOrder_RequiresAdminEmail(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com"})

	require.Error(t, m.NotifyNewOrder(context.Background(), testOrder()))
	assert.Empty(t, *sent)
}

func TestSendOrderConfirmation(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com", AdminEmail: "admin@example.com"})

	require.NoError(t, m.SendOrderConfirmation(context.Background(), testOrder()))
	require.Len(t, *sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, (*sent)[0].GetHeader("To"))
}

func TestSendOrderConfirmation_RequiresCustomerEmail(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com"})

	order := testOrder()
	order.CustomerEmail = ""
	require.Error(t, m.SendOrderConfirmation(context.Background(), order))
	assert.Empty(t, *sent)
}

func TestDeliver_HonorsCancelledContext(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com", AdminEmail: "admin@example.com"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, m.NotifyNewOrder(ctx, testOrder()), context.Canceled)
	assert.Empty(t, *sent)
}

func TestShippingEstimate(t *testing.T) {
	// Monday March 10 2025 -> ships Wednesday March 12 2025.
	day, date := shippingEstimate(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "Wednesday", day)
	assert.Equal(t, "March 12, 2025", date)
}

func TestCustomerOrderBody_IncludesEstimateAndTotals(t *testing.T) {
	body := customerOrderBody(testOrder())
	assert.Contains(t, body, "Wednesday, March 12, 2025")
	assert.Contains(t, body, "$25.50")
	assert.Contains(t, body, "Rice 5kg")
	assert.Contains(t, body, "Asha Khan")
}

func TestContactBodies_PreserveLineBreaks(t *testing.T) {
	msg := ContactMessage{
		Name:    "Asha Khan",
		Email:   "asha@example.com",
		Subject: "Bulk pricing",
		Message: "Line one\nLine two",
	}

	admin := contactAdminBody(msg, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC))
	assert.Contains(t, admin, "Line one<br>Line two")
	assert.Contains(t, admin, "asha@example.com")
	assert.Contains(t, admin, "Mar 10, 2025 09:30")

	confirm := contactConfirmationBody(msg)
	assert.Contains(t, confirm, "Dear Asha Khan")
	assert.Contains(t, confirm, "Line one<br>Line two")
	assert.Contains(t, confirm, "Bulk pricing")
}

func TestNotifyContactMessage_RequiresAdminEmail(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com"})

	msg := ContactMessage{Name: "Asha", Email: "asha@example.com", Subject: "Hi", Message: "Hello"}
	require.Error(t, m.NotifyContactMessage(context.Background(), msg))
	assert.Empty(t, *sent)
}

func TestSendCartReminder(t *testing.T) {
	m, sent := captureMailer(Config{From: "shop@example.com"})

	lines := []LineItem{{Name: "Rice 5kg", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")}}
	err := m.SendCartReminder(context.Background(), Recipient{FirstName: "Asha", LastName: "Khan", Email: "asha@example.com"}, lines, decimal.RequireFromString("20.00"))
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	err = m.SendCartReminder(context.Background(), Recipient{}, lines, decimal.Zero)
	require.Error(t, err, "missing email must be rejected")
}
