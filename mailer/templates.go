package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devshahzaibali/FSH-Traders/models"
)

// shippingEstimate is two days after the order date, shown as weekday plus
// long date.
func shippingEstimate(orderDate time.Time) (dayName, formatted string) {
	ship := orderDate.AddDate(0, 0, 2)
	return ship.Format("Monday"), ship.Format("January 2, 2006")
}

func itemsTable(lines []LineItem, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;">`)
	b.WriteString(`<thead><tr><th align="left">Item</th><th align="center">Qty</th><th align="right">Price</th><th align="right">Total</th></tr></thead><tbody>`)
	for _, it := range lines {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(&b, `<tr><td>%s</td><td align="center">%d</td><td align="right">$%s</td><td align="right">$%s</td></tr>`,
			it.Name, it.Quantity, it.UnitPrice.StringFixed(2), lineTotal.StringFixed(2))
	}
	b.WriteString(`</tbody><tfoot><tr><td colspan="3" align="right"><strong>Total:</strong></td>`)
	fmt.Fprintf(&b, `<td align="right"><strong>$%s</strong></td></tr></tfoot></table>`, total.StringFixed(2))
	return b.String()
}

func orderLines(order models.Order) []LineItem {
	lines := make([]LineItem, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, LineItem{Name: it.ProductName, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return lines
}

func adminOrderBody(order models.Order) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h2>New Order Received</h2>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> #%s</p>`, order.ID)
	fmt.Fprintf(&b, `<p><strong>Date:</strong> %s</p>`, order.CreatedAt.Format("Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, `<p><strong>Status:</strong> %s</p>`, order.Status)
	fmt.Fprintf(&b, `<p><strong>Total Amount:</strong> $%s</p>`, order.Total.StringFixed(2))
	b.WriteString(`<h3>Customer Information</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, order.CustomerName)
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, order.CustomerEmail)
	if order.CustomerPhone != "" {
		fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, order.CustomerPhone)
	}
	fmt.Fprintf(&b, `<p><strong>Address:</strong> %s</p>`, addressLine(order.Address))
	b.WriteString(`<h3>Order Items</h3>`)
	b.WriteString(itemsTable(orderLines(order), order.Total))
	b.WriteString(`<p><strong>Action Required:</strong> Please review and process this order in the admin panel.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func customerOrderBody(order models.Order) string {
	dayName, dateFormatted := shippingEstimate(order.CreatedAt)
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h1>Order Confirmed!</h1>`)
	fmt.Fprintf(&b, `<p>Dear <strong>%s</strong>,</p>`, order.CustomerName)
	b.WriteString(`<p>Thank you for your order! We have received your order and are processing it. You'll receive updates as your order progresses.</p>`)
	b.WriteString(`<h3>Order Summary</h3>`)
	fmt.Fprintf(&b, `<p><strong>Order ID:</strong> #%s</p>`, order.ID)
	fmt.Fprintf(&b, `<p><strong>Order Date:</strong> %s</p>`, order.CreatedAt.Format("Jan 2, 2006 15:04"))
	fmt.Fprintf(&b, `<p><strong>Status:</strong> %s</p>`, order.Status)
	fmt.Fprintf(&b, `<p><strong>Payment Method:</strong> %s</p>`, order.PaymentMethod)
	fmt.Fprintf(&b, `<p><strong>Total Amount:</strong> $%s</p>`, order.Total.StringFixed(2))
	b.WriteString(`<h3>Shipping Information</h3>`)
	fmt.Fprintf(&b, `<p><strong>Estimated Shipping Date:</strong> %s, %s</p>`, dayName, dateFormatted)
	b.WriteString(`<p><strong>Estimated Delivery:</strong> 3-5 business days after shipping</p>`)
	fmt.Fprintf(&b, `<p><strong>Shipping Address:</strong><br>%s<br>%s</p>`, order.Address.FullName, addressLine(order.Address))
	b.WriteString(`<h3>Order Items</h3>`)
	b.WriteString(itemsTable(orderLines(order), order.Total))
	b.WriteString(`<p>Need help? Contact us at support@fshtraders.com.</p>`)
	b.WriteString(`<p>Best regards,<br><strong>The FSH Traders Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func cartReminderBody(to Recipient, lines []LineItem, total decimal.Decimal, now time.Time) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h1>Cart Checkout</h1>`)
	fmt.Fprintf(&b, `<p>Dear <strong>%s %s</strong>,</p>`, to.FirstName, to.LastName)
	b.WriteString(`<p>We noticed you've added items to your cart and are ready to checkout. Here's a summary of your cart items.</p>`)
	fmt.Fprintf(&b, `<p><strong>Cart Total:</strong> $%s</p>`, total.StringFixed(2))
	fmt.Fprintf(&b, `<p><strong>Items in Cart:</strong> %d</p>`, len(lines))
	fmt.Fprintf(&b, `<p><strong>Checkout Date:</strong> %s</p>`, now.Format("Monday, January 2, 2006"))
	b.WriteString(itemsTable(lines, total))
	b.WriteString(`<p>Best regards,<br><strong>The FSH Traders Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func contactAdminBody(msg ContactMessage, now time.Time) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(`<h3>Contact Details:</h3>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, msg.Name)
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, msg.Email)
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, msg.Subject)
	b.WriteString(`<p><strong>Message:</strong></p>`)
	fmt.Fprintf(&b, `<div style="background-color:white;padding:15px;border-radius:4px;">%s</div>`,
		strings.ReplaceAll(msg.Message, "\n", "<br>"))
	fmt.Fprintf(&b, `<p><strong>Timestamp:</strong> %s</p>`, now.Format("Jan 2, 2006 15:04"))
	b.WriteString(`</div>`)
	return b.String()
}

func contactConfirmationBody(msg ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h2>Thank you for contacting us!</h2>`)
	fmt.Fprintf(&b, `<p>Dear %s,</p>`, msg.Name)
	b.WriteString(`<p>We have received your message and will get back to you as soon as possible.</p>`)
	b.WriteString(`<h3>Your Message Details:</h3>`)
	fmt.Fprintf(&b, `<p><strong>Subject:</strong> %s</p>`, msg.Subject)
	b.WriteString(`<p><strong>Message:</strong></p>`)
	fmt.Fprintf(&b, `<div style="background-color:white;padding:15px;border-radius:4px;">%s</div>`,
		strings.ReplaceAll(msg.Message, "\n", "<br>"))
	b.WriteString(`<p>Best regards,<br><strong>The FSH Traders Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func newsletterWelcomeBody() string {
	var b strings.Builder
	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">`)
	b.WriteString(`<h1>Welcome to FSH Traders!</h1>`)
	b.WriteString(`<p>Thank you for subscribing to our newsletter.</p>`)
	b.WriteString(`<p>You'll be the first to hear about new arrivals, seasonal picks and subscriber-only offers.</p>`)
	b.WriteString(`<p>Best regards,<br><strong>The FSH Traders Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func addressLine(a models.Address) string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.PostalCode, a.Country)
}
