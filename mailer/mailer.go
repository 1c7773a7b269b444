// Package mailer sends transactional email over SMTP: order notifications to
// the operator and customer, cart reminders and newsletter welcomes. The
// contract is fire-and-acknowledge; callers treat failures as non-fatal.
package mailer

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"github.com/devshahzaibali/FSH-Traders/models"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

// ConfigFromEnv reads SMTP settings the same way the rest of the service
// reads configuration.
func ConfigFromEnv() Config {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return Config{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("EMAIL_USER"),
		Password:   os.Getenv("EMAIL_PASS"),
		From:       os.Getenv("EMAIL_USER"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

type Mailer struct {
	cfg Config
	// send is swappable in tests.
	send func(*gomail.Message) error
}

func New(cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{cfg: cfg, send: func(msg *gomail.Message) error {
		return dialer.DialAndSend(msg)
	}}
}

// NewWithSender builds a mailer with a custom transport.
func NewWithSender(cfg Config, send func(*gomail.Message) error) *Mailer {
	return &Mailer{cfg: cfg, send: send}
}

// LineItem is one row of an email order table.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// Recipient addresses a customer-facing mail.
type Recipient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

// NotifyNewOrder mails the operator about a freshly placed order.
func (m *Mailer) NotifyNewOrder(ctx context.Context, order models.Order) error {
	to := m.cfg.AdminEmail
	if to == "" {
		return errors.New("mailer: ADMIN_EMAIL not configured")
	}
	subject := "New Order Received: #" + order.ID
	body := adminOrderBody(order)
	return m.deliver(ctx, to, subject, body)
}

// SendOrderConfirmation mails the customer their order confirmation with the
// estimated shipping date.
func (m *Mailer) SendOrderConfirmation(ctx context.Context, order models.Order) error {
	if order.CustomerEmail == "" {
		return errors.New("mailer: order has no customer email")
	}
	subject := "Order Confirmation: #" + order.ID
	body := customerOrderBody(order)
	return m.deliver(ctx, order.CustomerEmail, subject, body)
}

// SendCartReminder mails a checkout summary for a cart not yet committed to
// an order.
func (m *Mailer) SendCartReminder(ctx context.Context, to Recipient, lines []LineItem, total decimal.Decimal) error {
	if to.Email == "" {
		return errors.New("mailer: recipient has no email")
	}
	subject := "Your Cart at FSH Traders"
	body := cartReminderBody(to, lines, total, time.Now())
	return m.deliver(ctx, to.Email, subject, body)
}

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NotifyContactMessage mails the operator a contact-form submission summary.
func (m *Mailer) NotifyContactMessage(ctx context.Context, msg ContactMessage) error {
	to := m.cfg.AdminEmail
	if to == "" {
		return errors.New("mailer: ADMIN_EMAIL not configured")
	}
	subject := "New Contact Form Submission: " + msg.Subject
	return m.deliver(ctx, to, subject, contactAdminBody(msg, time.Now()))
}

// SendContactConfirmation mails the sender that their message was received.
func (m *Mailer) SendContactConfirmation(ctx context.Context, msg ContactMessage) error {
	if msg.Email == "" {
		return errors.New("mailer: contact message has no sender email")
	}
	subject := "Thank you for contacting FSH Traders"
	return m.deliver(ctx, msg.Email, subject, contactConfirmationBody(msg))
}

// SendNewsletterWelcome mails the subscription confirmation.
func (m *Mailer) SendNewsletterWelcome(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("mailer: empty subscriber email")
	}
	subject := "Welcome to FSH Traders Newsletter!"
	return m.deliver(ctx, email, subject, newsletterWelcomeBody())
}

func (m *Mailer) deliver(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.send(msg)
}
