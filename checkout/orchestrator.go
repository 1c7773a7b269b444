// Package checkout drives the multi-step sequence that turns a cart into an
// order: address capture, order persistence, notification dispatch and cart
// clearing, with a partial-failure policy for each stage.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devshahzaibali/FSH-Traders/cart"
	"github.com/devshahzaibali/FSH-Traders/models"
	"github.com/devshahzaibali/FSH-Traders/session"
)

// ErrEmptyCart rejects checkout initiation with no items.
var ErrEmptyCart = errors.New("cart is empty")

// ErrPaymentMethodUnavailable rejects the reserved card method; only pay on
// delivery is accepted.
var ErrPaymentMethodUnavailable = errors.New("payment method not yet available")

// Cart is the slice of the cart store the orchestrator needs: a snapshot to
// commit and a clear after the order is durable.
type Cart interface {
	Items() []cart.Item
	Total() decimal.Decimal
	Len() int
	Clear()
}

// OrderStore persists orders durably. Implementations dedupe on the order's
// idempotency key so a retried submission cannot create a duplicate.
type OrderStore interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
}

// AddressSaver persists the shipping address to the identity's profile for
// reuse. Best-effort; checkout does not depend on it.
type AddressSaver interface {
	SaveAddress(ctx context.Context, userID string, addr models.Address) error
}

// Notifier dispatches the operator-facing and customer-facing order mails.
// Both are at-least-once, best-effort: the order record is the source of
// truth, not the email.
type Notifier interface {
	NotifyNewOrder(ctx context.Context, order models.Order) error
	SendOrderConfirmation(ctx context.Context, order models.Order) error
}

type Orchestrator struct {
	gate     *session.Gate
	orders   OrderStore
	profiles AddressSaver
	notifier Notifier

	callTimeout time.Duration
	now         func() time.Time
	newID       func() string
}

func New(gate *session.Gate, orders OrderStore, profiles AddressSaver, notifier Notifier) *Orchestrator {
	return &Orchestrator{
		gate:        gate,
		orders:      orders,
		profiles:    profiles,
		notifier:    notifier,
		callTimeout: 10 * time.Second,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Run is one checkout attempt against one cart. A single run produces at most
// one order; the idempotency key generated at Begin makes retries after a
// persistence failure safe.
type Run struct {
	o              *Orchestrator
	identity       session.Identity
	cart           Cart
	idempotencyKey string
	stage          Stage
}

// Begin moves Idle to AddressCapture. It requires an authenticated identity
// and a non-empty cart. Abandoning the run before Submit has no side effects.
func (o *Orchestrator) Begin(ctx context.Context, c Cart) (*Run, error) {
	identity, err := o.gate.RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}
	return &Run{
		o:              o,
		identity:       identity,
		cart:           c,
		idempotencyKey: o.newID(),
		stage:          StageAddressCapture,
	}, nil
}

func (r *Run) Stage() Stage {
	return r.stage
}

// Result is the outcome of a completed run. Warnings carry non-fatal stage
// failures (notification dispatch, profile save) surfaced to the shopper.
type Result struct {
	Order    models.Order
	Warnings []string
}

// Submit runs AddressCapture through Complete. Order persistence failure
// halts the run at Submitting with the cart intact; the caller may retry with
// the same run and the same idempotency key. Notification failures do not
// roll anything back: the order is already committed, so checkout completes
// and the cart is cleared.
func (r *Run) Submit(ctx context.Context, addr models.Address, method models.PaymentMethod) (Result, error) {
	if r.stage == StageComplete {
		return Result{}, ErrRunComplete
	}
	if fieldErrs := ValidateAddress(addr); len(fieldErrs) > 0 {
		r.stage = StageAddressCapture
		return Result{}, &ValidationError{Fields: fieldErrs}
	}
	if method != models.PaymentPayOnDelivery {
		r.stage = StageAddressCapture
		return Result{}, ErrPaymentMethodUnavailable
	}

	r.stage = StageSubmitting
	order := r.snapshot(addr, method)

	saved, err := r.callOrders(ctx, order)
	if err != nil {
		// Cart is preserved; the run drops back to AddressCapture so the
		// shopper can retry with the same data and the same key.
		r.stage = StageAddressCapture
		return Result{}, &StageError{Stage: StageSubmitting, Err: err}
	}

	var warnings []string

	if err := r.callSaveAddress(ctx, addr); err != nil {
		log.Printf("checkout: failed to save address for %s: %v", r.identity.ID, err)
		warnings = append(warnings, "shipping address could not be saved to your profile")
	}

	r.stage = StageNotifyingAdmin
	if err := r.callNotify(ctx, r.o.notifier.NotifyNewOrder, saved); err != nil {
		log.Printf("checkout: operator notification failed for order %s: %v", saved.ID, err)
		warnings = append(warnings, "operator notification could not be sent")
	}

	r.stage = StageNotifyingCustomer
	if err := r.callNotify(ctx, r.o.notifier.SendOrderConfirmation, saved); err != nil {
		log.Printf("checkout: confirmation email failed for order %s: %v", saved.ID, err)
		warnings = append(warnings, "confirmation email may be delayed")
	}

	// Cleared only now that the order is durably persisted; never before.
	r.stage = StageClearing
	r.cart.Clear()
	r.stage = StageComplete

	return Result{Order: saved, Warnings: warnings}, nil
}

// snapshot copies the cart into an immutable order record. Later cart
// mutations must not affect a placed order.
func (r *Run) snapshot(addr models.Address, method models.PaymentMethod) models.Order {
	items := r.cart.Items()
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	return models.Order{
		ID:             r.o.newID(),
		IdempotencyKey: r.idempotencyKey,
		UserID:         r.identity.ID,
		Items:          orderItems,
		Total:          r.cart.Total(),
		Status:         models.OrderStatusPending,
		PaymentMethod:  method,
		CustomerName:   r.identity.Name,
		CustomerEmail:  r.identity.Email,
		Address:        addr,
		CreatedAt:      r.o.now(),
	}
}

func (r *Run) callOrders(ctx context.Context, order models.Order) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.o.callTimeout)
	defer cancel()
	return r.o.orders.CreateOrder(ctx, order)
}

func (r *Run) callSaveAddress(ctx context.Context, addr models.Address) error {
	ctx, cancel := context.WithTimeout(ctx, r.o.callTimeout)
	defer cancel()
	return r.o.profiles.SaveAddress(ctx, r.identity.ID, addr)
}

func (r *Run) callNotify(ctx context.Context, send func(context.Context, models.Order) error, order models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.o.callTimeout)
	defer cancel()
	return send(ctx, order)
}

// ValidateAddress checks that every required shipping address field is
// present and non-empty, keyed by field for per-field errors.
func ValidateAddress(a models.Address) map[string]string {
	errs := make(map[string]string)
	check := func(field, value string) {
		if value == "" {
			errs[field] = fmt.Sprintf("%s is required", field)
		}
	}
	check("full_name", a.FullName)
	check("street", a.Street)
	check("city", a.City)
	check("state", a.State)
	check("postal_code", a.PostalCode)
	check("country", a.Country)
	if len(errs) == 0 {
		return nil
	}
	return errs
}
