package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localcart "github.com/devshahzaibali/FSH-Traders/cart"
	"github.com/devshahzaibali/FSH-Traders/models"
	"github.com/devshahzaibali/FSH-Traders/session"
)

type fakeOrders struct {
	byKey   map[string]models.Order
	failing bool
	creates int
}

func (f *fakeOrders) CreateOrder(_ context.Context, order models.Order) (models.Order, error) {
	f.creates++
	if f.failing {
		return models.Order{}, errors.New("connection refused")
	}
	if f.byKey == nil {
		f.byKey = make(map[string]models.Order)
	}
	if existing, ok := f.byKey[order.IdempotencyKey]; ok {
		return existing, nil
	}
	f.byKey[order.IdempotencyKey] = order
	return order, nil
}

type fakeProfiles struct {
	err   error
	saved *models.Address
}

func (f *fakeProfiles) SaveAddress(_ context.Context, _ string, addr models.Address) error {
	if f.err != nil {
		return f.err
	}
	f.saved = &addr
	return nil
}

type fakeNotifier struct {
	adminErr    error
	customerErr error
	adminSent   int
	custSent    int
}

func (f *fakeNotifier) NotifyNewOrder(_ context.Context, _ models.Order) error {
	f.adminSent++
	return f.adminErr
}

func (f *fakeNotifier) SendOrderConfirmation(_ context.Context, _ models.Order) error {
	f.custSent++
	return f.customerErr
}

func validAddress() models.Address {
	return models.Address{
		FullName:   "Asha Khan",
		Street:     "12 Canal Road",
		City:       "Lahore",
		State:      "Punjab",
		PostalCode: "54000",
		Country:    "Pakistan",
	}
}

func testCart(t *testing.T) *localcart.Store {
	t.Helper()
	c := localcart.NewStore()
	require.NoError(t, c.AddItem("a", "Rice 5kg", decimal.RequireFromString("10.00"), 2))
	require.NoError(t, c.AddItem("b", "Lentils", decimal.RequireFromString("5.50"), 1))
	return c
}

func newTestOrchestrator(orders OrderStore, profiles AddressSaver, notifier Notifier) *Orchestrator {
	o := New(session.Resolved(session.Identity{
		ID:    "u1",
		Email: "asha@example.com",
		Name:  "Asha Khan",
		Role:  session.RoleCustomer,
	}), orders, profiles, notifier)
	n := 0
	o.newID = func() string {
		n++
		return string(rune('k'+n-1)) + "-id"
	}
	return o
}

func TestBegin_RequiresAuthenticatedIdentity(t *testing.T) {
	o := New(session.Anonymous(), &fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	_, err := o.Begin(context.Background(), testCart(t))
	require.ErrorIs(t, err, session.ErrUnauthenticated)
}

func TestBegin_RejectsEmptyCart(t *testing.T) {
	o := newTestOrchestrator(&fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	_, err := o.Begin(context.Background(), localcart.NewStore())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmit_HappyPath(t *testing.T) {
	orders := &fakeOrders{}
	profiles := &fakeProfiles{}
	notifier := &fakeNotifier{}
	c := testCart(t)

	o := newTestOrchestrator(orders, profiles, notifier)
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, StageAddressCapture, run.Stage())

	res, err := run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, StageComplete, run.Stage())
	assert.True(t, res.Order.Total.Equal(decimal.RequireFromString("25.50")), "got %s", res.Order.Total)
	assert.Equal(t, models.OrderStatusPending, res.Order.Status)
	assert.Len(t, res.Order.Items, 2)
	assert.Equal(t, "u1", res.Order.UserID)
	assert.Empty(t, res.Warnings)

	assert.Equal(t, 0, c.Len(), "cart is cleared after completion")
	assert.Equal(t, 1, notifier.adminSent)
	assert.Equal(t, 1, notifier.custSent)
	require.NotNil(t, profiles.saved)
	assert.Equal(t, "Lahore", profiles.saved.City)
}

func TestSubmit_ValidationFailureKeepsRun(t *testing.T) {
	c := testCart(t)
	o := newTestOrchestrator(&fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	addr := validAddress()
	addr.City = ""
	addr.PostalCode = ""

	_, err = run.Submit(context.Background(), addr, models.PaymentPayOnDelivery)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "city")
	assert.Contains(t, verr.Fields, "postal_code")
	assert.Len(t, verr.Fields, 2)

	assert.Equal(t, StageAddressCapture, run.Stage())
	assert.Equal(t, 3, c.Items()[0].Quantity+c.Items()[1].Quantity, "cart untouched")

	// Same run retries successfully with a fixed address.
	_, err = run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)
}

func TestSubmit_CardPaymentReserved(t *testing.T) {
	c := testCart(t)
	o := newTestOrchestrator(&fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	_, err = run.Submit(context.Background(), validAddress(), models.PaymentCard)
	require.ErrorIs(t, err, ErrPaymentMethodUnavailable)
	assert.Equal(t, StageAddressCapture, run.Stage())
	assert.Equal(t, 2, c.Len())
}

func TestSubmit_PersistenceFailurePreservesCart(t *testing.T) {
	orders := &fakeOrders{failing: true}
	notifier := &fakeNotifier{}
	c := testCart(t)

	o := newTestOrchestrator(orders, &fakeProfiles{}, notifier)
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	_, err = run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	var serr *StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageSubmitting, serr.Stage)

	assert.Equal(t, 2, c.Len(), "no order means no cart clear")
	assert.Zero(t, notifier.adminSent, "no notifications for a failed submit")
	assert.Zero(t, notifier.custSent)
	assert.Equal(t, StageAddressCapture, run.Stage())
}

func TestSubmit_RetryReusesIdempotencyKey(t *testing.T) {
	orders := &fakeOrders{failing: true}
	c := testCart(t)

	o := newTestOrchestrator(orders, &fakeProfiles{}, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	_, err = run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.Error(t, err)

	orders.failing = false
	res, err := run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)

	assert.Equal(t, 2, orders.creates)
	assert.Len(t, orders.byKey, 1, "retry reuses the key, so at most one order exists")
	assert.Equal(t, run.idempotencyKey, res.Order.IdempotencyKey)
}

func TestSubmit_NotificationFailuresStillComplete(t *testing.T) {
	orders := &fakeOrders{}
	notifier := &fakeNotifier{
		adminErr:    errors.New("smtp timeout"),
		customerErr: errors.New("smtp timeout"),
	}
	c := testCart(t)

	o := newTestOrchestrator(orders, &fakeProfiles{}, notifier)
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	res, err := run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err, "notification failures never fail checkout")

	assert.Equal(t, StageComplete, run.Stage())
	assert.Len(t, res.Warnings, 2)
	assert.Equal(t, 0, c.Len(), "cart still cleared")
	assert.Len(t, orders.byKey, 1)
}

func TestSubmit_AddressSaveFailureIsWarning(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("profile unavailable")}
	c := testCart(t)

	o := newTestOrchestrator(&fakeOrders{}, profiles, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	res, err := run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 1)
	assert.Equal(t, StageComplete, run.Stage())
}

func TestSubmit_CompletedRunRejectsResubmission(t *testing.T) {
	c := testCart(t)
	o := newTestOrchestrator(&fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	_, err = run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)

	_, err = run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.ErrorIs(t, err, ErrRunComplete)
}

func TestSubmit_OrderSnapshotIsImmutable(t *testing.T) {
	c := testCart(t)
	o := newTestOrchestrator(&fakeOrders{}, &fakeProfiles{}, &fakeNotifier{})
	run, err := o.Begin(context.Background(), c)
	require.NoError(t, err)

	res, err := run.Submit(context.Background(), validAddress(), models.PaymentPayOnDelivery)
	require.NoError(t, err)

	// New cart activity after checkout must not touch the placed order.
	require.NoError(t, c.AddItem("z", "Sugar", decimal.RequireFromString("2.00"), 10))
	assert.Len(t, res.Order.Items, 2)
	assert.True(t, res.Order.Total.Equal(decimal.RequireFromString("25.50")))
}

func TestValidateAddress(t *testing.T) {
	assert.Nil(t, ValidateAddress(validAddress()))

	errs := ValidateAddress(models.Address{})
	assert.Len(t, errs, 6)
	for _, field := range []string{"full_name", "street", "city", "state", "postal_code", "country"} {
		assert.Contains(t, errs, field)
	}
}
