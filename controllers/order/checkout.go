package orderControllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/cart"
	"github.com/devshahzaibali/FSH-Traders/checkout"
	cartControllers "github.com/devshahzaibali/FSH-Traders/controllers/cart"
	"github.com/devshahzaibali/FSH-Traders/feed"
	"github.com/devshahzaibali/FSH-Traders/mailer"
	"github.com/devshahzaibali/FSH-Traders/middleware"
	"github.com/devshahzaibali/FSH-Traders/models"
	"github.com/devshahzaibali/FSH-Traders/session"
)

type CheckoutRequest struct {
	Address       models.Address `json:"address"`
	PaymentMethod string         `json:"payment_method"`
}

// POST /orders/checkout
// Runs the full orchestration: address validation, order persistence,
// notification dispatch, cart clear. Notification failures surface as
// warnings, not errors.
func CheckoutHandler(db *gorm.DB, m *mailer.Mailer, hub *feed.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		method, err := models.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		record, store, err := cartControllers.LoadStore(db, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		orch := checkout.New(
			middleware.GateFrom(c),
			orderStore{db: db},
			addressSaver{db: db},
			m,
		)

		run, err := orch.Begin(c.Request.Context(), &persistedCart{db: db, cartID: record.CartID, store: store})
		if err != nil {
			switch {
			case errors.Is(err, session.ErrUnauthenticated):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		result, err := run.Submit(c.Request.Context(), req.Address, method)
		if err != nil {
			var vErr *checkout.ValidationError
			var sErr *checkout.StageError
			switch {
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipping address", "fields": vErr.Fields})
			case errors.Is(err, checkout.ErrPaymentMethodUnavailable):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.As(err, &sErr):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order, your cart has been preserved"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		hub.Publish(feed.Event{Type: feed.OrderCreated, Order: result.Order})

		c.JSON(http.StatusOK, gin.H{
			"message":  "Order placed successfully",
			"order":    result.Order,
			"warnings": result.Warnings,
		})
	}
}

// persistedCart bridges the domain store and its database row so the
// orchestrator's clear reaches durable storage.
type persistedCart struct {
	db     *gorm.DB
	cartID uint
	store  *cart.Store
}

func (p *persistedCart) Items() []cart.Item     { return p.store.Items() }
func (p *persistedCart) Total() decimal.Decimal { return p.store.Total() }
func (p *persistedCart) Len() int               { return p.store.Len() }

func (p *persistedCart) Clear() {
	p.store.Clear()
	if err := cartControllers.PersistStore(p.db, p.cartID, p.store); err != nil {
		// The order is already durable; a failed clear only risks a stale
		// cart row, which the next load overwrites.
		log.Printf("checkout: failed to persist cart clear for cart %d: %v", p.cartID, err)
	}
}

type orderStore struct {
	db *gorm.DB
}

func (s orderStore) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	return models.CreateOrder(s.db.WithContext(ctx), order)
}

type addressSaver struct {
	db *gorm.DB
}

func (s addressSaver) SaveAddress(ctx context.Context, userID string, addr models.Address) error {
	return models.SaveAddress(s.db.WithContext(ctx), userID, addr)
}
