package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"    // order placed, awaiting back-office action
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before delivery

	PaymentPayOnDelivery PaymentMethod = "pay_on_delivery"
	PaymentCard          PaymentMethod = "card" // reserved, not yet accepted
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// statusFlow is forward-only: pending -> processing -> shipped -> delivered.
// Cancelled is reachable from any non-terminal state.
var statusFlow = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentPayOnDelivery:
		return PaymentPayOnDelivery, nil
	case PaymentCard:
		return PaymentCard, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// CanTransition reports whether a back-office status change is allowed.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID             string          `gorm:"primaryKey" json:"id"`
	IdempotencyKey string          `gorm:"uniqueIndex;not null" json:"-"`
	UserID         string          `gorm:"not null;index" json:"user_id"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total          decimal.Decimal `gorm:"type:numeric" json:"total"`
	Status         OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod  PaymentMethod   `gorm:"type:VARCHAR(20)" json:"payment_method"`
	CustomerName   string          `json:"customer_name"`
	CustomerEmail  string          `json:"customer_email"`
	CustomerPhone  string          `json:"customer_phone"`
	Address        Address         `gorm:"embedded;embeddedPrefix:shipping_" json:"address"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OrderItem is an immutable snapshot of a cart line at submission time.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	OrderID     string          `gorm:"index" json:"-"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// CreateOrder persists an order, deduplicating on the idempotency key so a
// retried checkout never produces a second order. The insert ignores a key
// conflict and falls back to reading the winner, so two racing submissions
// both resolve to the same stored order.
func CreateOrder(db *gorm.DB, order Order) (Order, error) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idempotency_key"}},
		DoNothing: true,
	}).Create(&order)
	if res.Error != nil {
		return Order{}, res.Error
	}
	if res.RowsAffected > 0 {
		return order, nil
	}

	var existing Order
	if err := db.Preload("Items").
		Where("idempotency_key = ?", order.IdempotencyKey).
		First(&existing).Error; err != nil {
		return Order{}, err
	}
	return existing, nil
}

// UpdateOrderStatus applies a back-office status change, enforcing the
// forward-only transition table.
func UpdateOrderStatus(db *gorm.DB, orderID string, to OrderStatus) (Order, error) {
	var order Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if !CanTransition(order.Status, to) {
			return ErrInvalidStatusTransition
		}
		order.Status = to
		return tx.Model(&Order{}).Where("id = ?", orderID).Update("status", to).Error
	})
	return order, err
}
