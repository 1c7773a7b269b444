package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CartID      uint            `gorm:"index" json:"-"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric" json:"unit_price"` // snapshotted at add time
	Quantity    int             `json:"quantity"`
	AddedAt     time.Time       `json:"added_at"`
}
