package cartControllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/cart"
	"github.com/devshahzaibali/FSH-Traders/models"
)

// LoadStore materializes the user's persisted cart into the domain store.
// Users get a cart row at signup; a missing one is recreated here.
func LoadStore(db *gorm.DB, userID string) (models.Cart, *cart.Store, error) {
	var record models.Cart
	err := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at, id")
	}).Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.Cart{UserID: userID}
		if err := db.Create(&record).Error; err != nil {
			return models.Cart{}, nil, err
		}
	} else if err != nil {
		return models.Cart{}, nil, err
	}

	items := make([]cart.Item, 0, len(record.Items))
	for _, it := range record.Items {
		items = append(items, cart.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			AddedAt:     it.AddedAt,
		})
	}
	return record, cart.Load(items), nil
}

// PersistStore writes the store's items back as the cart's authoritative
// contents.
func PersistStore(db *gorm.DB, cartID uint, store *cart.Store) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for _, it := range store.Items() {
			row := models.CartItem{
				CartID:      cartID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
				AddedAt:     it.AddedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cartID).
			Update("updated_at", time.Now()).Error
	})
}
