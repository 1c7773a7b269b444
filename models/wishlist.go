package models

import "gorm.io/gorm"

// WishlistEntry is one product reference in a user's wishlist. The composite
// unique index makes the set deduplicated by construction.
type WishlistEntry struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UserID    string `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID string `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id"`
}

func GetWishlist(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	if err := db.Model(&WishlistEntry{}).
		Where("user_id = ?", userID).
		Order("product_id").
		Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceWishlist makes the stored set match ids exactly.
func ReplaceWishlist(db *gorm.DB, userID string, ids []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&WishlistEntry{}).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := tx.Create(&WishlistEntry{UserID: userID, ProductID: id}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
