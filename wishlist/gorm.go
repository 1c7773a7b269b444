package wishlist

import (
	"context"

	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/models"
)

// GormProfiles backs ProfileStore with the users' wishlist rows.
type GormProfiles struct {
	DB *gorm.DB
}

func (p GormProfiles) Wishlist(ctx context.Context, userID string) ([]string, error) {
	return models.GetWishlist(p.DB.WithContext(ctx), userID)
}

func (p GormProfiles) SaveWishlist(ctx context.Context, userID string, ids []string) error {
	return models.ReplaceWishlist(p.DB.WithContext(ctx), userID, ids)
}
