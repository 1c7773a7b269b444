package productcontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devshahzaibali/FSH-Traders/data"
	"github.com/devshahzaibali/FSH-Traders/models"
)

// POST /api/sync-products
// Destructive bulk load: replaces the whole catalog with the static seed
// list. Back-office only.
func SyncProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
				return err
			}
			for _, p := range data.Catalog {
				p.CreatedAt = now
				p.UpdatedAt = now
				if err := tx.Create(&p).Error; err != nil {
					return err
				}
			}
			for _, cat := range data.Categories {
				var category models.Category
				if err := tx.Where(models.Category{Name: cat.Name}).
					Assign(models.Category{Image: cat.Image}).
					FirstOrCreate(&category).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sync products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Successfully synced %d products", len(data.Catalog)),
		})
	}
}
