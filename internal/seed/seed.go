package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	billingcategorydomain "github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
	"gorm.io/gorm"
)

var defaultBillingCategories = []string{"月額", "スポット"}

// EnsureBillingCategories seeds the standard billing categories on first
// startup so projects can be registered without a manual setup step. An
// already-populated table is left untouched.
func EnsureBillingCategories(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&billingcategorydomain.BillingCategory{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, name := range defaultBillingCategories {
			category := billingcategorydomain.BillingCategory{
				ID:           node.Generate().Int64(),
				CategoryName: name,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
