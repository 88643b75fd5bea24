package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, category *BillingCategory) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*BillingCategory, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]BillingCategory, error)
	Update(ctx context.Context, db *gorm.DB, category *BillingCategory) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
