package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	FindByCodes(ctx context.Context, db *gorm.DB, codes []string) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	// Upsert inserts the row or, when (ec_site_id, product_code) already
	// exists, overwrites the given columns in a single statement. Columns
	// not listed keep their stored value.
	Upsert(ctx context.Context, db *gorm.DB, product *Product, columns []string) error
}
