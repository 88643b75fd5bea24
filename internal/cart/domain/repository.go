package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, cart *Cart) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Cart, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Cart, error)
	Update(ctx context.Context, db *gorm.DB, cart *Cart) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
