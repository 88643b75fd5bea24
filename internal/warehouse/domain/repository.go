package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, warehouse *Warehouse) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Warehouse, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Warehouse, error)
	Update(ctx context.Context, db *gorm.DB, warehouse *Warehouse) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
