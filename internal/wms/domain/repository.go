package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, wms *WMS) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*WMS, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]WMS, error)
	Update(ctx context.Context, db *gorm.DB, wms *WMS) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
