package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, mapping *Mapping) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Mapping, error)
	FindByWMS(ctx context.Context, db *gorm.DB, wmsID int64) (*Mapping, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Mapping, error)
	Update(ctx context.Context, db *gorm.DB, mapping *Mapping) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
