package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, site *ECSite) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*ECSite, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]ECSite, error)
	Update(ctx context.Context, db *gorm.DB, site *ECSite) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
