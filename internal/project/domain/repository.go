package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, project *Project) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Project, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Project, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []int64) ([]Project, error)
	Update(ctx context.Context, db *gorm.DB, project *Project) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
