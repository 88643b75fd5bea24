package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/warehouse/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, warehouse *domain.Warehouse) error {
	return db.WithContext(ctx).Create(warehouse).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Warehouse, error) {
	var w domain.Warehouse
	err := db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Warehouse, error) {
	var items []domain.Warehouse
	err := db.WithContext(ctx).Order("warehouse_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, warehouse *domain.Warehouse) error {
	return db.WithContext(ctx).Save(warehouse).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Warehouse{}, "id = ?", id).Error
}
