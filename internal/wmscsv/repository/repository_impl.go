package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, mapping *domain.Mapping) error {
	return db.WithContext(ctx).Create(mapping).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Mapping, error) {
	var m domain.Mapping
	err := db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) FindByWMS(ctx context.Context, db *gorm.DB, wmsID int64) (*domain.Mapping, error) {
	var m domain.Mapping
	err := db.WithContext(ctx).First(&m, "wms_id = ?", wmsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Mapping, error) {
	var items []domain.Mapping
	err := db.WithContext(ctx).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, mapping *domain.Mapping) error {
	return db.WithContext(ctx).Save(mapping).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Mapping{}, "id = ?", id).Error
}
