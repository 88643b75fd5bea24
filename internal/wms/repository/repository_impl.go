package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/wms/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, wms *domain.WMS) error {
	return db.WithContext(ctx).Create(wms).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.WMS, error) {
	var w domain.WMS
	err := db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.WMS, error) {
	var items []domain.WMS
	err := db.WithContext(ctx).Order("wms_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, wms *domain.WMS) error {
	return db.WithContext(ctx).Save(wms).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.WMS{}, "id = ?", id).Error
}
