package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, category *domain.BillingCategory) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.BillingCategory, error) {
	var c domain.BillingCategory
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.BillingCategory, error) {
	var items []domain.BillingCategory
	err := db.WithContext(ctx).Order("category_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, category *domain.BillingCategory) error {
	return db.WithContext(ctx).Save(category).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.BillingCategory{}, "id = ?", id).Error
}
