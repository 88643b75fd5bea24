package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/ecsite/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, site *domain.ECSite) error {
	return db.WithContext(ctx).Create(site).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.ECSite, error) {
	var s domain.ECSite
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.ECSite, error) {
	var items []domain.ECSite
	err := db.WithContext(ctx).Order("ec_site_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, site *domain.ECSite) error {
	return db.WithContext(ctx).Save(site).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.ECSite{}, "id = ?", id).Error
}
