package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/cart/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, cart *domain.Cart) error {
	return db.WithContext(ctx).Create(cart).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Cart, error) {
	var c domain.Cart
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Cart, error) {
	var items []domain.Cart
	err := db.WithContext(ctx).Order("cart_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, cart *domain.Cart) error {
	return db.WithContext(ctx).Save(cart).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Cart{}, "id = ?", id).Error
}
