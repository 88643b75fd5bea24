package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/shipment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateBatch(ctx context.Context, db *gorm.DB, shipments []domain.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&shipments).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Shipment, error) {
	var s domain.Shipment
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Shipment, error) {
	var items []domain.Shipment
	err := db.WithContext(ctx).Order("shipment_date ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByDateRange(ctx context.Context, db *gorm.DB, start, end string, warehouseID *int64) ([]domain.Shipment, error) {
	q := db.WithContext(ctx).
		Where("shipment_date >= ? AND shipment_date < ?", start, end)
	if warehouseID != nil {
		q = q.Where("warehouse_id = ?", *warehouseID)
	}
	var items []domain.Shipment
	err := q.Order("shipment_date ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Shipment{}, "id = ?", id).Error
}
