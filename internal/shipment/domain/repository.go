package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, shipments []Shipment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Shipment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Shipment, error)

	// FindByDateRange returns rows with start <= shipment_date < end,
	// optionally limited to one warehouse, ordered by shipment_date.
	FindByDateRange(ctx context.Context, db *gorm.DB, start, end string, warehouseID *int64) ([]Shipment, error)

	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
