package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	WarehouseName string  `json:"warehouse_name"`
	WMSID         string  `json:"wms_id"`
	Remarks       *string `json:"remarks"`
}

type UpdateRequest struct {
	ID            string
	WarehouseName *string `json:"warehouse_name"`
	WMSID         *string `json:"wms_id"`
	Remarks       *string `json:"remarks"`
}

type Response struct {
	ID            string    `json:"id"`
	WarehouseName string    `json:"warehouse_name"`
	WMSID         string    `json:"wms_id"`
	Remarks       *string   `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

var (
	ErrInvalidName = errors.New("invalid_warehouse_name")
	ErrInvalidWMS  = errors.New("invalid_wms_id")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
