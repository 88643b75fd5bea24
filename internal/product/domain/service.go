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
	ECSiteID    string  `json:"ec_site_id"`
	ProjectID   *string `json:"project_id"`
	Category    *string `json:"category"`
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name"`
	Variation   *string `json:"variation"`
	UnitPrice   int64   `json:"unit_price"`
}

type UpdateRequest struct {
	ID          string
	ECSiteID    *string `json:"ec_site_id"`
	ProjectID   *string `json:"project_id"`
	Category    *string `json:"category"`
	ProductCode *string `json:"product_code"`
	ProductName *string `json:"product_name"`
	Variation   *string `json:"variation"`
	UnitPrice   *int64  `json:"unit_price"`
}

type Response struct {
	ID          string    `json:"id"`
	ECSiteID    string    `json:"ec_site_id"`
	ProjectID   *string   `json:"project_id,omitempty"`
	Category    *string   `json:"category,omitempty"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Variation   *string   `json:"variation,omitempty"`
	UnitPrice   int64     `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidCode   = errors.New("invalid_product_code")
	ErrInvalidECSite = errors.New("invalid_ec_site_id")
	ErrDuplicateCode = errors.New("duplicate_product_code")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
