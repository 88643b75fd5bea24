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
	GetByCart(ctx context.Context, cartID string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	CartID            string  `json:"cart_id"`
	ProductCodeColumn string  `json:"product_code_column"`
	ProductNameColumn *string `json:"product_name_column"`
	UnitPriceColumn   *string `json:"unit_price_column"`
	ProjectNameColumn *string `json:"project_name_column"`
	CategoryColumn    *string `json:"category_column"`
	VariationColumn   *string `json:"variation_column"`
}

type UpdateRequest struct {
	ID                string
	ProductCodeColumn *string `json:"product_code_column"`
	ProductNameColumn *string `json:"product_name_column"`
	UnitPriceColumn   *string `json:"unit_price_column"`
	ProjectNameColumn *string `json:"project_name_column"`
	CategoryColumn    *string `json:"category_column"`
	VariationColumn   *string `json:"variation_column"`
}

type Response struct {
	ID                string    `json:"id"`
	CartID            string    `json:"cart_id"`
	ProductCodeColumn string    `json:"product_code_column"`
	ProductNameColumn *string   `json:"product_name_column,omitempty"`
	UnitPriceColumn   *string   `json:"unit_price_column,omitempty"`
	ProjectNameColumn *string   `json:"project_name_column,omitempty"`
	CategoryColumn    *string   `json:"category_column,omitempty"`
	VariationColumn   *string   `json:"variation_column,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

var (
	ErrInvalidCart   = errors.New("invalid_cart_id")
	ErrInvalidColumn = errors.New("invalid_column_label")
	ErrMappingExists = errors.New("mapping_exists")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
