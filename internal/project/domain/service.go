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
	ProjectNumber       string  `json:"project_number"`
	ProjectName         string  `json:"project_name"`
	ClientID            string  `json:"client_id"`
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	SalesCommissionRate float64 `json:"sales_commission_rate"`
	WarehouseID         *string `json:"warehouse_id"`
	BillingCategoryID   *string `json:"billing_category_id"`
	Remarks             *string `json:"remarks"`
}

type UpdateRequest struct {
	ID                  string
	ProjectNumber       *string  `json:"project_number"`
	ProjectName         *string  `json:"project_name"`
	ClientID            *string  `json:"client_id"`
	StartDate           *string  `json:"start_date"`
	EndDate             *string  `json:"end_date"`
	SalesCommissionRate *float64 `json:"sales_commission_rate"`
	WarehouseID         *string  `json:"warehouse_id"`
	BillingCategoryID   *string  `json:"billing_category_id"`
	Remarks             *string  `json:"remarks"`
}

type Response struct {
	ID                  string    `json:"id"`
	ProjectNumber       string    `json:"project_number"`
	ProjectName         string    `json:"project_name"`
	ClientID            string    `json:"client_id"`
	StartDate           *string   `json:"start_date,omitempty"`
	EndDate             *string   `json:"end_date,omitempty"`
	SalesCommissionRate float64   `json:"sales_commission_rate"`
	WarehouseID         *string   `json:"warehouse_id,omitempty"`
	BillingCategoryID   *string   `json:"billing_category_id,omitempty"`
	Remarks             *string   `json:"remarks,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

var (
	ErrInvalidName   = errors.New("invalid_project_name")
	ErrInvalidClient = errors.New("invalid_client_id")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
