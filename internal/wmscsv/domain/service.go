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
	GetByWMS(ctx context.Context, wmsID string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	WMSID                  string  `json:"wms_id"`
	OrderNumberColumn      string  `json:"order_number_column"`
	ProductCodeColumn      string  `json:"product_code_column"`
	ShipmentQuantityColumn string  `json:"shipment_quantity_column"`
	UnitPriceColumn        string  `json:"unit_price_column"`
	ShipmentDateColumn     string  `json:"shipment_date_column"`
	ShippingFeeColumn      *string `json:"shipping_fee_column"`
	ShippingFeeTarget      *string `json:"shipping_fee_target"`
	PaymentFeeColumn       *string `json:"payment_fee_column"`
	PaymentFeeTarget       *string `json:"payment_fee_target"`
	CodFeeColumn           *string `json:"cod_fee_column"`
	CodFeeTarget           *string `json:"cod_fee_target"`
}

type UpdateRequest struct {
	ID                     string
	OrderNumberColumn      *string `json:"order_number_column"`
	ProductCodeColumn      *string `json:"product_code_column"`
	ShipmentQuantityColumn *string `json:"shipment_quantity_column"`
	UnitPriceColumn        *string `json:"unit_price_column"`
	ShipmentDateColumn     *string `json:"shipment_date_column"`
	ShippingFeeColumn      *string `json:"shipping_fee_column"`
	ShippingFeeTarget      *string `json:"shipping_fee_target"`
	PaymentFeeColumn       *string `json:"payment_fee_column"`
	PaymentFeeTarget       *string `json:"payment_fee_target"`
	CodFeeColumn           *string `json:"cod_fee_column"`
	CodFeeTarget           *string `json:"cod_fee_target"`
}

type Response struct {
	ID                     string    `json:"id"`
	WMSID                  string    `json:"wms_id"`
	OrderNumberColumn      string    `json:"order_number_column"`
	ProductCodeColumn      string    `json:"product_code_column"`
	ShipmentQuantityColumn string    `json:"shipment_quantity_column"`
	UnitPriceColumn        string    `json:"unit_price_column"`
	ShipmentDateColumn     string    `json:"shipment_date_column"`
	ShippingFeeColumn      *string   `json:"shipping_fee_column,omitempty"`
	ShippingFeeTarget      *string   `json:"shipping_fee_target,omitempty"`
	PaymentFeeColumn       *string   `json:"payment_fee_column,omitempty"`
	PaymentFeeTarget       *string   `json:"payment_fee_target,omitempty"`
	CodFeeColumn           *string   `json:"cod_fee_column,omitempty"`
	CodFeeTarget           *string   `json:"cod_fee_target,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

var (
	ErrInvalidWMS    = errors.New("invalid_wms_id")
	ErrInvalidColumn = errors.New("invalid_column_label")
	ErrMappingExists = errors.New("mapping_exists")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
