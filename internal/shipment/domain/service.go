package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	Year        int
	Month       int
	WarehouseID *string
}

type Response struct {
	ID               string    `json:"id"`
	WarehouseID      string    `json:"warehouse_id"`
	OrderNumber      string    `json:"order_number"`
	ProductCode      *string   `json:"product_code,omitempty"`
	PurchaseQuantity int       `json:"purchase_quantity"`
	TotalAmount      int64     `json:"total_amount"`
	ShippingFee      int64     `json:"shipping_fee"`
	PaymentFee       int64     `json:"payment_fee"`
	CodFee           int64     `json:"cod_fee"`
	ShipmentDate     string    `json:"shipment_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

var (
	ErrInvalidPeriod = errors.New("invalid_period")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)

// MonthRange returns the half-open [start, end) interval covering one
// calendar month as YYYY-MM-DD strings. December rolls over to January of
// the next year.
func MonthRange(year, month int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return first.Format("2006-01-02"), first.AddDate(0, 1, 0).Format("2006-01-02")
}
