package domain

import "time"

// Shipment is one imported WMS row. Rows are append-only: re-importing the
// same file creates new records. ShipmentDate is kept as text so values the
// date normalizer does not recognize reach the store unchanged and fail the
// column type check there, not silently.
type Shipment struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	WarehouseID      int64     `json:"warehouse_id" gorm:"not null;index"`
	OrderNumber      string    `json:"order_number" gorm:"type:text;not null;index"`
	ProductCode      *string   `json:"product_code,omitempty" gorm:"type:text;index"`
	PurchaseQuantity int       `json:"purchase_quantity" gorm:"not null;default:0"`
	TotalAmount      int64     `json:"total_amount" gorm:"not null;default:0"`
	ShippingFee      int64     `json:"shipping_fee" gorm:"not null;default:0"`
	PaymentFee       int64     `json:"payment_fee" gorm:"not null;default:0"`
	CodFee           int64     `json:"cod_fee" gorm:"column:cod_fee;not null;default:0"`
	ShipmentDate     string    `json:"shipment_date" gorm:"type:date;not null;index"`
	CreatedAt        time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Shipment) TableName() string { return "shipment_records" }
