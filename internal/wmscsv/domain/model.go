package domain

import "time"

// Mapping describes the column layout of a WMS shipment export. One mapping
// per WMS. The five required columns identify the row; each fee type has an
// optional column plus an optional target marker that switches the fee from
// per-row to first-row-of-order attribution.
type Mapping struct {
	ID                     int64     `json:"id" gorm:"primaryKey"`
	WMSID                  int64     `json:"wms_id" gorm:"column:wms_id;not null;uniqueIndex:ux_wms_csv_wms"`
	OrderNumberColumn      string    `json:"order_number_column" gorm:"type:text;not null"`
	ProductCodeColumn      string    `json:"product_code_column" gorm:"type:text;not null"`
	ShipmentQuantityColumn string    `json:"shipment_quantity_column" gorm:"type:text;not null"`
	UnitPriceColumn        string    `json:"unit_price_column" gorm:"type:text;not null"`
	ShipmentDateColumn     string    `json:"shipment_date_column" gorm:"type:text;not null"`
	ShippingFeeColumn      *string   `json:"shipping_fee_column,omitempty" gorm:"type:text"`
	ShippingFeeTarget      *string   `json:"shipping_fee_target,omitempty" gorm:"type:text"`
	PaymentFeeColumn       *string   `json:"payment_fee_column,omitempty" gorm:"type:text"`
	PaymentFeeTarget       *string   `json:"payment_fee_target,omitempty" gorm:"type:text"`
	CodFeeColumn           *string   `json:"cod_fee_column,omitempty" gorm:"column:cod_fee_column;type:text"`
	CodFeeTarget           *string   `json:"cod_fee_target,omitempty" gorm:"column:cod_fee_target;type:text"`
	CreatedAt              time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt              time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Mapping) TableName() string { return "wms_csv_master" }
