package domain

import "time"

// Warehouse is a physical location operated through a WMS. Shipment records
// are imported per warehouse using the column layout of its WMS.
type Warehouse struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	WarehouseName string    `json:"warehouse_name" gorm:"type:text;not null"`
	WMSID         int64     `json:"wms_id" gorm:"column:wms_id;not null;index"`
	Remarks       *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Warehouse) TableName() string { return "warehouse_master" }
