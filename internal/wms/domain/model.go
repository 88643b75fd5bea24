package domain

import "time"

// WMS is a warehouse management system; shipment CSV exports and their column
// layout are defined per WMS.
type WMS struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	WMSName   string    `json:"wms_name" gorm:"column:wms_name;type:text;not null"`
	Remarks   *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (WMS) TableName() string { return "wms_master" }
