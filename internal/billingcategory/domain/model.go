package domain

import "time"

// BillingCategory classifies projects for invoicing purposes.
type BillingCategory struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CategoryName string    `json:"category_name" gorm:"type:text;not null"`
	Remarks      *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (BillingCategory) TableName() string { return "billing_category_master" }
