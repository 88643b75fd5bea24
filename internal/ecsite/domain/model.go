package domain

import "time"

// ECSite is one storefront instance running on a cart. Products imported from
// a cart's CSV feed are registered per EC site.
type ECSite struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ECSiteName string    `json:"ec_site_name" gorm:"column:ec_site_name;type:text;not null"`
	CartID     int64     `json:"cart_id" gorm:"not null;index"`
	Remarks    *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ECSite) TableName() string { return "ec_site_master" }
