package domain

import "time"

// Cart is a checkout/storefront system from which product CSV exports
// originate. The CSV column layout is configured per cart, not per EC site.
type Cart struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	CartName            string    `json:"cart_name" gorm:"type:text;not null"`
	HasProjectInfoInCSV bool      `json:"has_project_info_in_csv" gorm:"column:has_project_info_in_csv;not null;default:false"`
	Remarks             *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Cart) TableName() string { return "cart_master" }
