package domain

import "time"

// Product is a sellable item on one EC site. The pair (ec_site_id,
// product_code) is the identity the CSV import upserts against, so the store
// enforces it as a unique index.
type Product struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ECSiteID    int64     `json:"ec_site_id" gorm:"column:ec_site_id;not null;uniqueIndex:ux_product_site_code,priority:1"`
	ProjectID   *int64    `json:"project_id,omitempty" gorm:"index"`
	Category    *string   `json:"category,omitempty" gorm:"type:text"`
	ProductCode string    `json:"product_code" gorm:"type:text;not null;uniqueIndex:ux_product_site_code,priority:2"`
	ProductName string    `json:"product_name" gorm:"type:text;not null"`
	Variation   *string   `json:"variation,omitempty" gorm:"type:text"`
	UnitPrice   int64     `json:"unit_price" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "product_master" }
