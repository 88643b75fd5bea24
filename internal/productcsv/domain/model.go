package domain

import "time"

// Mapping describes where in a cart's CSV export each product field lives.
// Columns are spreadsheet letters (A, B, ..., AA). One mapping per cart,
// enforced by the unique index.
type Mapping struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	CartID            int64     `json:"cart_id" gorm:"column:cart_id;not null;uniqueIndex:ux_product_csv_cart"`
	ProductCodeColumn string    `json:"product_code_column" gorm:"type:text;not null"`
	ProductNameColumn *string   `json:"product_name_column,omitempty" gorm:"type:text"`
	UnitPriceColumn   *string   `json:"unit_price_column,omitempty" gorm:"type:text"`
	ProjectNameColumn *string   `json:"project_name_column,omitempty" gorm:"type:text"`
	CategoryColumn    *string   `json:"category_column,omitempty" gorm:"type:text"`
	VariationColumn   *string   `json:"variation_column,omitempty" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Mapping) TableName() string { return "product_csv_master" }
