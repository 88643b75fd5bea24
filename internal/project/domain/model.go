package domain

import "time"

// Project groups products for billing. Sales rows are attributed to a project
// through product_master.project_id, and the report subtotals by the owning
// client.
type Project struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	ProjectNumber       string    `json:"project_number" gorm:"type:text;not null"`
	ProjectName         string    `json:"project_name" gorm:"type:text;not null"`
	ClientID            int64     `json:"client_id" gorm:"not null;index"`
	StartDate           *string   `json:"start_date,omitempty" gorm:"type:date"`
	EndDate             *string   `json:"end_date,omitempty" gorm:"type:date"`
	SalesCommissionRate float64   `json:"sales_commission_rate" gorm:"not null;default:0"`
	WarehouseID         *int64    `json:"warehouse_id,omitempty" gorm:"index"`
	BillingCategoryID   *int64    `json:"billing_category_id,omitempty"`
	Remarks             *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string { return "project_master" }
