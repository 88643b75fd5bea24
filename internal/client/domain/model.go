package domain

import "time"

// Client is a billing counterparty. A client owns projects and receives the
// monthly invoice built from the sales report, so it carries the bank account
// and fixed-fee fields the invoice needs.
type Client struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	ClientNumber       string    `json:"client_number" gorm:"type:text;not null"`
	ClientName         string    `json:"client_name" gorm:"type:text;not null"`
	IsActive           bool      `json:"is_active" gorm:"not null;default:true"`
	PostalCode         *string   `json:"postal_code,omitempty" gorm:"type:text"`
	Address1           *string   `json:"address1,omitempty" gorm:"type:text"`
	Address2           *string   `json:"address2,omitempty" gorm:"type:text"`
	BankName           *string   `json:"bank_name,omitempty" gorm:"type:text"`
	BranchName         *string   `json:"branch_name,omitempty" gorm:"type:text"`
	AccountType        *string   `json:"account_type,omitempty" gorm:"type:text"`
	AccountNumber      *string   `json:"account_number,omitempty" gorm:"type:text"`
	AccountHolder      *string   `json:"account_holder,omitempty" gorm:"type:text"`
	StorageFee         int64     `json:"storage_fee" gorm:"not null;default:0"`
	OperationFixedCost int64     `json:"operation_fixed_cost" gorm:"not null;default:0"`
	Remarks            *string   `json:"remarks,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Client) TableName() string { return "client_master" }

// Contact is a person on the client side. Contacts flagged with SendInvoice
// receive the monthly invoice mail.
type Contact struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ClientID    int64     `json:"client_id" gorm:"not null;index"`
	ContactName string    `json:"contact_name" gorm:"type:text;not null"`
	Email       *string   `json:"email,omitempty" gorm:"type:text"`
	PhoneNumber *string   `json:"phone_number,omitempty" gorm:"type:text"`
	SendInvoice bool      `json:"send_invoice" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Contact) TableName() string { return "client_contacts" }
