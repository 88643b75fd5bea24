package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error

	ListContacts(ctx context.Context, clientID string) ([]ContactResponse, error)
	AddContact(ctx context.Context, req ContactRequest) (*ContactResponse, error)
	UpdateContact(ctx context.Context, req UpdateContactRequest) (*ContactResponse, error)
	DeleteContact(ctx context.Context, id string) error
}

type CreateRequest struct {
	ClientNumber       string           `json:"client_number"`
	ClientName         string           `json:"client_name"`
	IsActive           *bool            `json:"is_active"`
	PostalCode         *string          `json:"postal_code"`
	Address1           *string          `json:"address1"`
	Address2           *string          `json:"address2"`
	BankName           *string          `json:"bank_name"`
	BranchName         *string          `json:"branch_name"`
	AccountType        *string          `json:"account_type"`
	AccountNumber      *string          `json:"account_number"`
	AccountHolder      *string          `json:"account_holder"`
	StorageFee         int64            `json:"storage_fee"`
	OperationFixedCost int64            `json:"operation_fixed_cost"`
	Remarks            *string          `json:"remarks"`
	Contacts           []ContactRequest `json:"contacts"`
}

type UpdateRequest struct {
	ID                 string
	ClientNumber       *string `json:"client_number"`
	ClientName         *string `json:"client_name"`
	IsActive           *bool   `json:"is_active"`
	PostalCode         *string `json:"postal_code"`
	Address1           *string `json:"address1"`
	Address2           *string `json:"address2"`
	BankName           *string `json:"bank_name"`
	BranchName         *string `json:"branch_name"`
	AccountType        *string `json:"account_type"`
	AccountNumber      *string `json:"account_number"`
	AccountHolder      *string `json:"account_holder"`
	StorageFee         *int64  `json:"storage_fee"`
	OperationFixedCost *int64  `json:"operation_fixed_cost"`
	Remarks            *string `json:"remarks"`
}

type ContactRequest struct {
	ClientID    string  `json:"client_id"`
	ContactName string  `json:"contact_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	SendInvoice bool    `json:"send_invoice"`
}

type UpdateContactRequest struct {
	ID          string
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	SendInvoice *bool   `json:"send_invoice"`
}

type Response struct {
	ID                 string            `json:"id"`
	ClientNumber       string            `json:"client_number"`
	ClientName         string            `json:"client_name"`
	IsActive           bool              `json:"is_active"`
	PostalCode         *string           `json:"postal_code,omitempty"`
	Address1           *string           `json:"address1,omitempty"`
	Address2           *string           `json:"address2,omitempty"`
	BankName           *string           `json:"bank_name,omitempty"`
	BranchName         *string           `json:"branch_name,omitempty"`
	AccountType        *string           `json:"account_type,omitempty"`
	AccountNumber      *string           `json:"account_number,omitempty"`
	AccountHolder      *string           `json:"account_holder,omitempty"`
	StorageFee         int64             `json:"storage_fee"`
	OperationFixedCost int64             `json:"operation_fixed_cost"`
	Remarks            *string           `json:"remarks,omitempty"`
	Contacts           []ContactResponse `json:"contacts,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ContactResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ContactName string    `json:"contact_name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	SendInvoice bool      `json:"send_invoice"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidName        = errors.New("invalid_client_name")
	ErrInvalidContactName = errors.New("invalid_contact_name")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrContactNotFound    = errors.New("contact_not_found")
)
