package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Client, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Client, error)
	Update(ctx context.Context, db *gorm.DB, client *Client) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	CreateContact(ctx context.Context, db *gorm.DB, contact *Contact) error
	FindContactByID(ctx context.Context, db *gorm.DB, id int64) (*Contact, error)
	FindContacts(ctx context.Context, db *gorm.DB, clientID int64) ([]Contact, error)
	UpdateContact(ctx context.Context, db *gorm.DB, contact *Contact) error
	DeleteContact(ctx context.Context, db *gorm.DB, id int64) error
	DeleteContactsByClient(ctx context.Context, db *gorm.DB, clientID int64) error
}
