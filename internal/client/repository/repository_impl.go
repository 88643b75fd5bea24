package repository

import (
	"context"
	"errors"

	"github.com/saiteki-ops/saiteki/internal/client/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Client, error) {
	var c domain.Client
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Client, error) {
	var items []domain.Client
	err := db.WithContext(ctx).Order("client_number ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Save(client).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id).Error
}

func (r *repo) CreateContact(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).Create(contact).Error
}

func (r *repo) FindContactByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Contact, error) {
	var c domain.Contact
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) FindContacts(ctx context.Context, db *gorm.DB, clientID int64) ([]domain.Contact, error) {
	var items []domain.Contact
	err := db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateContact(ctx context.Context, db *gorm.DB, contact *domain.Contact) error {
	return db.WithContext(ctx).Save(contact).Error
}

func (r *repo) DeleteContact(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Contact{}, "id = ?", id).Error
}

func (r *repo) DeleteContactsByClient(ctx context.Context, db *gorm.DB, clientID int64) error {
	return db.WithContext(ctx).Delete(&domain.Contact{}, "client_id = ?", clientID).Error
}
