package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/client/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("client.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	c := &domain.Client{
		ID:                 s.genID.Generate().Int64(),
		ClientNumber:       strings.TrimSpace(req.ClientNumber),
		ClientName:         name,
		IsActive:           true,
		PostalCode:         trimPtr(req.PostalCode),
		Address1:           trimPtr(req.Address1),
		Address2:           trimPtr(req.Address2),
		BankName:           trimPtr(req.BankName),
		BranchName:         trimPtr(req.BranchName),
		AccountType:        trimPtr(req.AccountType),
		AccountNumber:      trimPtr(req.AccountNumber),
		AccountHolder:      trimPtr(req.AccountHolder),
		StorageFee:         req.StorageFee,
		OperationFixedCost: req.OperationFixedCost,
		Remarks:            trimPtr(req.Remarks),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, c); err != nil {
			return err
		}
		for _, contact := range req.Contacts {
			contactName := strings.TrimSpace(contact.ContactName)
			if contactName == "" {
				continue
			}
			row := &domain.Contact{
				ID:          s.genID.Generate().Int64(),
				ClientID:    c.ID,
				ContactName: contactName,
				Email:       trimPtr(contact.Email),
				PhoneNumber: trimPtr(contact.PhoneNumber),
				SendInvoice: contact.SendInvoice,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.repo.CreateContact(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, snowflake.ID(c.ID).String())
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i], nil))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	contacts, err := s.repo.FindContacts(ctx, s.db, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toResponse(c, contacts)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	c, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		c.ClientName = name
	}
	if req.ClientNumber != nil {
		c.ClientNumber = strings.TrimSpace(*req.ClientNumber)
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.PostalCode != nil {
		c.PostalCode = trimPtr(req.PostalCode)
	}
	if req.Address1 != nil {
		c.Address1 = trimPtr(req.Address1)
	}
	if req.Address2 != nil {
		c.Address2 = trimPtr(req.Address2)
	}
	if req.BankName != nil {
		c.BankName = trimPtr(req.BankName)
	}
	if req.BranchName != nil {
		c.BranchName = trimPtr(req.BranchName)
	}
	if req.AccountType != nil {
		c.AccountType = trimPtr(req.AccountType)
	}
	if req.AccountNumber != nil {
		c.AccountNumber = trimPtr(req.AccountNumber)
	}
	if req.AccountHolder != nil {
		c.AccountHolder = trimPtr(req.AccountHolder)
	}
	if req.StorageFee != nil {
		c.StorageFee = *req.StorageFee
	}
	if req.OperationFixedCost != nil {
		c.OperationFixedCost = *req.OperationFixedCost
	}
	if req.Remarks != nil {
		c.Remarks = trimPtr(req.Remarks)
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, c); err != nil {
		return nil, err
	}
	return s.Get(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteContactsByClient(ctx, tx, c.ID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, c.ID)
	})
}

func (s *Service) ListContacts(ctx context.Context, clientID string) ([]domain.ContactResponse, error) {
	c, err := s.find(ctx, clientID)
	if err != nil {
		return nil, err
	}
	contacts, err := s.repo.FindContacts(ctx, s.db, c.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.ContactResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, toContactResponse(&contacts[i]))
	}
	return resp, nil
}

func (s *Service) AddContact(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error) {
	c, err := s.find(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.ContactName)
	if name == "" {
		return nil, domain.ErrInvalidContactName
	}

	now := time.Now().UTC()
	row := &domain.Contact{
		ID:          s.genID.Generate().Int64(),
		ClientID:    c.ID,
		ContactName: name,
		Email:       trimPtr(req.Email),
		PhoneNumber: trimPtr(req.PhoneNumber),
		SendInvoice: req.SendInvoice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateContact(ctx, s.db, row); err != nil {
		return nil, err
	}
	resp := toContactResponse(row)
	return &resp, nil
}

func (s *Service) UpdateContact(ctx context.Context, req domain.UpdateContactRequest) (*domain.ContactResponse, error) {
	row, err := s.findContact(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ContactName != nil {
		name := strings.TrimSpace(*req.ContactName)
		if name == "" {
			return nil, domain.ErrInvalidContactName
		}
		row.ContactName = name
	}
	if req.Email != nil {
		row.Email = trimPtr(req.Email)
	}
	if req.PhoneNumber != nil {
		row.PhoneNumber = trimPtr(req.PhoneNumber)
	}
	if req.SendInvoice != nil {
		row.SendInvoice = *req.SendInvoice
	}

	row.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateContact(ctx, s.db, row); err != nil {
		return nil, err
	}
	resp := toContactResponse(row)
	return &resp, nil
}

func (s *Service) DeleteContact(ctx context.Context, id string) error {
	row, err := s.findContact(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteContact(ctx, s.db, row.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Client, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	c, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) findContact(ctx context.Context, id string) (*domain.Contact, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	row, err := s.repo.FindContactByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrContactNotFound
	}
	return row, nil
}

func toResponse(c *domain.Client, contacts []domain.Contact) domain.Response {
	resp := domain.Response{
		ID:                 snowflake.ID(c.ID).String(),
		ClientNumber:       c.ClientNumber,
		ClientName:         c.ClientName,
		IsActive:           c.IsActive,
		PostalCode:         c.PostalCode,
		Address1:           c.Address1,
		Address2:           c.Address2,
		BankName:           c.BankName,
		BranchName:         c.BranchName,
		AccountType:        c.AccountType,
		AccountNumber:      c.AccountNumber,
		AccountHolder:      c.AccountHolder,
		StorageFee:         c.StorageFee,
		OperationFixedCost: c.OperationFixedCost,
		Remarks:            c.Remarks,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	for i := range contacts {
		resp.Contacts = append(resp.Contacts, toContactResponse(&contacts[i]))
	}
	return resp
}

func toContactResponse(c *domain.Contact) domain.ContactResponse {
	return domain.ContactResponse{
		ID:          snowflake.ID(c.ID).String(),
		ClientID:    snowflake.ID(c.ClientID).String(),
		ContactName: c.ContactName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		SendInvoice: c.SendInvoice,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
