package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
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
		log:   p.Log.Named("billingcategory.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	c := &domain.BillingCategory{
		ID:           s.genID.Generate().Int64(),
		CategoryName: name,
		Remarks:      trimPtr(req.Remarks),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, s.db, c); err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	c, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.CategoryName != nil {
		name := strings.TrimSpace(*req.CategoryName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		c.CategoryName = name
	}
	if req.Remarks != nil {
		c.Remarks = trimPtr(req.Remarks)
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, c); err != nil {
		return nil, err
	}
	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, c.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.BillingCategory, error) {
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

func toResponse(c *domain.BillingCategory) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(c.ID).String(),
		CategoryName: c.CategoryName,
		Remarks:      c.Remarks,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
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
