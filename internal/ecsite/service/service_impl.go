package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/ecsite/domain"
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
		log:   p.Log.Named("ecsite.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.ECSiteName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	cartID, err := snowflake.ParseString(strings.TrimSpace(req.CartID))
	if err != nil {
		return nil, domain.ErrInvalidCart
	}

	now := time.Now().UTC()
	site := &domain.ECSite{
		ID:         s.genID.Generate().Int64(),
		ECSiteName: name,
		CartID:     cartID.Int64(),
		Remarks:    trimPtr(req.Remarks),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, s.db, site); err != nil {
		return nil, err
	}
	resp := toResponse(site)
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
	site, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(site)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	site, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ECSiteName != nil {
		name := strings.TrimSpace(*req.ECSiteName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		site.ECSiteName = name
	}
	if req.CartID != nil {
		cartID, err := snowflake.ParseString(strings.TrimSpace(*req.CartID))
		if err != nil {
			return nil, domain.ErrInvalidCart
		}
		site.CartID = cartID.Int64()
	}
	if req.Remarks != nil {
		site.Remarks = trimPtr(req.Remarks)
	}

	site.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, site); err != nil {
		return nil, err
	}
	resp := toResponse(site)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	site, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, site.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.ECSite, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	site, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	return site, nil
}

func toResponse(site *domain.ECSite) domain.Response {
	return domain.Response{
		ID:         snowflake.ID(site.ID).String(),
		ECSiteName: site.ECSiteName,
		CartID:     snowflake.ID(site.CartID).String(),
		Remarks:    site.Remarks,
		CreatedAt:  site.CreatedAt,
		UpdatedAt:  site.UpdatedAt,
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
