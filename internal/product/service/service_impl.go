package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/product/domain"
	"github.com/saiteki-ops/saiteki/pkg/db"
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
		log:   p.Log.Named("product.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	code := strings.TrimSpace(req.ProductCode)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	ecSiteID, err := snowflake.ParseString(strings.TrimSpace(req.ECSiteID))
	if err != nil {
		return nil, domain.ErrInvalidECSite
	}
	projectID, err := parseOptionalID(req.ProjectID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          s.genID.Generate().Int64(),
		ECSiteID:    ecSiteID.Int64(),
		ProjectID:   projectID,
		Category:    trimPtr(req.Category),
		ProductCode: code,
		ProductName: strings.TrimSpace(req.ProductName),
		Variation:   trimPtr(req.Variation),
		UnitPrice:   req.UnitPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	resp := toResponse(p)
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
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	p, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ProductCode != nil {
		code := strings.TrimSpace(*req.ProductCode)
		if code == "" {
			return nil, domain.ErrInvalidCode
		}
		p.ProductCode = code
	}
	if req.ECSiteID != nil {
		ecSiteID, err := snowflake.ParseString(strings.TrimSpace(*req.ECSiteID))
		if err != nil {
			return nil, domain.ErrInvalidECSite
		}
		p.ECSiteID = ecSiteID.Int64()
	}
	if req.ProjectID != nil {
		projectID, err := parseOptionalID(req.ProjectID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		p.ProjectID = projectID
	}
	if req.Category != nil {
		p.Category = trimPtr(req.Category)
	}
	if req.ProductName != nil {
		p.ProductName = strings.TrimSpace(*req.ProductName)
	}
	if req.Variation != nil {
		p.Variation = trimPtr(req.Variation)
	}
	if req.UnitPrice != nil {
		p.UnitPrice = *req.UnitPrice
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, p.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Product, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	p, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(p.ID).String(),
		ECSiteID:    snowflake.ID(p.ECSiteID).String(),
		ProjectID:   formatOptionalID(p.ProjectID),
		Category:    p.Category,
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		Variation:   p.Variation,
		UnitPrice:   p.UnitPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func parseOptionalID(value *string) (*int64, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := snowflake.ParseString(trimmed)
	if err != nil {
		return nil, err
	}
	id := parsed.Int64()
	return &id, nil
}

func formatOptionalID(id *int64) *string {
	if id == nil {
		return nil
	}
	s := snowflake.ID(*id).String()
	return &s
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
