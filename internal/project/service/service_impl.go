package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/project/domain"
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
		log:   p.Log.Named("project.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.ProjectName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	clientID, err := snowflake.ParseString(strings.TrimSpace(req.ClientID))
	if err != nil {
		return nil, domain.ErrInvalidClient
	}

	warehouseID, err := parseOptionalID(req.WarehouseID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	billingCategoryID, err := parseOptionalID(req.BillingCategoryID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:                  s.genID.Generate().Int64(),
		ProjectNumber:       strings.TrimSpace(req.ProjectNumber),
		ProjectName:         name,
		ClientID:            clientID.Int64(),
		StartDate:           trimPtr(req.StartDate),
		EndDate:             trimPtr(req.EndDate),
		SalesCommissionRate: req.SalesCommissionRate,
		WarehouseID:         warehouseID,
		BillingCategoryID:   billingCategoryID,
		Remarks:             trimPtr(req.Remarks),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
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

	if req.ProjectName != nil {
		name := strings.TrimSpace(*req.ProjectName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		p.ProjectName = name
	}
	if req.ProjectNumber != nil {
		p.ProjectNumber = strings.TrimSpace(*req.ProjectNumber)
	}
	if req.ClientID != nil {
		clientID, err := snowflake.ParseString(strings.TrimSpace(*req.ClientID))
		if err != nil {
			return nil, domain.ErrInvalidClient
		}
		p.ClientID = clientID.Int64()
	}
	if req.StartDate != nil {
		p.StartDate = trimPtr(req.StartDate)
	}
	if req.EndDate != nil {
		p.EndDate = trimPtr(req.EndDate)
	}
	if req.SalesCommissionRate != nil {
		p.SalesCommissionRate = *req.SalesCommissionRate
	}
	if req.WarehouseID != nil {
		warehouseID, err := parseOptionalID(req.WarehouseID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		p.WarehouseID = warehouseID
	}
	if req.BillingCategoryID != nil {
		billingCategoryID, err := parseOptionalID(req.BillingCategoryID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		p.BillingCategoryID = billingCategoryID
	}
	if req.Remarks != nil {
		p.Remarks = trimPtr(req.Remarks)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
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

func (s *Service) find(ctx context.Context, id string) (*domain.Project, error) {
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

func toResponse(p *domain.Project) domain.Response {
	return domain.Response{
		ID:                  snowflake.ID(p.ID).String(),
		ProjectNumber:       p.ProjectNumber,
		ProjectName:         p.ProjectName,
		ClientID:            snowflake.ID(p.ClientID).String(),
		StartDate:           p.StartDate,
		EndDate:             p.EndDate,
		SalesCommissionRate: p.SalesCommissionRate,
		WarehouseID:         formatOptionalID(p.WarehouseID),
		BillingCategoryID:   formatOptionalID(p.BillingCategoryID),
		Remarks:             p.Remarks,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
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
