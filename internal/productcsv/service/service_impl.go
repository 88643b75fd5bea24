package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/csvkit"
	"github.com/saiteki-ops/saiteki/internal/productcsv/domain"
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
		log:   p.Log.Named("productcsv.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	cartID, err := snowflake.ParseString(strings.TrimSpace(req.CartID))
	if err != nil {
		return nil, domain.ErrInvalidCart
	}
	codeColumn, err := requiredColumn(req.ProductCodeColumn)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &domain.Mapping{
		ID:                s.genID.Generate().Int64(),
		CartID:            cartID.Int64(),
		ProductCodeColumn: codeColumn,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if m.ProductNameColumn, err = optionalColumn(req.ProductNameColumn); err != nil {
		return nil, err
	}
	if m.UnitPriceColumn, err = optionalColumn(req.UnitPriceColumn); err != nil {
		return nil, err
	}
	if m.ProjectNameColumn, err = optionalColumn(req.ProjectNameColumn); err != nil {
		return nil, err
	}
	if m.CategoryColumn, err = optionalColumn(req.CategoryColumn); err != nil {
		return nil, err
	}
	if m.VariationColumn, err = optionalColumn(req.VariationColumn); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, s.db, m); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrMappingExists
		}
		return nil, err
	}
	resp := toResponse(m)
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
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(m)
	return &resp, nil
}

func (s *Service) GetByCart(ctx context.Context, cartID string) (*domain.Response, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(cartID))
	if err != nil {
		return nil, domain.ErrInvalidCart
	}
	m, err := s.repo.FindByCart(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(m)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	m, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ProductCodeColumn != nil {
		codeColumn, err := requiredColumn(*req.ProductCodeColumn)
		if err != nil {
			return nil, err
		}
		m.ProductCodeColumn = codeColumn
	}
	if req.ProductNameColumn != nil {
		if m.ProductNameColumn, err = optionalColumn(req.ProductNameColumn); err != nil {
			return nil, err
		}
	}
	if req.UnitPriceColumn != nil {
		if m.UnitPriceColumn, err = optionalColumn(req.UnitPriceColumn); err != nil {
			return nil, err
		}
	}
	if req.ProjectNameColumn != nil {
		if m.ProjectNameColumn, err = optionalColumn(req.ProjectNameColumn); err != nil {
			return nil, err
		}
	}
	if req.CategoryColumn != nil {
		if m.CategoryColumn, err = optionalColumn(req.CategoryColumn); err != nil {
			return nil, err
		}
	}
	if req.VariationColumn != nil {
		if m.VariationColumn, err = optionalColumn(req.VariationColumn); err != nil {
			return nil, err
		}
	}

	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, m); err != nil {
		return nil, err
	}
	resp := toResponse(m)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	m, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, m.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Mapping, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	m, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func requiredColumn(value string) (string, error) {
	column := strings.ToUpper(strings.TrimSpace(value))
	if _, err := csvkit.ColumnToIndex(column); err != nil {
		return "", domain.ErrInvalidColumn
	}
	return column, nil
}

func optionalColumn(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*value))
	if trimmed == "" {
		return nil, nil
	}
	if _, err := csvkit.ColumnToIndex(trimmed); err != nil {
		return nil, domain.ErrInvalidColumn
	}
	return &trimmed, nil
}

func toResponse(m *domain.Mapping) domain.Response {
	return domain.Response{
		ID:                snowflake.ID(m.ID).String(),
		CartID:            snowflake.ID(m.CartID).String(),
		ProductCodeColumn: m.ProductCodeColumn,
		ProductNameColumn: m.ProductNameColumn,
		UnitPriceColumn:   m.UnitPriceColumn,
		ProjectNameColumn: m.ProjectNameColumn,
		CategoryColumn:    m.CategoryColumn,
		VariationColumn:   m.VariationColumn,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
