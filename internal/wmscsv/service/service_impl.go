package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/csvkit"
	"github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
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
		log:   p.Log.Named("wmscsv.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	wmsID, err := snowflake.ParseString(strings.TrimSpace(req.WMSID))
	if err != nil {
		return nil, domain.ErrInvalidWMS
	}

	now := time.Now().UTC()
	m := &domain.Mapping{
		ID:        s.genID.Generate().Int64(),
		WMSID:     wmsID.Int64(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if m.OrderNumberColumn, err = requiredColumn(req.OrderNumberColumn); err != nil {
		return nil, err
	}
	if m.ProductCodeColumn, err = requiredColumn(req.ProductCodeColumn); err != nil {
		return nil, err
	}
	if m.ShipmentQuantityColumn, err = requiredColumn(req.ShipmentQuantityColumn); err != nil {
		return nil, err
	}
	if m.UnitPriceColumn, err = requiredColumn(req.UnitPriceColumn); err != nil {
		return nil, err
	}
	if m.ShipmentDateColumn, err = requiredColumn(req.ShipmentDateColumn); err != nil {
		return nil, err
	}
	if m.ShippingFeeColumn, err = optionalColumn(req.ShippingFeeColumn); err != nil {
		return nil, err
	}
	if m.PaymentFeeColumn, err = optionalColumn(req.PaymentFeeColumn); err != nil {
		return nil, err
	}
	if m.CodFeeColumn, err = optionalColumn(req.CodFeeColumn); err != nil {
		return nil, err
	}
	m.ShippingFeeTarget = trimPtr(req.ShippingFeeTarget)
	m.PaymentFeeTarget = trimPtr(req.PaymentFeeTarget)
	m.CodFeeTarget = trimPtr(req.CodFeeTarget)

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

func (s *Service) GetByWMS(ctx context.Context, wmsID string) (*domain.Response, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(wmsID))
	if err != nil {
		return nil, domain.ErrInvalidWMS
	}
	m, err := s.repo.FindByWMS(ctx, s.db, parsed.Int64())
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

	if req.OrderNumberColumn != nil {
		if m.OrderNumberColumn, err = requiredColumn(*req.OrderNumberColumn); err != nil {
			return nil, err
		}
	}
	if req.ProductCodeColumn != nil {
		if m.ProductCodeColumn, err = requiredColumn(*req.ProductCodeColumn); err != nil {
			return nil, err
		}
	}
	if req.ShipmentQuantityColumn != nil {
		if m.ShipmentQuantityColumn, err = requiredColumn(*req.ShipmentQuantityColumn); err != nil {
			return nil, err
		}
	}
	if req.UnitPriceColumn != nil {
		if m.UnitPriceColumn, err = requiredColumn(*req.UnitPriceColumn); err != nil {
			return nil, err
		}
	}
	if req.ShipmentDateColumn != nil {
		if m.ShipmentDateColumn, err = requiredColumn(*req.ShipmentDateColumn); err != nil {
			return nil, err
		}
	}
	if req.ShippingFeeColumn != nil {
		if m.ShippingFeeColumn, err = optionalColumn(req.ShippingFeeColumn); err != nil {
			return nil, err
		}
	}
	if req.PaymentFeeColumn != nil {
		if m.PaymentFeeColumn, err = optionalColumn(req.PaymentFeeColumn); err != nil {
			return nil, err
		}
	}
	if req.CodFeeColumn != nil {
		if m.CodFeeColumn, err = optionalColumn(req.CodFeeColumn); err != nil {
			return nil, err
		}
	}
	if req.ShippingFeeTarget != nil {
		m.ShippingFeeTarget = trimPtr(req.ShippingFeeTarget)
	}
	if req.PaymentFeeTarget != nil {
		m.PaymentFeeTarget = trimPtr(req.PaymentFeeTarget)
	}
	if req.CodFeeTarget != nil {
		m.CodFeeTarget = trimPtr(req.CodFeeTarget)
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

func toResponse(m *domain.Mapping) domain.Response {
	return domain.Response{
		ID:                     snowflake.ID(m.ID).String(),
		WMSID:                  snowflake.ID(m.WMSID).String(),
		OrderNumberColumn:      m.OrderNumberColumn,
		ProductCodeColumn:      m.ProductCodeColumn,
		ShipmentQuantityColumn: m.ShipmentQuantityColumn,
		UnitPriceColumn:        m.UnitPriceColumn,
		ShipmentDateColumn:     m.ShipmentDateColumn,
		ShippingFeeColumn:      m.ShippingFeeColumn,
		ShippingFeeTarget:      m.ShippingFeeTarget,
		PaymentFeeColumn:       m.PaymentFeeColumn,
		PaymentFeeTarget:       m.PaymentFeeTarget,
		CodFeeColumn:           m.CodFeeColumn,
		CodFeeTarget:           m.CodFeeTarget,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
