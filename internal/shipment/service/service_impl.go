package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/shipment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("shipment.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	var (
		items []domain.Shipment
		err   error
	)
	if req.Year == 0 && req.Month == 0 {
		items, err = s.repo.FindAll(ctx, s.db)
	} else {
		if req.Month < 1 || req.Month > 12 || req.Year < 1 {
			return nil, domain.ErrInvalidPeriod
		}
		var warehouseID *int64
		if req.WarehouseID != nil && strings.TrimSpace(*req.WarehouseID) != "" {
			parsed, perr := snowflake.ParseString(strings.TrimSpace(*req.WarehouseID))
			if perr != nil {
				return nil, domain.ErrInvalidID
			}
			id := parsed.Int64()
			warehouseID = &id
		}
		start, end := domain.MonthRange(req.Year, req.Month)
		items, err = s.repo.FindByDateRange(ctx, s.db, start, end, warehouseID)
	}
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
	row, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(row)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	row, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, row.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Shipment, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	row, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func toResponse(s *domain.Shipment) domain.Response {
	return domain.Response{
		ID:               snowflake.ID(s.ID).String(),
		WarehouseID:      snowflake.ID(s.WarehouseID).String(),
		OrderNumber:      s.OrderNumber,
		ProductCode:      s.ProductCode,
		PurchaseQuantity: s.PurchaseQuantity,
		TotalAmount:      s.TotalAmount,
		ShippingFee:      s.ShippingFee,
		PaymentFee:       s.PaymentFee,
		CodFee:           s.CodFee,
		ShipmentDate:     s.ShipmentDate,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
