package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/warehouse/domain"
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
		log:   p.Log.Named("warehouse.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.WarehouseName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	wmsID, err := snowflake.ParseString(strings.TrimSpace(req.WMSID))
	if err != nil {
		return nil, domain.ErrInvalidWMS
	}

	now := time.Now().UTC()
	w := &domain.Warehouse{
		ID:            s.genID.Generate().Int64(),
		WarehouseName: name,
		WMSID:         wmsID.Int64(),
		Remarks:       trimPtr(req.Remarks),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, s.db, w); err != nil {
		return nil, err
	}
	resp := toResponse(w)
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
	w, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(w)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	w, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.WarehouseName != nil {
		name := strings.TrimSpace(*req.WarehouseName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		w.WarehouseName = name
	}
	if req.WMSID != nil {
		wmsID, err := snowflake.ParseString(strings.TrimSpace(*req.WMSID))
		if err != nil {
			return nil, domain.ErrInvalidWMS
		}
		w.WMSID = wmsID.Int64()
	}
	if req.Remarks != nil {
		w.Remarks = trimPtr(req.Remarks)
	}

	w.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, w); err != nil {
		return nil, err
	}
	resp := toResponse(w)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	w, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, w.ID)
}

func (s *Service) find(ctx context.Context, id string) (*domain.Warehouse, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	w, err := s.repo.FindByID(ctx, s.db, parsed.Int64())
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return w, nil
}

func toResponse(w *domain.Warehouse) domain.Response {
	return domain.Response{
		ID:            snowflake.ID(w.ID).String(),
		WarehouseName: w.WarehouseName,
		WMSID:         snowflake.ID(w.WMSID).String(),
		Remarks:       w.Remarks,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
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
