package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/saiteki-ops/saiteki/internal/csvkit"
	ecsitedomain "github.com/saiteki-ops/saiteki/internal/ecsite/domain"
	"github.com/saiteki-ops/saiteki/internal/metrics"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	warehousedomain "github.com/saiteki-ops/saiteki/internal/warehouse/domain"
	wmscsvdomain "github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// shipmentBatchSize is the number of rows per insert statement. A failed
// batch counts all of its rows as errors; later batches are still attempted.
const shipmentBatchSize = 100

const (
	fatalMessage = "CSV取込中にエラーが発生しました"
)

var (
	ErrInvalidID            = errors.New("invalid_id")
	ErrECSiteNotFound       = errors.New("ec_site_not_found")
	ErrWarehouseNotFound    = errors.New("warehouse_not_found")
	ErrMappingNotConfigured = errors.New("mapping_not_configured")
	ErrMappingInvalid       = errors.New("mapping_invalid")
)

// Summary is the operator-facing result of one import run.
type Summary struct {
	Success int    `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Preview is the first rows of an upload with spreadsheet column labels, so
// an operator can verify the mapping before importing.
type Preview struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Metrics *metrics.ImportMetrics `optional:"true"`

	ECSites         ecsitedomain.Repository
	Warehouses      warehousedomain.Repository
	ProductMappings productcsvdomain.Repository
	WMSMappings     wmscsvdomain.Repository
	Products        productdomain.Repository
	Shipments       shipmentdomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	metrics *metrics.ImportMetrics

	ecSites         ecsitedomain.Repository
	warehouses      warehousedomain.Repository
	productMappings productcsvdomain.Repository
	wmsMappings     wmscsvdomain.Repository
	products        productdomain.Repository
	shipments       shipmentdomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:              p.DB,
		log:             p.Log.Named("importer"),
		genID:           p.GenID,
		metrics:         p.Metrics,
		ecSites:         p.ECSites,
		warehouses:      p.Warehouses,
		productMappings: p.ProductMappings,
		wmsMappings:     p.WMSMappings,
		products:        p.Products,
		shipments:       p.Shipments,
	}
}

// PreviewDocument decodes and parses an upload and returns its first rows.
// The first returned row is the file header.
func (s *Service) PreviewDocument(raw []byte, limit int) (*Preview, error) {
	text, err := csvkit.DecodeText(raw)
	if err != nil {
		return nil, err
	}
	rows := csvkit.ParseDocument(text)
	if limit <= 0 {
		limit = 6
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	columns := make([]string, 0, width)
	for i := 0; i < width; i++ {
		columns = append(columns, csvkit.ColumnLabel(i))
	}
	return &Preview{Columns: columns, Rows: rows}, nil
}

// RunProduct imports a product catalog export for one EC site. Rows are
// upserted against (ec_site_id, product_code); optional fields overwrite the
// stored value only when the mapped cell is non-empty.
func (s *Service) RunProduct(ctx context.Context, ecSiteID string, raw []byte) (*Summary, error) {
	siteID, err := snowflake.ParseString(strings.TrimSpace(ecSiteID))
	if err != nil {
		return nil, ErrInvalidID
	}
	site, err := s.ecSites.FindByID(ctx, s.db, siteID.Int64())
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, ErrECSiteNotFound
	}

	mapping, err := s.productMappings.FindByCart(ctx, s.db, site.CartID)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotConfigured
	}
	resolver, err := productcsvdomain.NewResolver(mapping)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMappingInvalid, err)
	}

	s.metrics.IncRun(metrics.FeedProducts)

	text, err := csvkit.DecodeText(raw)
	if err != nil {
		s.log.Warn("product import failed to decode upload", zap.Error(err))
		s.metrics.AddRows(metrics.FeedProducts, metrics.ResultError, 1)
		return &Summary{Success: 0, Error: 1, Message: fatalMessage}, nil
	}

	rows := csvkit.ParseDocument(text)
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	var successCount, errorCount, skippedCount int
	for _, row := range rows {
		fields, ok := resolver.Resolve(row)
		if !ok {
			skippedCount++
			continue
		}
		if err := s.upsertProduct(ctx, site.ID, fields); err != nil {
			errorCount++
			s.log.Warn("product row not imported",
				zap.String("product_code", fields.Code),
				zap.Error(err))
			continue
		}
		successCount++
	}

	s.metrics.AddRows(metrics.FeedProducts, metrics.ResultSuccess, successCount)
	s.metrics.AddRows(metrics.FeedProducts, metrics.ResultError, errorCount)
	s.metrics.AddRows(metrics.FeedProducts, metrics.ResultSkipped, skippedCount)

	return &Summary{
		Success: successCount,
		Error:   errorCount,
		Message: summaryMessage(successCount, errorCount),
	}, nil
}

func (s *Service) upsertProduct(ctx context.Context, ecSiteID int64, fields productcsvdomain.ProductFields) error {
	now := nowUTC()
	p := &productdomain.Product{
		ID:          s.genID.Generate().Int64(),
		ECSiteID:    ecSiteID,
		ProductCode: fields.Code,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	columns := []string{"updated_at"}
	if fields.Name != nil {
		p.ProductName = *fields.Name
		columns = append(columns, "product_name")
	}
	if fields.UnitPrice != nil {
		p.UnitPrice = *fields.UnitPrice
		columns = append(columns, "unit_price")
	}
	if fields.Category != nil {
		p.Category = fields.Category
		columns = append(columns, "category")
	}
	if fields.Variation != nil {
		p.Variation = fields.Variation
		columns = append(columns, "variation")
	}
	return s.products.Upsert(ctx, s.db, p, columns)
}

// RunShipment imports a WMS shipment export for one warehouse. Records are
// append-only; re-importing the same file duplicates its rows.
func (s *Service) RunShipment(ctx context.Context, warehouseID string, raw []byte) (*Summary, error) {
	whID, err := snowflake.ParseString(strings.TrimSpace(warehouseID))
	if err != nil {
		return nil, ErrInvalidID
	}
	warehouse, err := s.warehouses.FindByID(ctx, s.db, whID.Int64())
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, ErrWarehouseNotFound
	}

	mapping, err := s.wmsMappings.FindByWMS(ctx, s.db, warehouse.WMSID)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, ErrMappingNotConfigured
	}
	resolver, err := wmscsvdomain.NewResolver(mapping)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMappingInvalid, err)
	}

	s.metrics.IncRun(metrics.FeedShipments)

	text, err := csvkit.DecodeText(raw)
	if err != nil {
		s.log.Warn("shipment import failed to decode upload", zap.Error(err))
		s.metrics.AddRows(metrics.FeedShipments, metrics.ResultError, 1)
		return &Summary{Success: 0, Error: 1, Message: fatalMessage}, nil
	}

	rows := csvkit.ParseDocument(text)
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	// Fee attribution state lives for exactly one run.
	tracker := wmscsvdomain.NewTracker()
	now := nowUTC()
	var records []shipmentdomain.Shipment
	var skippedCount int
	for _, row := range rows {
		fields, ok := resolver.Resolve(row, tracker)
		if !ok {
			skippedCount++
			continue
		}
		records = append(records, shipmentdomain.Shipment{
			ID:               s.genID.Generate().Int64(),
			WarehouseID:      warehouse.ID,
			OrderNumber:      fields.OrderNumber,
			ProductCode:      fields.ProductCode,
			PurchaseQuantity: fields.Quantity,
			TotalAmount:      fields.TotalAmount,
			ShippingFee:      fields.ShippingFee,
			PaymentFee:       fields.PaymentFee,
			CodFee:           fields.CodFee,
			ShipmentDate:     fields.ShipmentDate,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	var successCount, errorCount int
	for i := 0; i < len(records); i += shipmentBatchSize {
		end := i + shipmentBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[i:end]
		if err := s.shipments.CreateBatch(ctx, s.db, batch); err != nil {
			errorCount += len(batch)
			s.log.Warn("shipment batch not imported",
				zap.Int("offset", i),
				zap.Int("rows", len(batch)),
				zap.Error(err))
			continue
		}
		successCount += len(batch)
	}

	s.metrics.AddRows(metrics.FeedShipments, metrics.ResultSuccess, successCount)
	s.metrics.AddRows(metrics.FeedShipments, metrics.ResultError, errorCount)
	s.metrics.AddRows(metrics.FeedShipments, metrics.ResultSkipped, skippedCount)

	return &Summary{
		Success: successCount,
		Error:   errorCount,
		Message: summaryMessage(successCount, errorCount),
	}, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func summaryMessage(success, errorCount int) string {
	msg := fmt.Sprintf("取込完了: %d件成功", success)
	if errorCount > 0 {
		msg += fmt.Sprintf("、%d件エラー", errorCount)
	}
	return msg
}
