package salesreport

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/saiteki-ops/saiteki/internal/client/domain"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	projectdomain "github.com/saiteki-ops/saiteki/internal/project/domain"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const unlinkedKey = "__unlinked__"

var (
	ErrInvalidPeriod    = errors.New("invalid_period")
	ErrInvalidWarehouse = errors.New("invalid_warehouse_id")
)

// Request selects the aggregation period and an optional warehouse filter.
type Request struct {
	Year        int
	Month       int
	WarehouseID *string
}

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger

	Shipments shipmentdomain.Repository
	Products  productdomain.Repository
	Projects  projectdomain.Repository
	Clients   clientdomain.Repository
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	shipments shipmentdomain.Repository
	products  productdomain.Repository
	projects  projectdomain.Repository
	clients   clientdomain.Repository
}

func New(p Params) *Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("salesreport"),
		shipments: p.Shipments,
		products:  p.Products,
		projects:  p.Projects,
		clients:   p.Clients,
	}
}

// Aggregate builds the monthly sales report. Shipment rows resolve to a
// project through product_master; rows whose code does not resolve land in
// the unlinked bucket, which always sorts last.
func (s *Service) Aggregate(ctx context.Context, req Request) (*Report, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, ErrInvalidPeriod
	}
	var warehouseID *int64
	if req.WarehouseID != nil && strings.TrimSpace(*req.WarehouseID) != "" {
		parsed, err := snowflake.ParseString(strings.TrimSpace(*req.WarehouseID))
		if err != nil {
			return nil, ErrInvalidWarehouse
		}
		id := parsed.Int64()
		warehouseID = &id
	}

	start, end := shipmentdomain.MonthRange(req.Year, req.Month)
	records, err := s.shipments.FindByDateRange(ctx, s.db, start, end, warehouseID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Year:         req.Year,
		Month:        req.Month,
		Summaries:    []ProjectSummary{},
		ClientGroups: []ClientGroup{},
		Shipments:    []ShipmentRow{},
	}
	if len(records) == 0 {
		return report, nil
	}

	codes := distinctCodes(records)

	var (
		wg       sync.WaitGroup
		products []productdomain.Product
		projects []projectdomain.Project
		clients  []clientdomain.Client

		productsErr, projectsErr, clientsErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		products, productsErr = s.products.FindByCodes(ctx, s.db, codes)
	}()
	go func() {
		defer wg.Done()
		projects, projectsErr = s.projects.FindAll(ctx, s.db)
	}()
	go func() {
		defer wg.Done()
		clients, clientsErr = s.clients.FindAll(ctx, s.db)
	}()
	wg.Wait()
	for _, fetchErr := range []error{productsErr, projectsErr, clientsErr} {
		if fetchErr != nil {
			return nil, fetchErr
		}
	}

	// First occurrence wins when the same code exists on several EC sites.
	productByCode := make(map[string]*productdomain.Product)
	for i := range products {
		if _, ok := productByCode[products[i].ProductCode]; !ok {
			productByCode[products[i].ProductCode] = &products[i]
		}
	}
	projectByID := make(map[int64]*projectdomain.Project, len(projects))
	for i := range projects {
		projectByID[projects[i].ID] = &projects[i]
	}
	clientByID := make(map[int64]*clientdomain.Client, len(clients))
	for i := range clients {
		clientByID[clients[i].ID] = &clients[i]
	}

	summaryByKey := make(map[string]*ProjectSummary)
	orderNumbers := make(map[string]struct{})
	for i := range records {
		rec := &records[i]
		orderNumbers[rec.OrderNumber] = struct{}{}
		report.Shipments = append(report.Shipments, toShipmentRow(rec))

		var (
			projectID   *string
			clientID    *string
			projectName = UnlinkedLabel
			clientName  = UnlinkedLabel
		)
		if rec.ProductCode != nil {
			if product, ok := productByCode[*rec.ProductCode]; ok && product.ProjectID != nil {
				if project, ok := projectByID[*product.ProjectID]; ok {
					id := snowflake.ID(project.ID).String()
					projectID = &id
					projectName = project.ProjectNumber + " " + project.ProjectName
					cid := snowflake.ID(project.ClientID).String()
					clientID = &cid
					if client, ok := clientByID[project.ClientID]; ok {
						clientName = client.ClientNumber + " " + client.ClientName
					} else {
						clientName = UnknownClientLabel
					}
				}
			}
		}

		key := unlinkedKey
		if projectID != nil {
			key = *projectID
		}
		summary, ok := summaryByKey[key]
		if !ok {
			summary = &ProjectSummary{
				ProjectID:   projectID,
				ProjectName: projectName,
				ClientID:    clientID,
				ClientName:  clientName,
			}
			summaryByKey[key] = summary
		}
		summary.TotalAmount += rec.TotalAmount
		summary.ShippingFee += rec.ShippingFee
		summary.PaymentFee += rec.PaymentFee
		summary.CodFee += rec.CodFee
		summary.ShipmentCount++
	}

	report.Summaries = sortSummaries(summaryByKey)
	report.ClientGroups = groupByClient(report.Summaries)
	report.Totals = buildTotals(report.Summaries, len(records), len(orderNumbers))
	return report, nil
}

func distinctCodes(records []shipmentdomain.Shipment) []string {
	seen := make(map[string]struct{})
	var codes []string
	for i := range records {
		if records[i].ProductCode == nil {
			continue
		}
		code := *records[i].ProductCode
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

// sortSummaries orders linked projects by client then project name using
// Japanese collation; the unlinked bucket goes last.
func sortSummaries(byKey map[string]*ProjectSummary) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(byKey))
	for _, s := range byKey {
		summaries = append(summaries, *s)
	}
	collator := collate.New(language.Japanese)
	sort.Slice(summaries, func(i, j int) bool {
		a, b := &summaries[i], &summaries[j]
		if a.ProjectID == nil && b.ProjectID != nil {
			return false
		}
		if a.ProjectID != nil && b.ProjectID == nil {
			return true
		}
		if cmp := collator.CompareString(a.ClientName, b.ClientName); cmp != 0 {
			return cmp < 0
		}
		return collator.CompareString(a.ProjectName, b.ProjectName) < 0
	})
	return summaries
}

func groupByClient(summaries []ProjectSummary) []ClientGroup {
	var groups []ClientGroup
	index := make(map[string]int)
	for _, s := range summaries {
		key := unlinkedKey
		if s.ClientID != nil {
			key = *s.ClientID
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ClientGroup{
				ClientID:   s.ClientID,
				ClientName: s.ClientName,
			})
		}
		groups[i].Projects = append(groups[i].Projects, s)
	}
	for i := range groups {
		if len(groups[i].Projects) <= 1 {
			continue
		}
		subtotal := &Subtotal{}
		for _, p := range groups[i].Projects {
			subtotal.TotalAmount += p.TotalAmount
			subtotal.ShippingFee += p.ShippingFee
			subtotal.PaymentFee += p.PaymentFee
			subtotal.CodFee += p.CodFee
			subtotal.ShipmentCount += p.ShipmentCount
		}
		groups[i].Subtotal = subtotal
	}
	return groups
}

func buildTotals(summaries []ProjectSummary, shipmentCount, orderCount int) Totals {
	totals := Totals{ShipmentCount: shipmentCount, OrderCount: orderCount}
	for _, s := range summaries {
		totals.TotalAmount += s.TotalAmount
		totals.ShippingFee += s.ShippingFee
		totals.PaymentFee += s.PaymentFee
		totals.CodFee += s.CodFee
	}
	totals.TotalFees = totals.ShippingFee + totals.PaymentFee + totals.CodFee
	return totals
}

func toShipmentRow(rec *shipmentdomain.Shipment) ShipmentRow {
	return ShipmentRow{
		ID:               snowflake.ID(rec.ID).String(),
		WarehouseID:      snowflake.ID(rec.WarehouseID).String(),
		OrderNumber:      rec.OrderNumber,
		ProductCode:      rec.ProductCode,
		PurchaseQuantity: rec.PurchaseQuantity,
		TotalAmount:      rec.TotalAmount,
		ShippingFee:      rec.ShippingFee,
		PaymentFee:       rec.PaymentFee,
		CodFee:           rec.CodFee,
		ShipmentDate:     rec.ShipmentDate,
		CreatedAt:        rec.CreatedAt,
	}
}
