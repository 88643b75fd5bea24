package salesreport

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	clientdomain "github.com/saiteki-ops/saiteki/internal/client/domain"
	clientrepo "github.com/saiteki-ops/saiteki/internal/client/repository"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	productrepo "github.com/saiteki-ops/saiteki/internal/product/repository"
	projectdomain "github.com/saiteki-ops/saiteki/internal/project/domain"
	projectrepo "github.com/saiteki-ops/saiteki/internal/project/repository"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	shipmentrepo "github.com/saiteki-ops/saiteki/internal/shipment/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc  *Service
	db   *gorm.DB
	node *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&clientdomain.Client{},
		&projectdomain.Project{},
		&productdomain.Product{},
		&shipmentdomain.Shipment{},
	))

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	svc := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Shipments: shipmentrepo.Provide(),
		Products:  productrepo.Provide(),
		Projects:  projectrepo.Provide(),
		Clients:   clientrepo.Provide(),
	})
	return &fixture{svc: svc, db: db, node: node}
}

func (f *fixture) seedClient(t *testing.T, number, name string) *clientdomain.Client {
	t.Helper()
	now := time.Now().UTC()
	c := &clientdomain.Client{
		ID: f.node.Generate().Int64(), ClientNumber: number, ClientName: name,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.db.Create(c).Error)
	return c
}

func (f *fixture) seedProject(t *testing.T, number, name string, clientID int64) *projectdomain.Project {
	t.Helper()
	now := time.Now().UTC()
	p := &projectdomain.Project{
		ID: f.node.Generate().Int64(), ProjectNumber: number, ProjectName: name,
		ClientID: clientID, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) seedProduct(t *testing.T, code string, projectID *int64) *productdomain.Product {
	t.Helper()
	now := time.Now().UTC()
	p := &productdomain.Product{
		ID: f.node.Generate().Int64(), ECSiteID: f.node.Generate().Int64(),
		ProductCode: code, ProductName: code, ProjectID: projectID,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) seedShipment(t *testing.T, warehouseID int64, order string, code *string, date string, amount, shipFee int64) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.db.Create(&shipmentdomain.Shipment{
		ID: f.node.Generate().Int64(), WarehouseID: warehouseID,
		OrderNumber: order, ProductCode: code, PurchaseQuantity: 1,
		TotalAmount: amount, ShippingFee: shipFee, ShipmentDate: date,
		CreatedAt: now, UpdatedAt: now,
	}).Error)
}

func strPtr(s string) *string { return &s }

func TestAggregateEmptyPeriod(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Empty(t, report.Summaries)
	assert.Empty(t, report.ClientGroups)
	assert.Empty(t, report.Shipments)
	assert.Equal(t, Totals{}, report.Totals)
}

func TestAggregateInvalidPeriod(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = f.svc.Aggregate(context.Background(), Request{Year: 0, Month: 1})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestAggregateGroupsByProjectAndClient(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	client := f.seedClient(t, "C-001", "あおぞら商事")
	projA := f.seedProject(t, "P-001", "春物販売", client.ID)
	projB := f.seedProject(t, "P-002", "夏物販売", client.ID)
	f.seedProduct(t, "SKU-A", &projA.ID)
	f.seedProduct(t, "SKU-B", &projB.ID)

	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-A"), "2025-03-05", 1000, 300)
	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-A"), "2025-03-06", 2000, 0)
	f.seedShipment(t, wh, "ORD-2", strPtr("SKU-B"), "2025-03-07", 5000, 500)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)

	require.Len(t, report.Summaries, 2)
	assert.Equal(t, "P-001 春物販売", report.Summaries[0].ProjectName)
	assert.Equal(t, int64(3000), report.Summaries[0].TotalAmount)
	assert.Equal(t, int64(300), report.Summaries[0].ShippingFee)
	assert.Equal(t, 2, report.Summaries[0].ShipmentCount)
	assert.Equal(t, "C-001 あおぞら商事", report.Summaries[0].ClientName)

	// Two projects under one client produce a subtotal.
	require.Len(t, report.ClientGroups, 1)
	require.NotNil(t, report.ClientGroups[0].Subtotal)
	assert.Equal(t, int64(8000), report.ClientGroups[0].Subtotal.TotalAmount)
	assert.Equal(t, 3, report.ClientGroups[0].Subtotal.ShipmentCount)

	assert.Equal(t, int64(8000), report.Totals.TotalAmount)
	assert.Equal(t, int64(800), report.Totals.TotalFees)
	assert.Equal(t, 3, report.Totals.ShipmentCount)
	assert.Equal(t, 2, report.Totals.OrderCount)
	assert.Len(t, report.Shipments, 3)
}

func TestAggregateSingleProjectGroupHasNoSubtotal(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	client := f.seedClient(t, "C-001", "テスト商会")
	proj := f.seedProject(t, "P-001", "定期販売", client.ID)
	f.seedProduct(t, "SKU-A", &proj.ID)
	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-A"), "2025-03-05", 1000, 0)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, report.ClientGroups, 1)
	assert.Nil(t, report.ClientGroups[0].Subtotal)
}

func TestAggregateUnlinkedBucketSortsLast(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	client := f.seedClient(t, "C-001", "わかば通商")
	proj := f.seedProject(t, "P-001", "通販", client.ID)
	f.seedProduct(t, "SKU-A", &proj.ID)
	// Product with no project link.
	f.seedProduct(t, "SKU-X", nil)

	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-X"), "2025-03-01", 700, 0)
	f.seedShipment(t, wh, "ORD-2", nil, "2025-03-02", 800, 0)
	f.seedShipment(t, wh, "ORD-3", strPtr("SKU-UNKNOWN"), "2025-03-03", 900, 0)
	f.seedShipment(t, wh, "ORD-4", strPtr("SKU-A"), "2025-03-04", 1000, 0)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)

	require.Len(t, report.Summaries, 2)
	assert.NotNil(t, report.Summaries[0].ProjectID)
	last := report.Summaries[1]
	assert.Nil(t, last.ProjectID)
	assert.Equal(t, UnlinkedLabel, last.ProjectName)
	assert.Equal(t, UnlinkedLabel, last.ClientName)
	assert.Equal(t, int64(2400), last.TotalAmount)
	assert.Equal(t, 3, last.ShipmentCount)
}

func TestAggregateMissingClientRow(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	// Project referencing a client id that has no row.
	proj := f.seedProject(t, "P-009", "孤児案件", f.node.Generate().Int64())
	f.seedProduct(t, "SKU-A", &proj.ID)
	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-A"), "2025-03-05", 1000, 0)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)
	require.Len(t, report.Summaries, 1)
	assert.Equal(t, UnknownClientLabel, report.Summaries[0].ClientName)
	assert.NotNil(t, report.Summaries[0].ProjectID)
}

func TestAggregateDecemberRollsOver(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	f.seedShipment(t, wh, "ORD-1", nil, "2025-12-31", 1000, 0)
	f.seedShipment(t, wh, "ORD-2", nil, "2026-01-01", 2000, 0)

	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 12})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Totals.ShipmentCount)
	assert.Equal(t, int64(1000), report.Totals.TotalAmount)
}

func TestAggregateWarehouseFilter(t *testing.T) {
	f := newFixture(t)
	whA := f.node.Generate().Int64()
	whB := f.node.Generate().Int64()

	f.seedShipment(t, whA, "ORD-1", nil, "2025-03-05", 1000, 0)
	f.seedShipment(t, whB, "ORD-2", nil, "2025-03-05", 2000, 0)

	id := snowflake.ID(whA).String()
	report, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3, WarehouseID: &id})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Totals.ShipmentCount)
	assert.Equal(t, int64(1000), report.Totals.TotalAmount)
}

func TestAggregateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	wh := f.node.Generate().Int64()

	client := f.seedClient(t, "C-001", "リピート商店")
	proj := f.seedProject(t, "P-001", "常設", client.ID)
	f.seedProduct(t, "SKU-A", &proj.ID)
	f.seedShipment(t, wh, "ORD-1", strPtr("SKU-A"), "2025-03-05", 1000, 100)

	first, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)
	second, err := f.svc.Aggregate(context.Background(), Request{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
