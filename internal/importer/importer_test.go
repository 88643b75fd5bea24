package importer

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	cartdomain "github.com/saiteki-ops/saiteki/internal/cart/domain"
	ecsitedomain "github.com/saiteki-ops/saiteki/internal/ecsite/domain"
	ecsiterepo "github.com/saiteki-ops/saiteki/internal/ecsite/repository"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	productrepo "github.com/saiteki-ops/saiteki/internal/product/repository"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	productcsvrepo "github.com/saiteki-ops/saiteki/internal/productcsv/repository"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	shipmentrepo "github.com/saiteki-ops/saiteki/internal/shipment/repository"
	warehousedomain "github.com/saiteki-ops/saiteki/internal/warehouse/domain"
	warehouserepo "github.com/saiteki-ops/saiteki/internal/warehouse/repository"
	wmsdomain "github.com/saiteki-ops/saiteki/internal/wms/domain"
	wmscsvdomain "github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	wmscsvrepo "github.com/saiteki-ops/saiteki/internal/wmscsv/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cartdomain.Cart{},
		&ecsitedomain.ECSite{},
		&wmsdomain.WMS{},
		&warehousedomain.Warehouse{},
		&productcsvdomain.Mapping{},
		&wmscsvdomain.Mapping{},
		&productdomain.Product{},
		&shipmentdomain.Shipment{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:              db,
		Log:             zap.NewNop(),
		GenID:           node,
		ECSites:         ecsiterepo.Provide(),
		Warehouses:      warehouserepo.Provide(),
		ProductMappings: productcsvrepo.Provide(),
		WMSMappings:     wmscsvrepo.Provide(),
		Products:        productrepo.Provide(),
		Shipments:       shipmentrepo.Provide(),
	})
	return svc, db, node
}

func seedECSite(t *testing.T, db *gorm.DB, node *snowflake.Node) *ecsitedomain.ECSite {
	t.Helper()
	now := time.Now().UTC()
	cart := &cartdomain.Cart{ID: node.Generate().Int64(), CartName: "テストカート", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(cart).Error)
	site := &ecsitedomain.ECSite{ID: node.Generate().Int64(), ECSiteName: "テストモール", CartID: cart.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(site).Error)
	return site
}

func seedProductMapping(t *testing.T, db *gorm.DB, node *snowflake.Node, cartID int64) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, db.Create(&productcsvdomain.Mapping{
		ID:                node.Generate().Int64(),
		CartID:            cartID,
		ProductCodeColumn: "A",
		ProductNameColumn: strPtr("B"),
		UnitPriceColumn:   strPtr("C"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}).Error)
}

func seedWarehouse(t *testing.T, db *gorm.DB, node *snowflake.Node) *warehousedomain.Warehouse {
	t.Helper()
	now := time.Now().UTC()
	w := &wmsdomain.WMS{ID: node.Generate().Int64(), WMSName: "テストWMS", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(w).Error)
	warehouse := &warehousedomain.Warehouse{ID: node.Generate().Int64(), WarehouseName: "第一倉庫", WMSID: w.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(warehouse).Error)
	return warehouse
}

func seedWMSMapping(t *testing.T, db *gorm.DB, node *snowflake.Node, wmsID int64, withFeeTarget bool) {
	t.Helper()
	now := time.Now().UTC()
	m := &wmscsvdomain.Mapping{
		ID:                     node.Generate().Int64(),
		WMSID:                  wmsID,
		OrderNumberColumn:      "A",
		ProductCodeColumn:      "B",
		ShipmentQuantityColumn: "C",
		UnitPriceColumn:        "D",
		ShipmentDateColumn:     "E",
		ShippingFeeColumn:      strPtr("F"),
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if withFeeTarget {
		m.ShippingFeeTarget = strPtr("送料")
	}
	require.NoError(t, db.Create(m).Error)
}

func siteIDString(site *ecsitedomain.ECSite) string {
	return snowflake.ID(site.ID).String()
}

func TestRunProductInsertsAndUpdates(t *testing.T) {
	svc, db, node := newTestService(t)
	site := seedECSite(t, db, node)
	seedProductMapping(t, db, node, site.CartID)

	csv := "code,name,price\nSKU-1,Tシャツ,\"1,500\"\nSKU-2,パーカー,3000\n"
	summary, err := svc.RunProduct(context.Background(), siteIDString(site), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Success)
	assert.Equal(t, 0, summary.Error)
	assert.Equal(t, "取込完了: 2件成功", summary.Message)

	var products []productdomain.Product
	require.NoError(t, db.Order("product_code ASC").Find(&products).Error)
	require.Len(t, products, 2)
	assert.Equal(t, "SKU-1", products[0].ProductCode)
	assert.Equal(t, int64(1500), products[0].UnitPrice)
	assert.Equal(t, "Tシャツ", products[0].ProductName)

	// Re-import with a new price updates in place.
	csv2 := "code,name,price\nSKU-1,Tシャツ,1800\n"
	summary, err = svc.RunProduct(context.Background(), siteIDString(site), []byte(csv2))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)

	require.NoError(t, db.Order("product_code ASC").Find(&products).Error)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1800), products[0].UnitPrice)
}

func TestRunProductEmptyCellKeepsStoredValue(t *testing.T) {
	svc, db, node := newTestService(t)
	site := seedECSite(t, db, node)
	seedProductMapping(t, db, node, site.CartID)

	_, err := svc.RunProduct(context.Background(), siteIDString(site), []byte("h\nSKU-1,Tシャツ,1500\n"))
	require.NoError(t, err)

	// Price cell empty on re-import: the stored price must survive.
	_, err = svc.RunProduct(context.Background(), siteIDString(site), []byte("h\nSKU-1,Tシャツ改,\n"))
	require.NoError(t, err)

	var p productdomain.Product
	require.NoError(t, db.First(&p, "product_code = ?", "SKU-1").Error)
	assert.Equal(t, "Tシャツ改", p.ProductName)
	assert.Equal(t, int64(1500), p.UnitPrice)
}

func TestRunProductSkipsBlankCode(t *testing.T) {
	svc, db, node := newTestService(t)
	site := seedECSite(t, db, node)
	seedProductMapping(t, db, node, site.CartID)

	csv := "h\n,名前のみ,100\nSKU-9,帽子,500\n"
	summary, err := svc.RunProduct(context.Background(), siteIDString(site), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)

	var count int64
	require.NoError(t, db.Model(&productdomain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRunProductMissingMapping(t *testing.T) {
	svc, db, node := newTestService(t)
	site := seedECSite(t, db, node)

	_, err := svc.RunProduct(context.Background(), siteIDString(site), []byte("h\nSKU-1\n"))
	assert.ErrorIs(t, err, ErrMappingNotConfigured)
}

func TestRunProductUnknownSite(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.RunProduct(context.Background(), node.Generate().String(), []byte("h\n"))
	assert.ErrorIs(t, err, ErrECSiteNotFound)
}

func TestRunShipmentAppendsRecords(t *testing.T) {
	svc, db, node := newTestService(t)
	warehouse := seedWarehouse(t, db, node)
	seedWMSMapping(t, db, node, warehouse.WMSID, true)

	csv := "h\n" +
		"ORD-1,SKU-1,2,1000,2025/3/5,800\n" +
		"ORD-1,SKU-2,1,500,2025/3/5,800\n" +
		"ORD-2,SKU-1,1,1000,2025/3/6,800\n"
	summary, err := svc.RunShipment(context.Background(), snowflake.ID(warehouse.ID).String(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Success)
	assert.Equal(t, "取込完了: 3件成功", summary.Message)

	var records []shipmentdomain.Shipment
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 3)

	assert.Equal(t, "ORD-1", records[0].OrderNumber)
	assert.Equal(t, int64(2000), records[0].TotalAmount)
	assert.Equal(t, "2025-03-05", records[0].ShipmentDate)

	// Fee target set: only the first row of each order carries the fee.
	assert.Equal(t, int64(800), records[0].ShippingFee)
	assert.Equal(t, int64(0), records[1].ShippingFee)
	assert.Equal(t, int64(800), records[2].ShippingFee)

	// Append-only: a second run duplicates the rows.
	_, err = svc.RunShipment(context.Background(), snowflake.ID(warehouse.ID).String(), []byte(csv))
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&shipmentdomain.Shipment{}).Count(&count).Error)
	assert.Equal(t, int64(6), count)
}

func TestRunShipmentFeePerRowWithoutTarget(t *testing.T) {
	svc, db, node := newTestService(t)
	warehouse := seedWarehouse(t, db, node)
	seedWMSMapping(t, db, node, warehouse.WMSID, false)

	csv := "h\nORD-1,SKU-1,1,100,2025-03-05,800\nORD-1,SKU-2,1,100,2025-03-05,500\n"
	_, err := svc.RunShipment(context.Background(), snowflake.ID(warehouse.ID).String(), []byte(csv))
	require.NoError(t, err)

	var records []shipmentdomain.Shipment
	require.NoError(t, db.Order("id ASC").Find(&records).Error)
	require.Len(t, records, 2)
	assert.Equal(t, int64(800), records[0].ShippingFee)
	assert.Equal(t, int64(500), records[1].ShippingFee)
}

func TestRunShipmentSkipsBlankOrderNumber(t *testing.T) {
	svc, db, node := newTestService(t)
	warehouse := seedWarehouse(t, db, node)
	seedWMSMapping(t, db, node, warehouse.WMSID, false)

	csv := "h\n,SKU-1,1,100,2025-03-05,0\nORD-1,SKU-1,1,100,2025-03-05,0\n"
	summary, err := svc.RunShipment(context.Background(), snowflake.ID(warehouse.ID).String(), []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Success)
}

func TestRunShipmentMissingMapping(t *testing.T) {
	svc, db, node := newTestService(t)
	warehouse := seedWarehouse(t, db, node)

	_, err := svc.RunShipment(context.Background(), snowflake.ID(warehouse.ID).String(), []byte("h\n"))
	assert.ErrorIs(t, err, ErrMappingNotConfigured)
}

func TestPreviewDocument(t *testing.T) {
	svc, _, _ := newTestService(t)

	preview, err := svc.PreviewDocument([]byte("a,b,c\n1,2,3\n4,5,6\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, preview.Columns)
	require.Len(t, preview.Rows, 2)
	assert.Equal(t, []string{"a", "b", "c"}, preview.Rows[0])
}
