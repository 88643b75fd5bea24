package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saiteki-ops/saiteki/internal/billingcategory"
	billingcategorydomain "github.com/saiteki-ops/saiteki/internal/billingcategory/domain"
	"github.com/saiteki-ops/saiteki/internal/cart"
	cartdomain "github.com/saiteki-ops/saiteki/internal/cart/domain"
	"github.com/saiteki-ops/saiteki/internal/client"
	clientdomain "github.com/saiteki-ops/saiteki/internal/client/domain"
	"github.com/saiteki-ops/saiteki/internal/config"
	"github.com/saiteki-ops/saiteki/internal/ecsite"
	ecsitedomain "github.com/saiteki-ops/saiteki/internal/ecsite/domain"
	"github.com/saiteki-ops/saiteki/internal/importer"
	"github.com/saiteki-ops/saiteki/internal/metrics"
	"github.com/saiteki-ops/saiteki/internal/product"
	productdomain "github.com/saiteki-ops/saiteki/internal/product/domain"
	"github.com/saiteki-ops/saiteki/internal/productcsv"
	productcsvdomain "github.com/saiteki-ops/saiteki/internal/productcsv/domain"
	"github.com/saiteki-ops/saiteki/internal/project"
	projectdomain "github.com/saiteki-ops/saiteki/internal/project/domain"
	"github.com/saiteki-ops/saiteki/internal/salesreport"
	"github.com/saiteki-ops/saiteki/internal/shipment"
	shipmentdomain "github.com/saiteki-ops/saiteki/internal/shipment/domain"
	"github.com/saiteki-ops/saiteki/internal/warehouse"
	warehousedomain "github.com/saiteki-ops/saiteki/internal/warehouse/domain"
	"github.com/saiteki-ops/saiteki/internal/wms"
	wmsdomain "github.com/saiteki-ops/saiteki/internal/wms/domain"
	"github.com/saiteki-ops/saiteki/internal/wmscsv"
	wmscsvdomain "github.com/saiteki-ops/saiteki/internal/wmscsv/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	metrics.Module,
	fx.Provide(registerGin),
	cart.Module,
	ecsite.Module,
	wms.Module,
	warehouse.Module,
	billingcategory.Module,
	client.Module,
	project.Module,
	product.Module,
	shipment.Module,
	productcsv.Module,
	wmscsv.Module,
	importer.Module,
	salesreport.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine()
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine             *gin.Engine
	cfg                config.Config
	cartSvc            cartdomain.Service
	ecSiteSvc          ecsitedomain.Service
	wmsSvc             wmsdomain.Service
	warehouseSvc       warehousedomain.Service
	billingCategorySvc billingcategorydomain.Service
	clientSvc          clientdomain.Service
	projectSvc         projectdomain.Service
	productSvc         productdomain.Service
	shipmentSvc        shipmentdomain.Service
	productMappingSvc  productcsvdomain.Service
	wmsMappingSvc      wmscsvdomain.Service
	importSvc          *importer.Service
	reportSvc          *salesreport.Service
}

type ServerParams struct {
	fx.In

	Gin                *gin.Engine
	Cfg                config.Config
	CartSvc            cartdomain.Service
	ECSiteSvc          ecsitedomain.Service
	WMSSvc             wmsdomain.Service
	WarehouseSvc       warehousedomain.Service
	BillingCategorySvc billingcategorydomain.Service
	ClientSvc          clientdomain.Service
	ProjectSvc         projectdomain.Service
	ProductSvc         productdomain.Service
	ShipmentSvc        shipmentdomain.Service
	ProductMappingSvc  productcsvdomain.Service
	WMSMappingSvc      wmscsvdomain.Service
	ImportSvc          *importer.Service
	ReportSvc          *salesreport.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:             p.Gin,
		cfg:                p.Cfg,
		cartSvc:            p.CartSvc,
		ecSiteSvc:          p.ECSiteSvc,
		wmsSvc:             p.WMSSvc,
		warehouseSvc:       p.WarehouseSvc,
		billingCategorySvc: p.BillingCategorySvc,
		clientSvc:          p.ClientSvc,
		projectSvc:         p.ProjectSvc,
		productSvc:         p.ProductSvc,
		shipmentSvc:        p.ShipmentSvc,
		productMappingSvc:  p.ProductMappingSvc,
		wmsMappingSvc:      p.WMSMappingSvc,
		importSvc:          p.ImportSvc,
		reportSvc:          p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Carts --------
	api.GET("/carts", s.ListCarts)
	api.POST("/carts", s.CreateCart)
	api.GET("/carts/:id", s.GetCartByID)
	api.PUT("/carts/:id", s.UpdateCart)
	api.DELETE("/carts/:id", s.DeleteCart)

	// -------- EC sites --------
	api.GET("/ec-sites", s.ListECSites)
	api.POST("/ec-sites", s.CreateECSite)
	api.GET("/ec-sites/:id", s.GetECSiteByID)
	api.PUT("/ec-sites/:id", s.UpdateECSite)
	api.DELETE("/ec-sites/:id", s.DeleteECSite)

	// -------- WMS --------
	api.GET("/wms", s.ListWMS)
	api.POST("/wms", s.CreateWMS)
	api.GET("/wms/:id", s.GetWMSByID)
	api.PUT("/wms/:id", s.UpdateWMS)
	api.DELETE("/wms/:id", s.DeleteWMS)

	// -------- Warehouses --------
	api.GET("/warehouses", s.ListWarehouses)
	api.POST("/warehouses", s.CreateWarehouse)
	api.GET("/warehouses/:id", s.GetWarehouseByID)
	api.PUT("/warehouses/:id", s.UpdateWarehouse)
	api.DELETE("/warehouses/:id", s.DeleteWarehouse)

	// -------- Billing categories --------
	api.GET("/billing-categories", s.ListBillingCategories)
	api.POST("/billing-categories", s.CreateBillingCategory)
	api.GET("/billing-categories/:id", s.GetBillingCategoryByID)
	api.PUT("/billing-categories/:id", s.UpdateBillingCategory)
	api.DELETE("/billing-categories/:id", s.DeleteBillingCategory)

	// -------- Clients and contacts --------
	api.GET("/clients", s.ListClients)
	api.POST("/clients", s.CreateClient)
	api.GET("/clients/:id", s.GetClientByID)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)
	api.GET("/clients/:id/contacts", s.ListClientContacts)
	api.POST("/clients/:id/contacts", s.AddClientContact)
	api.PUT("/contacts/:id", s.UpdateClientContact)
	api.DELETE("/contacts/:id", s.DeleteClientContact)

	// -------- Projects --------
	api.GET("/projects", s.ListProjects)
	api.POST("/projects", s.CreateProject)
	api.GET("/projects/:id", s.GetProjectByID)
	api.PUT("/projects/:id", s.UpdateProject)
	api.DELETE("/projects/:id", s.DeleteProject)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	// -------- Shipments --------
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipmentByID)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	// -------- CSV mappings --------
	api.GET("/product-csv-mappings", s.ListProductCSVMappings)
	api.POST("/product-csv-mappings", s.CreateProductCSVMapping)
	api.GET("/product-csv-mappings/:id", s.GetProductCSVMappingByID)
	api.PUT("/product-csv-mappings/:id", s.UpdateProductCSVMapping)
	api.DELETE("/product-csv-mappings/:id", s.DeleteProductCSVMapping)
	api.GET("/wms-csv-mappings", s.ListWMSCSVMappings)
	api.POST("/wms-csv-mappings", s.CreateWMSCSVMapping)
	api.GET("/wms-csv-mappings/:id", s.GetWMSCSVMappingByID)
	api.PUT("/wms-csv-mappings/:id", s.UpdateWMSCSVMapping)
	api.DELETE("/wms-csv-mappings/:id", s.DeleteWMSCSVMapping)

	// -------- Imports --------
	// Preview only parses the upload, so both feeds share one handler.
	api.POST("/imports/products/preview", s.PreviewImport)
	api.POST("/imports/shipments/preview", s.PreviewImport)
	api.POST("/imports/products", s.ImportProducts)
	api.POST("/imports/shipments", s.ImportShipments)

	// -------- Sales report --------
	api.GET("/sales-report", s.GetSalesReport)
}
