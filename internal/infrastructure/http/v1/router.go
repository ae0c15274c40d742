package v1

import (
	"github.com/gin-gonic/gin"

	"aromapos/internal/domain/catalogs/category"
	"aromapos/internal/domain/catalogs/customer"
	"aromapos/internal/domain/catalogs/privilegecard"
	"aromapos/internal/domain/catalogs/product"
	"aromapos/internal/domain/catalogs/store"
	"aromapos/internal/domain/catalogs/supplier"
	"aromapos/internal/domain/catalogs/tax"
	"aromapos/internal/domain/catalogs/unit"
	"aromapos/internal/domain/documents/purchase"
	"aromapos/internal/domain/documents/sale"
	"aromapos/internal/domain/posting"
	"aromapos/internal/domain/registers/stock"
	"aromapos/internal/domain/reports"
	"aromapos/internal/domain/staff"
	"aromapos/internal/infrastructure/http/v1/handlers"
	"aromapos/internal/infrastructure/http/v1/middleware"
	"aromapos/internal/infrastructure/storage/postgres"
	"aromapos/internal/infrastructure/storage/postgres/catalog_repo"
	"aromapos/internal/infrastructure/storage/postgres/document_repo"
	"aromapos/internal/infrastructure/storage/postgres/register_repo"
	"aromapos/internal/infrastructure/storage/postgres/report_repo"
	"aromapos/internal/infrastructure/storage/postgres/staff_repo"
	"aromapos/pkg/logger"
	"aromapos/pkg/numerator"
)

// RouterConfig holds the shared infrastructure the router builds on.
type RouterConfig struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Numerator *numerator.Service
	Audit     *postgres.AuditService
	Logger    *logger.Logger
}

// NewRouter creates and configures the Gin router. All repositories and
// services are wired here from the shared pool and transaction manager.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Order matters: recovery outermost, then tracing, logging and the
	// error translator that renders AppError responses.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Identity())

	base := handlers.NewBaseHandler(cfg.Logger)

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Catalog services
	unitSvc := unit.NewService(catalog_repo.NewUnitRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	taxRepo := catalog_repo.NewTaxRepo(cfg.TxManager)
	taxSvc := tax.NewService(taxRepo, cfg.TxManager, cfg.Numerator)
	categorySvc := category.NewService(catalog_repo.NewCategoryRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	storeSvc := store.NewService(catalog_repo.NewStoreRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	cardSvc := privilegecard.NewService(catalog_repo.NewPrivilegeCardRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	customerSvc := customer.NewService(catalog_repo.NewCustomerRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)
	productSvc := product.NewService(catalog_repo.NewProductRepo(cfg.TxManager), taxRepo, cfg.TxManager, cfg.Numerator)
	supplierSvc := supplier.NewService(catalog_repo.NewSupplierRepo(cfg.TxManager), cfg.TxManager, cfg.Numerator)

	// Registers and posting
	stockSvc := stock.NewService(register_repo.NewStockRepo(cfg.TxManager), cfg.TxManager)
	postingEngine := posting.NewEngine(stockSvc, cfg.TxManager, postgres.NewPostingAuditor(cfg.Audit))

	// Documents
	purchaseSvc := purchase.NewService(
		document_repo.NewPurchaseRepo(cfg.TxManager),
		supplierSvc,
		postingEngine,
		cfg.Numerator,
		cfg.TxManager,
	)
	saleSvc := sale.NewService(
		document_repo.NewSaleRepo(cfg.TxManager),
		customerSvc,
		cardSvc,
		postingEngine,
		cfg.Numerator,
		cfg.TxManager,
	)

	// Reports and staff
	reportsSvc := reports.NewService(report_repo.NewReportRepo(cfg.TxManager))
	staffSvc := staff.NewService(staff_repo.NewStaffRepo(cfg.TxManager), cfg.TxManager)

	api := router.Group("/api/v1")
	{
		catalogs := api.Group("/catalog")
		{
			RegisterCatalogRoutes(catalogs.Group("/units"), handlers.NewUnitHandler(base, unitSvc))
			RegisterCatalogRoutes(catalogs.Group("/taxes"), handlers.NewTaxHandler(base, taxSvc))
			RegisterCatalogRoutes(catalogs.Group("/categories"), handlers.NewCategoryHandler(base, categorySvc))
			RegisterCatalogRoutes(catalogs.Group("/stores"), handlers.NewStoreHandler(base, storeSvc))
			RegisterCatalogRoutes(catalogs.Group("/privilege-cards"), handlers.NewPrivilegeCardHandler(base, cardSvc))

			customerHandler := handlers.NewCustomerHandler(base, customerSvc)
			customersGroup := catalogs.Group("/customers")
			RegisterCatalogRoutes(customersGroup, customerHandler)
			customersGroup.GET("/phone/:phone", customerHandler.FindByPhone)

			productHandler := handlers.NewProductHandler(base, productSvc)
			productsGroup := catalogs.Group("/products")
			RegisterCatalogRoutes(productsGroup, productHandler)
			productsGroup.GET("/barcode/:barcode", productHandler.FindByBarcode)
			productsGroup.GET("/:id/price", productHandler.Price)

			supplierHandler := handlers.NewSupplierHandler(base, supplierSvc)
			suppliersGroup := catalogs.Group("/suppliers")
			RegisterCatalogRoutes(suppliersGroup, supplierHandler)
			suppliersGroup.GET("/:id/transactions", supplierHandler.ListTransactions)
			suppliersGroup.POST("/:id/payments", supplierHandler.RecordPayment)
			suppliersGroup.GET("/:id/balance", supplierHandler.Balance)
		}

		documents := api.Group("/documents")
		{
			RegisterDocumentRoutes(documents.Group("/purchases"), handlers.NewPurchaseHandler(base, purchaseSvc, productSvc))
			RegisterDocumentRoutes(documents.Group("/sales"), handlers.NewSaleHandler(base, saleSvc, productSvc))
		}

		stockHandler := handlers.NewStockHandler(base, stockSvc)
		stockGroup := api.Group("/registers/stock")
		{
			stockGroup.GET("/balances", stockHandler.GetBalances)
			stockGroup.GET("/balances/:productId", stockHandler.GetBalance)
			stockGroup.GET("/low", stockHandler.GetLowStock)
			stockGroup.GET("/movements/:productId", stockHandler.GetMovements)
			stockGroup.GET("/turnover", stockHandler.GetTurnover)
			stockGroup.POST("/rebuild", stockHandler.RebuildBalances)
		}

		reportsHandler := handlers.NewReportsHandler(base, reportsSvc)
		reportsGroup := api.Group("/reports")
		{
			reportsGroup.GET("/sales", reportsHandler.Sales)
			reportsGroup.GET("/purchases", reportsHandler.Purchases)
			reportsGroup.GET("/stock-balance", reportsHandler.StockBalance)
			reportsGroup.GET("/documents", reportsHandler.DocumentJournal)
		}

		staffHandler := handlers.NewStaffHandler(base, staffSvc)
		staffGroup := api.Group("/staff")
		{
			staffGroup.GET("", staffHandler.List)
			staffGroup.POST("", staffHandler.Create)
			staffGroup.GET("/:id", staffHandler.Get)
			staffGroup.PUT("/:id", staffHandler.Update)
			staffGroup.DELETE("/:id", staffHandler.Delete)
			staffGroup.POST("/:id/password", staffHandler.ChangePassword)
			staffGroup.POST("/verify", staffHandler.Verify)
		}

		pricingHandler := handlers.NewPricingHandler(base)
		api.POST("/pricing/preview", pricingHandler.Preview)
	}

	return router
}
