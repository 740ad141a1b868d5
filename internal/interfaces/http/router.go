// Package http wires fiber handlers to the application layer.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TanmayElinje/inventory-pro/internal/application/analytics"
	"github.com/TanmayElinje/inventory-pro/internal/application/auth"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
	"github.com/TanmayElinje/inventory-pro/internal/application/usecase"
	"github.com/TanmayElinje/inventory-pro/internal/domain/entity"
	"github.com/TanmayElinje/inventory-pro/internal/infrastructure/realtime"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	SupplierUC      *usecase.SupplierUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	AdjustUC        *ledger.ApplyAdjustmentUseCase
	HistoryUC       *ledger.HistoryUseCase
	ReplenishmentUC *ledger.ReplenishmentUseCase
	DashboardUC     *analytics.DashboardUseCase
	Hub             *realtime.Hub
	JWTSecret       string
}

// Router registers the API routes.
//
// Everything under /api except auth requires a Bearer token. Catalog writes
// require manager or admin; deletes require admin; reads and stock
// adjustments are open to any authenticated role.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	manager := RequireRole(entity.RoleAdmin, entity.RoleManager)
	admin := RequireRole(entity.RoleAdmin)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", manager, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", manager, supplierHandler.Update)
	suppliers.Delete("/:id", admin, supplierHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", manager, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", manager, categoryHandler.Update)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.AdjustUC, deps.HistoryUC)
	products.Post("/", manager, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manager, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)
	products.Get("/:id/qrcode", productHandler.QRCode)
	products.Post("/:id/adjust-stock", movementHandler.AdjustStock)
	products.Get("/:id/movements", movementHandler.ProductMovements)

	// Movements (cross-product history)
	protected.Get("/movements", movementHandler.ListMovements)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.ReplenishmentUC)
	protected.Get("/analytics/dashboard", analyticsHandler.Dashboard)
	protected.Get("/analytics/top-sellers", analyticsHandler.TopSellers)
	protected.Get("/inventory/replenishment", manager, analyticsHandler.Replenishment)

	// Realtime product stream (token via query param)
	app.Get("/ws/products", WSUpgrade(deps.JWTSecret), ProductStream(deps.Hub))
}
