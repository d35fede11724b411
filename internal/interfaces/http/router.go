package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-backoffice/internal/application/auth"
	"github.com/jhoicas/pos-backoffice/internal/application/order"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/application/usecase"
	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *order.OrderUseCase
	ReportUC   *report.ReportUseCase
	Images     *storage.ImageStore
	JWTSecret  string
	JWTExpH    int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login y logout públicos, check requiere token válido.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpH)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/check", AuthMiddleware(deps.JWTSecret), authHandler.Check)

	// Rutas protegidas (Bearer Token o cookie "token")
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido; eliminar solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Images)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Customers (protegido; eliminar solo admin)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/sales", reportHandler.Sales)
	reports.Post("/customers", reportHandler.Customers)
}
