package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-catalog-api/internal/application/auth"
	"github.com/jhoicas/erp-catalog-api/internal/application/inventory"
	"github.com/jhoicas/erp-catalog-api/internal/application/usecase"
	"github.com/jhoicas/erp-catalog-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductUC     *usecase.ProductUseCase
	TransactionUC *inventory.TransactionUseCase
	Authenticator Authenticator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	api.Get("/health", health)

	v1 := api.Group("/v1")
	requireAuth := AuthMiddleware(deps.Authenticator)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: register y login públicos
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)
	authGroup.Post("/refresh", requireAuth, authHandler.Refresh)

	// Users
	users := v1.Group("/users", requireAuth)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/profile", userHandler.Profile)
	users.Get("/", adminOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories
	categories := v1.Group("/category", requireAuth)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Suppliers (rutas estáticas antes de /:id)
	suppliers := v1.Group("/supplier", requireAuth)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/link-product", supplierHandler.LinkProduct)
	suppliers.Delete("/unlink-product/:productId", supplierHandler.UnlinkProduct)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id/products", supplierHandler.Products)
	suppliers.Get("/:id/stats", supplierHandler.Stats)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products (rutas estáticas antes de /:id)
	products := v1.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, deps.TransactionUC)
	products.Get("/low-stock/report", productHandler.LowStockReport)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Get("/category/:categoryId", productHandler.ByCategory)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id/transactions", productHandler.Transactions)
	products.Post("/:id/transactions", productHandler.RecordTransaction)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}

// health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/health [get]
func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC(),
	})
}
