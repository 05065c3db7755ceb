package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/construmart/construmart-api/internal/application/auth"
	"github.com/construmart/construmart-api/internal/application/onboarding"
	"github.com/construmart/construmart-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OnboardingUC *onboarding.UseCase
	AuthUC       *auth.AuthUseCase
	TagUC        *usecase.TagUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Onboarding de clientes (público)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.OnboardingUC)
	customers.Post("/", customerHandler.Create)
	customers.Post("/verify", customerHandler.Verify)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (lectura pública)
	catalogHandler := NewCatalogHandler(deps.TagUC, deps.CategoryUC, deps.ProductUC)

	tags := api.Group("/tags")
	tags.Get("/", catalogHandler.ListTags)
	tags.Get("/:id", catalogHandler.GetTag)

	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)
	// Creación de categorías requiere Bearer Token
	categories.Post("/", AuthMiddleware(deps.JWTSecret), catalogHandler.CreateCategory)

	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
}
