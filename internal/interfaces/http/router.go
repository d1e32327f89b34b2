package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/autotienda-api/internal/application/analytics"
	"github.com/jhoicas/autotienda-api/internal/application/auth"
	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	FAQUC       *usecase.FAQUseCase
	SupportUC   *usecase.SupportUseCase
	CreateOrder *orders.CreateOrderUseCase
	OrderUC     *orders.OrderUseCase
	ReceiptUC   *orders.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	Settings    *usecase.SettingsService
	JWTSecret   string
	Cookie      CookieConfig

	// MetricsHandler exposición Prometheus; nil deja /metrics sin montar.
	MetricsHandler http.Handler

	// Informativos para /health.
	AppName       string
	StorageDriver string
}

// Router registra las rutas de la API. Los middlewares se montan por ruta y no por grupo:
// un Group con handlers en Fiber aplica a todo el prefijo, incluidas las rutas públicas.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	optionalAuth := OptionalAuth(deps.JWTSecret, deps.AuthUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	maintenance := RejectDuringMaintenance(deps.Settings)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "storage": deps.StorageDriver})
	})

	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup.Post("/register", optionalAuth, maintenance, authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authRequired, authHandler.Me)

	// Users (admin)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", authRequired, adminOnly, userHandler.List)
	users.Post("/", authRequired, adminOnly, userHandler.Create)
	users.Get("/:id", authRequired, adminOnly, userHandler.GetByID)
	users.Put("/:id", authRequired, adminOnly, userHandler.Update)
	users.Delete("/:id", authRequired, adminOnly, userHandler.Delete)

	// Products (lectura pública, escritura admin)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Put("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	// Orders (sesión; cada cliente ve solo lo suyo)
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC, deps.ReceiptUC)
	ordersGroup.Get("/", authRequired, orderHandler.List)
	ordersGroup.Post("/", authRequired, maintenance, orderHandler.Create)
	ordersGroup.Get("/:id", authRequired, orderHandler.GetByID)
	ordersGroup.Get("/:id/receipt", authRequired, orderHandler.Receipt)
	ordersGroup.Put("/:id", authRequired, adminOnly, orderHandler.Update)
	ordersGroup.Delete("/:id", authRequired, adminOnly, orderHandler.Delete)

	// Support (crear es público)
	support := api.Group("/support")
	supportHandler := NewSupportHandler(deps.SupportUC)
	support.Post("/", optionalAuth, supportHandler.Create)
	support.Get("/", authRequired, supportHandler.List)
	support.Get("/:id", authRequired, supportHandler.GetByID)
	support.Put("/:id", authRequired, adminOnly, supportHandler.Update)
	support.Delete("/:id", authRequired, adminOnly, supportHandler.Delete)

	// FAQ (lectura pública, escritura admin)
	faq := api.Group("/faq")
	faqHandler := NewFAQHandler(deps.FAQUC)
	faq.Get("/", faqHandler.List)
	faq.Get("/:id", faqHandler.GetByID)
	faq.Post("/", authRequired, adminOnly, faqHandler.Create)
	faq.Put("/:id", authRequired, adminOnly, faqHandler.Update)
	faq.Delete("/:id", authRequired, adminOnly, faqHandler.Delete)

	// Admin
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.DashboardUC, deps.Settings)
	admin.Get("/stats", authRequired, adminOnly, adminHandler.Stats)
	admin.Get("/settings", authRequired, adminOnly, adminHandler.GetSettings)
	admin.Put("/settings", authRequired, adminOnly, adminHandler.UpdateSettings)
}
