package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/autotienda-api/internal/application/analytics"
	"github.com/jhoicas/autotienda-api/internal/application/auth"
	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/autotienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/autotienda-api/internal/interfaces/http"
	"github.com/jhoicas/autotienda-api/pkg/config"
	"github.com/jhoicas/autotienda-api/pkg/logger"

	_ "github.com/jhoicas/autotienda-api/docs"
)

// @title                      Autotienda API
// @version                    1.0
// @description                API de la tienda de vehículos: catálogo, pedidos, soporte, FAQ y usuarios.
// @BasePath                   /
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
// @description                Bearer <token>
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer store.Close()

	latency := metrics.NewLatencyRecorder()
	settings := usecase.NewSettingsService(cfg.Store.MaintenanceMode)

	authUC := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(store.Users)
	productUC := usecase.NewProductUseCase(store.Products)
	faqUC := usecase.NewFAQUseCase(store.FAQs)
	supportUC := usecase.NewSupportUseCase(store.Support)

	createOrderUC := orders.NewCreateOrderUseCase(store.TxRunner, cfg.Store.ReserveStock)
	orderUC := orders.NewOrderUseCase(store.Orders)
	receiptUC := orders.NewReceiptUseCase(orderUC, store.Users, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))

	dashboardUC := analytics.NewDashboardUseCase(analytics.DashboardRepos{
		Users:    store.Users,
		Products: store.Products,
		Orders:   store.Orders,
		Support:  store.Support,
		FAQs:     store.FAQs,
	}, latency)

	serverOpts := httpRouter.ServerOptions{
		AppName: cfg.App.Name,
		Logger:  log,
		Latency: latency,
	}
	var metricsHandler http.Handler
	if cfg.App.MetricsEnabled {
		httpMetrics := metrics.NewHTTPMetrics("autotienda")
		serverOpts.Metrics = httpMetrics
		metricsHandler = httpMetrics.Handler()
	}
	app := httpRouter.NewApp(serverOpts)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Autotienda API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		FAQUC:       faqUC,
		SupportUC:   supportUC,
		CreateOrder: createOrderUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		Settings:    settings,
		JWTSecret:   cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Secure: cfg.JWT.CookieSecure,
			MaxAge: time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
		MetricsHandler: metricsHandler,
		AppName:        cfg.App.Name,
		StorageDriver:  store.Driver,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
