package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/cors"

	appanalytics "github.com/jhoicas/housing-reviews-api/internal/application/analytics"
	"github.com/jhoicas/housing-reviews-api/internal/application/auth"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/housing-reviews-api/internal/interfaces/http"
	"github.com/jhoicas/housing-reviews-api/pkg/config"
	"github.com/jhoicas/housing-reviews-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	aliasRepo := postgres.NewAliasRepository(pool)
	suggestionRepo := postgres.NewSuggestionRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	scoreUC := usecase.NewScoreUseCase(userRepo, companyRepo, log)
	aliasUC := usecase.NewAliasUseCase(aliasRepo, companyRepo, log, usecase.SearchLimits{
		Default: cfg.Search.DefaultLimit,
		Max:     cfg.Search.MaxLimit,
	})
	suggestionUC := usecase.NewSuggestionUseCase(suggestionRepo, aliasRepo, companyRepo, log)
	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo, scoreUC, log)
	userUC := usecase.NewUserUseCase(userRepo, scoreUC)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, companyRepo, scoreUC)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(adaptor.HTTPMiddleware(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", httpRouter.AdminKeyHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Housing Reviews API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("sin especificación OpenAPI, Swagger UI desactivado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AliasUC:      aliasUC,
		SuggestionUC: suggestionUC,
		CompanyUC:    companyUC,
		UserUC:       userUC,
		ReviewUC:     reviewUC,
		DashboardUC:  dashboardUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		AdminAPIKey:  cfg.Admin.APIKey,
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
