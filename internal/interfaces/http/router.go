package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/housing-reviews-api/internal/application/analytics"
	"github.com/jhoicas/housing-reviews-api/internal/application/auth"
	"github.com/jhoicas/housing-reviews-api/internal/application/usecase"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AliasUC      *usecase.AliasUseCase
	SuggestionUC *usecase.SuggestionUseCase
	CompanyUC    *usecase.CompanyUseCase
	UserUC       *usecase.UserUseCase
	ReviewUC     *usecase.ReviewUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	AdminAPIKey  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Alias (público; la sugerencia acepta token opcional)
	aliasHandler := NewAliasHandler(deps.AliasUC)
	suggestionHandler := NewSuggestionHandler(deps.SuggestionUC)
	aliases := api.Group("/aliases")
	aliases.Get("/search", aliasHandler.Search)
	aliases.Get("/resolve", aliasHandler.Resolve)
	aliases.Post("/suggestions", OptionalAuth(deps.JWTSecret), suggestionHandler.Submit)

	// Companies (lectura pública)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.ReviewUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/tasks", companyHandler.Tasks)
	companies.Get("/:id/reviews", companyHandler.Reviews)
	companies.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireCompanyAccess("id"), companyHandler.Update)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret))
	users.Get("/me", userHandler.GetMe)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/me/score", userHandler.Score)
	users.Get("/me/tasks", userHandler.Tasks)

	// Reviews (protegido)
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews := api.Group("/reviews", AuthMiddleware(deps.JWTSecret))
	reviews.Post("/", RequireRole(entity.RoleStudent), reviewHandler.Create)
	reviews.Post("/:id/helpful", reviewHandler.Helpful)
	reviews.Post("/:id/responses", RequireRole(entity.RoleCompany), reviewHandler.Respond)

	// Administración (rol admin o X-Admin-Key)
	admin := api.Group("/admin", RequireAdmin(deps.JWTSecret, deps.AdminAPIKey))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	adminAliases := admin.Group("/aliases")
	adminAliases.Get("/dashboard", dashboardHandler.GetSummary)
	adminAliases.Get("/", aliasHandler.List)
	adminAliases.Post("/", aliasHandler.Create)
	adminAliases.Get("/:id", aliasHandler.GetByID)
	adminAliases.Put("/:id", aliasHandler.Update)
	adminAliases.Delete("/:id", aliasHandler.Delete)
	adminAliases.Put("/:id/link", aliasHandler.Link)

	adminSuggestions := admin.Group("/suggestions")
	adminSuggestions.Get("/", suggestionHandler.List)
	adminSuggestions.Put("/:id/review", suggestionHandler.Review)

	adminCompanies := admin.Group("/companies")
	adminCompanies.Post("/", companyHandler.Create)
	adminCompanies.Put("/:id/verification", companyHandler.SetVerification)

	admin.Put("/responses/:id", reviewHandler.Moderate)
}
