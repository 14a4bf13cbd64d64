package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/raktasangham/bloodbank-api/internal/api/handler"
	"github.com/raktasangham/bloodbank-api/internal/api/middleware"
	"github.com/raktasangham/bloodbank-api/internal/auth"
	"github.com/raktasangham/bloodbank-api/internal/core/domain"
	"github.com/raktasangham/bloodbank-api/internal/core/service"
	"github.com/raktasangham/bloodbank-api/internal/infrastructure/db/postgres"
	"github.com/raktasangham/bloodbank-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bloodbank"))

	// --- Dependencies ---
	issuer := auth.NewIssuer(jwtSecret, tokenTTL)

	authRepo := postgres.NewAuthRepository(pool)
	donorRepo := postgres.NewDonorRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)

	authService := service.NewAuthService(authRepo, issuer)
	donorService := service.NewDonorService(donorRepo)
	branchService := service.NewBranchService(branchRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	campaignService := service.NewCampaignService(campaignRepo)

	authHandler := handler.NewAuthHandler(authService)
	donorHandler := handler.NewDonorHandler(donorService)
	branchHandler := handler.NewBranchHandler(branchService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	campaignHandler := handler.NewCampaignHandler(campaignService)

	requireAuth := middleware.Auth(issuer)
	requireStaff := middleware.RequireRole(domain.RoleStaff, domain.RoleAdmin)

	// --- Auth routes (public) ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Profile ---
	e.GET("/api/profile/:id", authHandler.Profile, requireAuth)

	// --- Donors ---
	donors := e.Group("/api/donors", requireAuth)
	donors.GET("", donorHandler.List)
	donors.GET("/:id", donorHandler.Get)
	donors.POST("", donorHandler.Create)
	donors.PUT("/:id", donorHandler.Update)
	donors.DELETE("/:id", donorHandler.Delete)

	// --- Branches ---
	branches := e.Group("/api/branches", requireAuth)
	branches.GET("", branchHandler.List)
	branches.POST("", branchHandler.Create)
	branches.PUT("/:id", branchHandler.Update)
	branches.PATCH("/:id/status", branchHandler.UpdateStatus)
	branches.DELETE("/:id", branchHandler.Delete, requireStaff)

	// --- Reference data ---
	provinces := e.Group("/api/provinces", requireAuth)
	provinces.GET("", catalogHandler.ListProvinces)
	provinces.GET("/:id", catalogHandler.GetProvince)

	bloodtypes := e.Group("/api/bloodtypes", requireAuth)
	bloodtypes.GET("", catalogHandler.ListBloodTypes)
	bloodtypes.POST("", catalogHandler.CreateBloodType, requireStaff)

	// --- Campaigns ---
	campaigns := e.Group("/api/campaigns", requireAuth)
	campaigns.GET("", campaignHandler.List)
	campaigns.POST("", campaignHandler.Create, requireStaff)

	// --- Observability & health (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is postgres up?

	return e
}
