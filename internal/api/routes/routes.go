package routes

import (
	"net/http"

	"asset-tracker-backend/internal/api/handlers"
	"asset-tracker-backend/internal/api/middleware"
	"asset-tracker-backend/internal/auth"
	"asset-tracker-backend/internal/config"
	"asset-tracker-backend/internal/repository"
	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	invitationRepo := repository.NewTeamInvitationRepository(db)

	// Initialize services
	qrEncoder := service.NewQREncoder()
	entitlementService := service.NewEntitlementService(assetRepo)
	accountService := service.NewAccountService(accountRepo, validator)
	assetService := service.NewAssetService(assetRepo, employeeRepo, entitlementService, validator)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	labelService := service.NewLabelService(qrEncoder, cfg.PublicAssetURL)

	// Initialize auth
	authService := auth.NewAuthService(accountRepo, cfg.JWTSecret, cfg.JWTExpiryHours, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, accountRepo)

	teamService := service.NewTeamService(accountRepo, invitationRepo, entitlementService, authService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	assetHandler := handlers.NewAssetHandler(assetService, accountService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, accountService)
	accountHandler := handlers.NewAccountHandler(accountService)
	teamHandler := handlers.NewTeamHandler(teamService)
	labelHandler := handlers.NewLabelHandler(assetService, accountService, labelService, entitlementService)
	publicHandler := handlers.NewPublicHandler(assetService, qrEncoder, cfg.PublicAssetURL)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes behind printed QR codes, rate limited per client IP
	public := router.Group("/public")
	public.Use(middleware.RateLimit(rate.Limit(cfg.PublicRateLimit), cfg.PublicRateBurst))
	{
		public.GET("/assets/:uuid", publicHandler.GetPublicAsset)
		public.GET("/assets/:uuid/qr.png", publicHandler.GetPublicAssetQR)
	}

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Invitation acceptance is unauthenticated: the invitee has no
	// account yet, only the token from the invite link.
	router.POST("/api/v1/team/invitations/accept", teamHandler.AcceptInvitation)

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Asset routes
		assets := v1.Group("/assets")
		{
			assets.GET("", assetHandler.ListAssets)
			assets.POST("", assetHandler.CreateAsset)
			assets.GET("/:id", assetHandler.GetAsset)
			assets.PUT("/:id", assetHandler.UpdateAsset)
			assets.DELETE("/:id", assetHandler.DeleteAsset)
			assets.POST("/:id/assign", assetHandler.AssignAsset)
			assets.POST("/:id/return", assetHandler.ReturnAsset)
			assets.POST("/:id/status", assetHandler.UpdateAssetStatus)
			assets.GET("/:id/history", assetHandler.GetAssetHistory)
		}

		// Label sheet routes
		labels := v1.Group("/labels")
		{
			labels.GET("/pdf", labelHandler.GetLabelSheet)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
		}

		// Profile routes
		v1.GET("/profile", accountHandler.GetProfile)
		v1.PUT("/profile", accountHandler.UpdateProfile)

		// Team routes
		team := v1.Group("/team")
		{
			team.GET("", teamHandler.GetRoster)
			team.POST("/invitations", teamHandler.InviteMember)
			team.DELETE("/invitations/:id", teamHandler.RevokeInvitation)
			team.DELETE("/members/:id", teamHandler.RemoveMember)
		}
	}

	// Unknown routes get a JSON 404 instead of gin's default text
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
