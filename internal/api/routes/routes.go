package routes

import (
	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/api/handlers"
	"sales-crm-backend/internal/api/middleware"
	"sales-crm-backend/internal/auth"
	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/repository"
	"sales-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	prospectRepo := repository.NewProspectRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	callLogRepo := repository.NewCallLogRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	transferLogRepo := repository.NewTransferLogRepository(db)

	// Initialize the scope resolver and services
	resolver := access.NewResolver(userRepo)
	authService := auth.NewService(cfg, userRepo, teamRepo, validator)
	userService := service.NewUserService(userRepo, teamRepo, resolver, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	prospectService := service.NewProspectService(prospectRepo, userRepo, resolver, validator)
	saleService := service.NewSaleService(saleRepo, prospectRepo, userRepo, resolver, validator)
	callLogService := service.NewCallLogService(callLogRepo, prospectRepo, userRepo, resolver, validator)
	payoutService := service.NewPayoutService(payoutRepo, userRepo, validator)
	transferService := service.NewTransferService(prospectRepo, saleRepo, userRepo, transferLogRepo, validator)
	reportService := service.NewReportService(userRepo, prospectRepo, saleRepo, callLogRepo, resolver)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	prospectHandler := handlers.NewProspectHandler(prospectService)
	saleHandler := handlers.NewSaleHandler(saleService)
	callLogHandler := handlers.NewCallLogHandler(callLogService)
	payoutHandler := handlers.NewPayoutHandler(payoutService)
	transferHandler := handlers.NewTransferHandler(transferService)
	reportHandler := handlers.NewReportHandler(reportService)

	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/me", userHandler.GetMe)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMembers)
			teams.DELETE("/:id/members", teamHandler.RemoveMembers)
		}

		// Prospect routes
		prospects := v1.Group("/prospects")
		{
			prospects.GET("", prospectHandler.ListProspects)
			prospects.POST("", prospectHandler.CreateProspect)
			prospects.GET("/:id", prospectHandler.GetProspect)
			prospects.PATCH("/:id", prospectHandler.UpdateProspect)
			prospects.DELETE("/:id", prospectHandler.DeleteProspect)
		}

		// Sale routes
		sales := v1.Group("/sales")
		{
			sales.GET("", saleHandler.ListSales)
			sales.POST("", saleHandler.CreateSale)
			sales.GET("/:id", saleHandler.GetSale)
			sales.DELETE("/:id", saleHandler.DeleteSale)
		}

		// Call log routes
		callLogs := v1.Group("/call-logs")
		{
			callLogs.GET("", callLogHandler.ListCallLogs)
			callLogs.POST("", callLogHandler.CreateCallLog)
			callLogs.GET("/:id", callLogHandler.GetCallLog)
			callLogs.PATCH("/:id", callLogHandler.UpdateCallLog)
		}

		// Payout routes
		payouts := v1.Group("/payouts")
		{
			payouts.GET("", payoutHandler.ListPayouts)
			payouts.POST("", payoutHandler.CreatePayout)
			payouts.GET("/:id", payoutHandler.GetPayout)
			payouts.PATCH("/:id", payoutHandler.UpdatePayout)
			payouts.DELETE("/:id", payoutHandler.DeletePayout)
		}

		// Transfer routes
		transfers := v1.Group("/transfers")
		{
			transfers.POST("/internal", transferHandler.InternalTransfer)
			transfers.GET("/internal", transferHandler.InternalHistory)
			transfers.POST("/finance", transferHandler.FinanceTransfer)
			transfers.GET("/finance", transferHandler.FinanceHistory)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/dashboard", reportHandler.Dashboard)
			reports.GET("/performance", reportHandler.Performance)
			reports.GET("/calls", reportHandler.CallVolume)
			reports.GET("/activity", reportHandler.ActivityLogs)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":     "error",
			"message":    "endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
