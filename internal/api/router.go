package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/afyalink/health-system-api/internal/api/handler"
	"github.com/afyalink/health-system-api/internal/api/middleware"
	"github.com/afyalink/health-system-api/internal/core/service"
	"github.com/afyalink/health-system-api/internal/infrastructure/config"
	"github.com/afyalink/health-system-api/internal/infrastructure/db/gormdb"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	authRepo := gormdb.NewAuthRepository(db)
	clientRepo := gormdb.NewClientRepository(db)
	programRepo := gormdb.NewProgramRepository(db)
	enrollmentRepo := gormdb.NewEnrollmentRepository(db)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	clientService := service.NewClientService(clientRepo, log)
	programService := service.NewProgramService(programRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, clientRepo, programRepo, cfg.StrictStatusTransitions, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	programHandler := handler.NewProgramHandler(programService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)

	// --- Public routes ---
	api := e.Group("/api")
	api.POST("/users", authHandler.Register)
	api.POST("/users/login", authHandler.Login)

	// --- Authenticated routes ---
	protected := api.Group("", middleware.Auth(authService))
	protected.GET("/users/me", authHandler.Me)

	protected.POST("/clients", clientHandler.Create)
	protected.GET("/clients/search", clientHandler.Search)
	protected.GET("/clients/:id", clientHandler.Get)
	protected.PUT("/clients/:id", clientHandler.Update)
	protected.DELETE("/clients/:id", clientHandler.Delete)

	protected.POST("/programs", programHandler.Create)
	protected.GET("/programs", programHandler.List)
	protected.GET("/programs/:id", programHandler.Get)
	protected.PUT("/programs/:id", programHandler.Update)
	protected.DELETE("/programs/:id", programHandler.Delete)

	protected.POST("/enrollments", enrollmentHandler.Enroll)
	protected.PATCH("/enrollments/:clientId/:programId", enrollmentHandler.UpdateStatus)
	protected.DELETE("/enrollments/:clientId/:programId", enrollmentHandler.Unenroll)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
