package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/breatheright/health-system/internal/api/handler"
	"github.com/breatheright/health-system/internal/api/middleware"
	"github.com/breatheright/health-system/internal/core/domain"
	"github.com/breatheright/health-system/internal/core/ports"
	healthhandlers "github.com/breatheright/health-system/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Mongo and Redis are optional:
// nil means the backend is not configured and the readiness probe skips it.
type Deps struct {
	Logger zerolog.Logger

	Tokens     ports.TokenService
	Auth       ports.AuthService
	Users      ports.UserService
	HealthLogs ports.HealthLogService
	Alerts     handler.AlertDispatcher

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("breatheright"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	logHandler := handler.NewHealthLogHandler(d.HealthLogs)
	patientHandler := handler.NewPatientHandler(d.Users)
	alertHandler := handler.NewAlertHandler(d.Alerts)
	reportHandler := handler.NewReportHandler()
	chatbotHandler := handler.NewChatbotHandler()

	// --- Public routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Authenticated routes ---
	authed := e.Group("/api", middleware.Auth(d.Tokens))

	authed.POST("/health/logs", logHandler.Create, middleware.RBAC(domain.RolePatient))
	authed.GET("/health/logs/:patient_id", logHandler.List)
	authed.GET("/patients", patientHandler.List, middleware.RBAC(domain.RoleDoctor))
	authed.POST("/emergency/alert", alertHandler.Raise, middleware.RBAC(domain.RolePatient))
	authed.POST("/reports/generate", reportHandler.Generate, middleware.RBAC(domain.RolePatient))
	authed.POST("/chatbot/query", chatbotHandler.Query)

	return e
}
