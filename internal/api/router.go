package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/spyweb/portal-api/docs"
	"github.com/spyweb/portal-api/internal/api/handler"
	"github.com/spyweb/portal-api/internal/api/middleware"
	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/service"
	"github.com/spyweb/portal-api/internal/infrastructure/config"
	mongodb "github.com/spyweb/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/spyweb/portal-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("spyweb"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	aboutRepo := mongodb.NewAboutRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	ticketRepo := mongodb.NewTicketRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Auth.ThrottleMaxAttempts, cfg.Auth.ThrottleWindow)

	authService := service.NewAuthService(accountRepo, throttle, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	projectService := service.NewProjectService(projectRepo, log)
	catalogService := service.NewCatalogService(serviceRepo, aboutRepo, log)
	contactService := service.NewContactService(contactRepo, log)
	ticketService := service.NewTicketService(ticketRepo, accountRepo, log)
	accountService := service.NewAccountService(accountRepo, log)
	chatService := service.NewChatService()

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	contactHandler := handler.NewContactHandler(contactService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	clientAdminHandler := handler.NewClientAdminHandler(accountService)
	chatHandler := handler.NewChatHandler(chatService)

	authRequired := middleware.Auth(authService)
	authOptional := middleware.OptionalAuth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Client portal auth ---
	clientAuth := e.Group("/api/clients/auth")
	clientAuth.POST("/signup", authHandler.Signup)
	clientAuth.POST("/login", authHandler.Login)
	clientAuth.GET("/me", authHandler.Me, authRequired)
	clientAuth.PUT("/profile", authHandler.UpdateProfile, authRequired)

	// --- Projects ---
	e.GET("/api/projects", projectHandler.ListPublic)
	e.GET("/api/projects/my", projectHandler.ListMine, authRequired)
	e.GET("/api/projects/:id", projectHandler.Get, authOptional)
	e.POST("/api/projects", projectHandler.Create, authRequired, adminOnly)
	e.PUT("/api/projects/:id", projectHandler.Update, authRequired, adminOnly)
	e.DELETE("/api/projects/:id", projectHandler.Delete, authRequired, adminOnly)

	// --- Service catalog & about page ---
	e.GET("/api/services", catalogHandler.ListServices)
	e.POST("/api/services", catalogHandler.CreateService, authRequired, adminOnly)
	e.PUT("/api/services/:id", catalogHandler.UpdateService, authRequired, adminOnly)
	e.DELETE("/api/services/:id", catalogHandler.DeleteService, authRequired, adminOnly)
	e.GET("/api/about", catalogHandler.GetAbout)
	e.PUT("/api/about", catalogHandler.UpdateAbout, authRequired, adminOnly)

	// --- Contacts ---
	e.POST("/api/contacts", contactHandler.Submit)
	e.GET("/api/contacts", contactHandler.List, authRequired, adminOnly)
	e.PUT("/api/contacts/:id", contactHandler.SetStatus, authRequired, adminOnly)
	e.DELETE("/api/contacts/:id", contactHandler.Delete, authRequired, adminOnly)

	// --- Support tickets ---
	e.POST("/api/messages", ticketHandler.Open, authRequired)
	e.GET("/api/messages", ticketHandler.ListMine, authRequired)
	e.GET("/api/messages/admin/all", ticketHandler.ListAll, authRequired, adminOnly)
	e.PUT("/api/messages/:id/reply", ticketHandler.Reply, authRequired, adminOnly)

	// --- Client directory (back office) ---
	clients := e.Group("/api/clients", authRequired, adminOnly)
	clients.GET("", clientAdminHandler.List)
	clients.POST("", clientAdminHandler.Create)
	clients.PUT("/:id", clientAdminHandler.Update)
	clients.DELETE("/:id", clientAdminHandler.Delete)

	// --- Chat widget ---
	e.POST("/api/ai/chat", chatHandler.Chat)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
