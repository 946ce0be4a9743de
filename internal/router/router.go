// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hautevault/boutique-backend/internal/ai"
	"github.com/hautevault/boutique-backend/internal/config"
	"github.com/hautevault/boutique-backend/internal/handlers"
	"github.com/hautevault/boutique-backend/internal/marketplace"
	"github.com/hautevault/boutique-backend/internal/middleware"
	"github.com/hautevault/boutique-backend/internal/payments"
	"github.com/hautevault/boutique-backend/internal/services"
	"github.com/hautevault/boutique-backend/internal/store"
	"github.com/hautevault/boutique-backend/internal/utils"
)

func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	market := marketplace.New(cfg.Marketplace)
	writer := ai.NewGemini(cfg.AI)
	provider := payments.New(cfg.Payment)
	tileService, _ := services.NewTileService(cfg)

	ingestService := services.NewIngestService(st, market)
	curateService := services.NewCurateService(st, writer, tileService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg.Admin)
	itemHandler := handlers.NewItemHandler(st)
	settingsHandler := handlers.NewSettingsHandler(st)
	logsHandler := handlers.NewLogsHandler(st)
	jobsHandler := handlers.NewJobsHandler(ingestService, curateService)
	checkoutHandler := handlers.NewCheckoutHandler(provider)
	healthHandler := handlers.NewHealthHandler(st)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Admin.JWTSecret)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	r.NoRoute(func(c *gin.Context) {
		utils.NotFoundResponse(c)
	})
	r.NoMethod(func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", nil)
	})

	r.GET("/health", healthHandler.Get)

	auth := r.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/login", authHandler.Login)
	}

	r.GET("/items", middleware.OptionalAdmin(), itemHandler.List)
	r.GET("/item/:id", middleware.OptionalAdmin(), itemHandler.Get)
	r.PATCH("/item/:id", middleware.AdminRequired(), itemHandler.Patch)

	settings := r.Group("/settings")
	settings.Use(middleware.AdminRequired())
	{
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)
	}

	r.GET("/logs", middleware.AdminRequired(), logsHandler.List)

	jobs := r.Group("/jobs")
	jobs.Use(middleware.AdminRequired())
	{
		jobs.POST("/ingest", jobsHandler.Ingest)
		jobs.POST("/curate", jobsHandler.Curate)
	}

	r.POST("/checkout", checkoutHandler.Create)

	return r
}
