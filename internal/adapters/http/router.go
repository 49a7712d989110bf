package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/adapters/http/handlers"
	"notekeeper/internal/adapters/http/middleware"
	"notekeeper/internal/platform/config"
	"notekeeper/internal/platform/telemetry"
)

// DefaultRequestTimeout is the deadline put on each request context.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains everything SetupRouter needs to wire the
// routes.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig

	Pages    *handlers.PageHandler
	Items    *handlers.ItemHandler
	Feedback *handlers.FeedbackHandler
	Clock    *handlers.ClockHandler
	Health   *handlers.HealthHandler

	// Timeout defaults to DefaultRequestTimeout when zero.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware runs in order: recovery first so it catches everything,
// then request/correlation IDs, tracing and metrics, request logging,
// and the context deadline.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(cfg.AppConfig.Name),
		middleware.Logging(cfg.Logger),
		middleware.SimpleTimeout(timeout),
	)

	// Pages
	engine.GET("/", cfg.Pages.Home)
	engine.GET("/about", cfg.Pages.About)
	engine.GET("/user/:name", cfg.Pages.User)
	engine.GET("/favicon.ico", cfg.Pages.Favicon)

	// Items notebook
	items := engine.Group("/items")
	items.GET("", cfg.Items.List)
	items.GET("/new", cfg.Items.NewForm)
	items.POST("", cfg.Items.Create)
	items.GET("/:id", cfg.Items.Show)
	items.GET("/:id/edit", cfg.Items.EditForm)
	items.PUT("/:id", cfg.Items.Update)
	items.DELETE("/:id", cfg.Items.Delete)

	// Guestbook
	engine.GET("/feedback", cfg.Feedback.List)
	engine.POST("/feedback", cfg.Feedback.Submit)

	// JSON API
	engine.GET("/api/time", cfg.Clock.ServerTime)

	// Health stays flat 200 even when the database is down; the
	// operational probes under /- carry the real readiness signal.
	engine.GET("/health", cfg.Health.Health)
	cfg.Health.RegisterOperationalRoutes(engine)

	// Everything else is the 404 page.
	engine.NoRoute(cfg.Pages.NotFound)
}
