package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalflow/internal/handler/api"
	"rentalflow/internal/handler/middleware"
	"rentalflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, orderHandler *api.OrderHandler, sequenceHandler *api.SequenceHandler, dashboardHandler *api.DashboardHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, orderHandler, sequenceHandler, dashboardHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, orderHandler *api.OrderHandler, sequenceHandler *api.SequenceHandler, dashboardHandler *api.DashboardHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodPost, Path: "/undo", Handler: orderHandler.Undo},
				{Method: http.MethodPost, Path: "/redo", Handler: orderHandler.Redo},
				{Method: http.MethodGet, Path: "/history", Handler: orderHandler.History},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: orderHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/deliver", Handler: orderHandler.Deliver},
				{Method: http.MethodPost, Path: "/:id/return", Handler: orderHandler.Return},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.Cancel},
			})
		}

		sequences := apiGroup.Group("/sequences")
		{
			addRoutes(sequences, []route{
				{Method: http.MethodGet, Path: "/:name", Handler: sequenceHandler.Peek},
				{Method: http.MethodPut, Path: "/:name", Handler: sequenceHandler.Reset},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: dashboardHandler.Stats},
				{Method: http.MethodGet, Path: "/reports", Handler: dashboardHandler.Reports},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
