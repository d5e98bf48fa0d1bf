package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yanqian/wellness-tips/internal/infra/config"
	"github.com/yanqian/wellness-tips/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, recorder *metrics.Recorder) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if reg := recorder.Registry(); reg != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.GET("/profile", handler.GetProfile)
		api.HEAD("/profile", handler.ProfileExists)
		api.PUT("/profile", handler.SaveProfile)
		api.DELETE("/profile", handler.DeleteProfile)

		api.GET("/tips", handler.ListTips)
		api.DELETE("/tips", handler.ClearTips)
		api.GET("/tips/events", handler.StreamEvents)
		api.POST("/tips/generate", handler.GenerateTips)
		api.POST("/tips/translate", handler.TranslateTips)
		api.GET("/tips/:id", handler.GetTip)
		api.POST("/tips/:id/expand", handler.ExpandTip)
		api.PUT("/tips/:id/favorite", handler.ToggleFavorite)

		api.GET("/settings/language", handler.GetLanguage)
		api.PUT("/settings/language", handler.SetLanguage)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
