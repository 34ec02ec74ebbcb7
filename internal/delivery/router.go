package delivery

import (
	"context"
	"net/http"
	"time"

	"catalog_service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RouterConfig struct {
	Categories *CategoryHandler
	Products   *ProductHandler
	Metrics    *metrics.Metrics
	DB         Pinger
	Logger     *logrus.Logger
}

// NewRouter builds the gin engine with all catalog routes and middleware.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(Metrics(cfg.Metrics))
	}
	router.Use(ErrorHandler(cfg.Logger))

	router.GET("/", serveIndexPage)
	router.GET("/health", healthHandler(cfg.DB, cfg.Logger))
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	cfg.Categories.RegisterRoutes(router)
	cfg.Products.RegisterRoutes(router)
	return router
}

// WithCORS wraps the engine with rs/cors for the configured origins.
func WithCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{"Location", requestIDHeader},
		MaxAge:         300,
	}).Handler(h)
}

func healthHandler(db Pinger, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.Errorf("Health check: database ping failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}
