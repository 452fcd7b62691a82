package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/safar/go-food-store/internal/logger"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowOrigins []string
	RequireToken bool
}

// NewRouter wires every route. With RequireToken unset the admin routes are
// open and the storefront's own login screen is the only gate.
func NewRouter(h *Handler, cfg RouterConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.Recovery(log))
	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))
	if h.metrics != nil {
		r.Use(h.metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	r.GET("/healthz", h.Health)

	admin := func(c *gin.Context) { c.Next() }
	if cfg.RequireToken {
		admin = RequireAdminToken(h.tokens)
	}

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.POST("/products", admin, h.CreateProduct)
		api.PUT("/products/:id", admin, h.UpdateProduct)
		api.DELETE("/products/:id", admin, h.DeleteProduct)

		api.POST("/orders", h.CreateOrder)

		api.POST("/admin/login", h.Login)

		protected := api.Group("/admin", admin)
		protected.GET("/products", h.ListAllProducts)
		protected.GET("/products/export", h.ExportProducts)
		protected.GET("/orders", h.ListOrders)
		protected.GET("/orders/:id", h.GetOrder)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		fail(c, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
