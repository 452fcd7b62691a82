// Package api exposes the catalog, order and admin endpoints over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/safar/go-food-store/internal/auth"
	"github.com/safar/go-food-store/internal/logger"
	"github.com/safar/go-food-store/internal/metrics"
	"github.com/safar/go-food-store/internal/notify"
	"go.uber.org/zap"
)

type Handler struct {
	db         *sqlx.DB
	dispatcher *notify.Dispatcher
	tokens     *auth.TokenIssuer
	metrics    *metrics.Metrics
}

// NewHandler builds the endpoint set. m may be nil to run without metrics.
func NewHandler(db *sqlx.DB, dispatcher *notify.Dispatcher, tokens *auth.TokenIssuer, m *metrics.Metrics) *Handler {
	return &Handler{db: db, dispatcher: dispatcher, tokens: tokens, metrics: m}
}

// fail logs err with the request logger and replies with a fixed message.
// Clients never see the underlying error.
func fail(c *gin.Context, status int, message string, err error) {
	logger.FromContext(c).Error(message, zap.Error(err))
	c.JSON(status, ErrorResponse{Error: message})
}
