// Package notify announces new orders to the shop's chat channel.
package notify

import (
	"context"
	"time"

	"github.com/safar/go-food-store/internal/models"
	"go.uber.org/zap"
)

type Notifier interface {
	NotifyOrder(ctx context.Context, order *models.Order) error
}

// Nop drops every notification. It is used when no chat is configured.
type Nop struct{}

func (Nop) NotifyOrder(context.Context, *models.Order) error { return nil }

// Dispatcher delivers notifications on a best-effort basis: each attempt is
// bounded by timeout and failures are only logged.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *zap.Logger
}

func NewDispatcher(notifier Notifier, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, timeout: timeout, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, order *models.Order) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.notifier.NotifyOrder(ctx, order); err != nil {
		d.logger.Warn("Failed to send order notification",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}
}
