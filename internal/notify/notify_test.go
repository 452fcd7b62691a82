package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleOrder() *models.Order {
	return &models.Order{
		ID:              uuid.New(),
		DeliveryAddress: "Xonqa",
		PaymentMethod:   "Naqd pul",
		TotalPrice:      decimal.NewFromInt(32500),
		CreatedAt:       time.Date(2025, 3, 1, 9, 30, 12, 0, time.UTC),
		Items: []models.OrderItem{
			{
				ProductNameUz: "Ice-Tea",
				Quantity:      2,
				Price:         decimal.NewFromInt(10000),
				Discount:      decimal.NewNullDecimal(decimal.NewFromInt(25)),
			},
			{
				ProductNameUz: "Hot-Dog",
				Quantity:      1,
				Price:         decimal.NewFromInt(17500),
			},
		},
	}
}

const sampleMessage = "🍔 YANGI BUYURTMA! 📞 Telefon: Ko'rsatilmagan 💰 To'lov usuli: Naqd pul 📊 Jami summa: 32,500 so'm 🛒 Buyurtma mahsulotlari:\n" +
	"• Ice-Tea - 2 x 7,500 so'm = 15,000 so'm\n" +
	"• Hot-Dog - 1 x 17,500 so'm = 17,500 so'm\n" +
	"📍 Manzil: Xonqa ⏰ Vaqt: 2025-03-01 09:30"

func TestBuildOrderMessage(t *testing.T) {
	msg := BuildOrderMessage(sampleOrder(), pricing.MustFormatter("en"))
	assert.Equal(t, sampleMessage, msg)
}

func TestBuildOrderMessageTrimsPhone(t *testing.T) {
	order := sampleOrder()
	order.PhoneNumber = "  +998331191415 "

	msg := BuildOrderMessage(order, pricing.MustFormatter("en"))
	assert.Contains(t, msg, "📞 Telefon: +998331191415 💰")
}

func TestTelegramNotifyOrder(t *testing.T) {
	var gotPath, gotChat, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		gotPath = r.URL.Path
		gotChat = r.URL.Query().Get("chat_id")
		gotText = r.URL.Query().Get("text")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegram(srv.Client(), srv.URL+"/", "123:abc", "-100200", pricing.MustFormatter("en"))
	require.NoError(t, tg.NotifyOrder(context.Background(), sampleOrder()))

	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "-100200", gotChat)
	assert.Equal(t, sampleMessage, gotText)
}

func TestTelegramNotifyOrderRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := NewTelegram(srv.Client(), srv.URL, "t", "c", pricing.MustFormatter("en"))
	err := tg.NotifyOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramErrorHidesToken(t *testing.T) {
	tg := NewTelegram(nil, "http://127.0.0.1:1", "secret-token", "c", pricing.MustFormatter("en"))
	err := tg.NotifyOrder(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "secret-token"))
}

type notifierFunc func(ctx context.Context, order *models.Order) error

func (f notifierFunc) NotifyOrder(ctx context.Context, order *models.Order) error { return f(ctx, order) }

func TestDispatcherLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDispatcher(notifierFunc(func(context.Context, *models.Order) error {
		return errors.New("network down")
	}), time.Second, zap.New(core))

	d.Dispatch(context.Background(), sampleOrder())

	entries := logs.FilterMessage("Failed to send order notification").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestDispatcherAppliesTimeout(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDispatcher(notifierFunc(func(ctx context.Context, _ *models.Order) error {
		<-ctx.Done()
		return ctx.Err()
	}), 20*time.Millisecond, zap.New(core))

	start := time.Now()
	d.Dispatch(context.Background(), sampleOrder())

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, logs.Len())
}

func TestDispatcherSuccessIsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewDispatcher(Nop{}, time.Second, zap.New(core)).Dispatch(context.Background(), sampleOrder())
	assert.Equal(t, 0, logs.Len())
}
