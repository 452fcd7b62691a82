package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/pricing"
)

// Telegram posts order messages through the Bot API sendMessage method.
type Telegram struct {
	client    *http.Client
	apiURL    string
	token     string
	chatID    string
	formatter *pricing.Formatter
}

func NewTelegram(client *http.Client, apiURL, token, chatID string, formatter *pricing.Formatter) *Telegram {
	if client == nil {
		client = http.DefaultClient
	}
	return &Telegram{
		client:    client,
		apiURL:    strings.TrimRight(apiURL, "/"),
		token:     token,
		chatID:    chatID,
		formatter: formatter,
	}
}

func (t *Telegram) NotifyOrder(ctx context.Context, order *models.Order) error {
	query := url.Values{}
	query.Set("chat_id", t.chatID)
	query.Set("text", BuildOrderMessage(order, t.formatter))

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage?%s", t.apiURL, t.token, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		// The URL embeds the bot token; keep it out of logs.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
