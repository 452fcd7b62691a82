package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/safar/go-food-store/internal/api"
	"github.com/shopspring/decimal"
)

// APIError is a non-2xx answer from the shop API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Products fetches the storefront menu.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var resp []api.ProductResponse
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return productsFromResponse(resp), nil
}

// PlaceOrder submits the cart. Validation failures return before anything
// is sent. The cart is cleared once the order is accepted.
func (c *Client) PlaceOrder(ctx context.Context, cart *Cart, form CheckoutForm) (string, error) {
	if err := ValidateCheckout(cart, form); err != nil {
		return "", err
	}

	req := api.OrderRequest{
		DeliveryAddress: form.DeliveryAddress,
		PaymentMethod:   form.PaymentMethod,
		PhoneNumber:     form.PhoneNumber,
		TotalPrice:      api.NumericFrom(cart.Total()),
	}
	for _, item := range cart.Items() {
		line := api.OrderItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     api.NumericFrom(item.Product.Price),
		}
		if item.Product.Discount.Valid {
			line.Discount = api.NumericFrom(item.Product.Discount.Decimal)
		}
		req.Items = append(req.Items, line)
	}

	var resp api.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}

	cart.Clear()
	return resp.OrderID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func productsFromResponse(resp []api.ProductResponse) []Product {
	out := make([]Product, 0, len(resp))
	for _, p := range resp {
		out = append(out, productFromResponse(p))
	}
	return out
}

func productFromResponse(p api.ProductResponse) Product {
	product := Product{
		ID:        p.ID,
		NameUz:    p.NameUz,
		NameRu:    p.NameRu,
		Price:     decimal.NewFromFloat(p.Price),
		Category:  p.Category,
		Available: p.Available,
	}
	if p.Discount != nil {
		product.Discount = decimal.NewNullDecimal(decimal.NewFromFloat(*p.Discount))
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	return product
}
