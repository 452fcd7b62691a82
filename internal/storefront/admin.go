package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/safar/go-food-store/internal/api"
)

var ErrNotAuthenticated = errors.New("admin is not logged in")

// ProductForm mirrors the admin edit dialog, where numbers are typed as text.
type ProductForm struct {
	NameUz    string
	NameRu    string
	Price     string
	Image     string
	Discount  string
	Category  string
	Available bool
}

type productPayload struct {
	NameUz    string  `json:"nameUz"`
	NameRu    string  `json:"nameRu"`
	Price     string  `json:"price"`
	Image     *string `json:"image"`
	Discount  string  `json:"discount"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

func (f ProductForm) payload() productPayload {
	p := productPayload{
		NameUz:    f.NameUz,
		NameRu:    f.NameRu,
		Price:     strings.TrimSpace(f.Price),
		Discount:  strings.TrimSpace(f.Discount),
		Category:  f.Category,
		Available: f.Available,
	}
	if image := strings.TrimSpace(f.Image); image != "" {
		p.Image = &image
	}
	return p
}

// AdminClient gates catalog management behind a local authenticated flag,
// set by a successful Login and cleared by Logout.
type AdminClient struct {
	client        *Client
	authenticated bool
}

func NewAdminClient(baseURL string, httpClient *http.Client) *AdminClient {
	return &AdminClient{client: NewClient(baseURL, httpClient)}
}

func (a *AdminClient) Authenticated() bool {
	return a.authenticated
}

func (a *AdminClient) Login(ctx context.Context, username, password string) error {
	var resp api.LoginResponse
	err := a.client.do(ctx, http.MethodPost, "/api/admin/login", api.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	a.authenticated = resp.Success
	a.client.token = resp.Token
	return nil
}

func (a *AdminClient) Logout() {
	a.authenticated = false
	a.client.token = ""
}

func (a *AdminClient) Products(ctx context.Context) ([]Product, error) {
	if !a.authenticated {
		return nil, ErrNotAuthenticated
	}

	var resp []api.ProductResponse
	if err := a.client.do(ctx, http.MethodGet, "/api/admin/products", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return productsFromResponse(resp), nil
}

func (a *AdminClient) CreateProduct(ctx context.Context, form ProductForm) (*Product, error) {
	if !a.authenticated {
		return nil, ErrNotAuthenticated
	}

	var resp api.ProductResponse
	if err := a.client.do(ctx, http.MethodPost, "/api/products", form.payload(), &resp); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	product := productFromResponse(resp)
	return &product, nil
}

func (a *AdminClient) UpdateProduct(ctx context.Context, id string, form ProductForm) (*Product, error) {
	if !a.authenticated {
		return nil, ErrNotAuthenticated
	}

	var resp api.ProductResponse
	if err := a.client.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), form.payload(), &resp); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	product := productFromResponse(resp)
	return &product, nil
}

func (a *AdminClient) DeleteProduct(ctx context.Context, id string) error {
	if !a.authenticated {
		return ErrNotAuthenticated
	}

	if err := a.client.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
