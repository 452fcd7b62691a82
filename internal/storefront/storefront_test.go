package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/safar/go-food-store/internal/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	iceTea = Product{
		ID:       "ice-tea",
		NameUz:   "Ice-Tea",
		Price:    decimal.NewFromInt(10000),
		Discount: decimal.NewNullDecimal(decimal.NewFromInt(25)),
		Category: "Ichimliklar",
	}
	hotDog = Product{
		ID:       "hot-dog",
		NameUz:   "Hot-Dog",
		Price:    decimal.NewFromInt(17500),
		Category: "Xot-Doglar",
	}
	cola = Product{
		ID:       "cola",
		NameUz:   "Coca-Cola",
		Price:    decimal.NewFromInt(8000),
		Category: "Ichimliklar",
	}
)

func TestCartAddRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(iceTea)
	cart.Add(hotDog)
	cart.Add(iceTea)

	assert.Equal(t, 2, cart.Quantity("ice-tea"))
	assert.Equal(t, 1, cart.Quantity("hot-dog"))
	assert.Equal(t, 3, cart.Count())
	require.Len(t, cart.Items(), 2)
	assert.Equal(t, "ice-tea", cart.Items()[0].Product.ID)

	cart.Remove("ice-tea")
	assert.Equal(t, 1, cart.Quantity("ice-tea"))

	cart.Remove("ice-tea")
	assert.Equal(t, 0, cart.Quantity("ice-tea"))
	assert.Len(t, cart.Items(), 1)

	cart.Remove("unknown")
	assert.Len(t, cart.Items(), 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartTotalUsesDiscountedPrice(t *testing.T) {
	cart := NewCart()
	cart.Add(iceTea)
	cart.Add(iceTea)
	cart.Add(hotDog)

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(32500)), cart.Total().String())
	assert.True(t, iceTea.DisplayPrice().Equal(decimal.NewFromInt(7500)))
	assert.True(t, hotDog.DisplayPrice().Equal(hotDog.Price))
}

func TestGroupByCategoryKeepsFirstSeenOrder(t *testing.T) {
	groups := GroupByCategory([]Product{iceTea, hotDog, cola})

	require.Len(t, groups, 2)
	assert.Equal(t, "Ichimliklar", groups[0].Name)
	assert.Equal(t, []Product{iceTea, cola}, groups[0].Products)
	assert.Equal(t, "Xot-Doglar", groups[1].Name)
	assert.Empty(t, GroupByCategory(nil))
}

func TestValidateCheckout(t *testing.T) {
	form := CheckoutForm{DeliveryAddress: "Xonqa", PaymentMethod: PaymentCash, PhoneNumber: "+998331191415"}

	assert.ErrorIs(t, ValidateCheckout(NewCart(), form), ErrEmptyCart)

	cart := NewCart()
	cart.Add(hotDog)
	assert.NoError(t, ValidateCheckout(cart, form))

	assert.Error(t, ValidateCheckout(cart, CheckoutForm{PaymentMethod: PaymentCard, PhoneNumber: "+998331191415"}))
	assert.Error(t, ValidateCheckout(cart, CheckoutForm{DeliveryAddress: "Xonqa", PaymentMethod: "Bitcoin", PhoneNumber: "+998331191415"}))

	for _, phone := range []string{"", "   ", "\t"} {
		blank := form
		blank.PhoneNumber = phone
		assert.ErrorIs(t, ValidateCheckout(cart, blank), ErrMissingPhone, "%q", phone)
	}
}

func TestPlaceOrderBlankPhoneSendsNothing(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	cart := NewCart()
	cart.Add(hotDog)

	client := NewClient(srv.URL, srv.Client())
	_, err := client.PlaceOrder(context.Background(), cart, CheckoutForm{DeliveryAddress: "Xonqa", PaymentMethod: PaymentCash, PhoneNumber: "  "})

	assert.ErrorIs(t, err, ErrMissingPhone)
	assert.Equal(t, int32(0), requests.Load())
	assert.False(t, cart.IsEmpty())
}

func TestPlaceOrderEmptyCartSendsNothing(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.PlaceOrder(context.Background(), NewCart(), CheckoutForm{DeliveryAddress: "Xonqa", PaymentMethod: PaymentCash})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int32(0), requests.Load())
}

func TestPlaceOrder(t *testing.T) {
	var got api.OrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"orderId":"order-1"}`))
	}))
	defer srv.Close()

	cart := NewCart()
	cart.Add(iceTea)
	cart.Add(iceTea)
	cart.Add(hotDog)

	client := NewClient(srv.URL, srv.Client())
	orderID, err := client.PlaceOrder(context.Background(), cart, CheckoutForm{
		DeliveryAddress: "Xonqa",
		PaymentMethod:   PaymentCash,
		PhoneNumber:     "+998331191415",
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", orderID)
	assert.True(t, cart.IsEmpty())

	assert.Equal(t, "Xonqa", got.DeliveryAddress)
	total, err := got.TotalPrice.Decimal()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(32500)))

	require.Len(t, got.Items, 2)
	assert.Equal(t, "ice-tea", got.Items[0].ProductID)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Items[0].Discount.IsSet())
	assert.False(t, got.Items[1].Discount.IsSet())
}

func TestPlaceOrderServerErrorKeepsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to create order"}`))
	}))
	defer srv.Close()

	cart := NewCart()
	cart.Add(hotDog)

	_, err := NewClient(srv.URL, srv.Client()).PlaceOrder(context.Background(), cart, CheckoutForm{DeliveryAddress: "Xonqa", PaymentMethod: PaymentCash, PhoneNumber: "+998331191415"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to create order", apiErr.Message)
	assert.False(t, cart.IsEmpty())
}

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"ice-tea","nameUz":"Ice-Tea","nameRu":"Айс-Ти","price":10000,"discount":25,"discountedPrice":7500,"image":null,"category":"Ichimliklar","available":true}]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL, nil).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Айс-Ти", products[0].NameRu)
	assert.True(t, products[0].DisplayPrice().Equal(decimal.NewFromInt(7500)))
}

func TestAdminClientRequiresLogin(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	admin := NewAdminClient(srv.URL, srv.Client())
	ctx := context.Background()

	_, err := admin.Products(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = admin.CreateProduct(ctx, ProductForm{NameUz: "x"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = admin.UpdateProduct(ctx, "id", ProductForm{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, admin.DeleteProduct(ctx, "id"), ErrNotAuthenticated)
	assert.Equal(t, int32(0), requests.Load())
}

func TestAdminClientLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	admin := NewAdminClient(srv.URL, srv.Client())
	err := admin.Login(context.Background(), "dendyuz", "wrong")

	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.False(t, admin.Authenticated())
}

func TestAdminClientManagesProducts(t *testing.T) {
	var created map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/admin/login":
			_, _ = w.Write([]byte(`{"success":true,"token":"tok"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/products":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			_, _ = w.Write([]byte(`{"id":"p1","nameUz":"Lavash","price":25000,"discount":null,"category":"Setlar","available":true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/products/p1":
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	admin := NewAdminClient(srv.URL, srv.Client())
	ctx := context.Background()

	require.NoError(t, admin.Login(ctx, "dendyuz", "parolyoq"))
	assert.True(t, admin.Authenticated())

	product, err := admin.CreateProduct(ctx, ProductForm{NameUz: "Lavash", Price: " 25000 ", Category: "Setlar", Available: true})
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "25000", created["price"])
	assert.Nil(t, created["image"])

	require.NoError(t, admin.DeleteProduct(ctx, "p1"))

	admin.Logout()
	assert.False(t, admin.Authenticated())
	assert.ErrorIs(t, admin.DeleteProduct(ctx, "p1"), ErrNotAuthenticated)
}
