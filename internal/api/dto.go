package api

import (
	"time"

	"github.com/safar/go-food-store/internal/models"
	"github.com/safar/go-food-store/internal/pricing"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	NameUz    string  `json:"nameUz"`
	NameRu    string  `json:"nameRu"`
	Price     Numeric `json:"price"`
	Image     *string `json:"image"`
	Discount  Numeric `json:"discount"`
	Category  string  `json:"category"`
	Available *bool   `json:"available,omitempty"`
}

func (r ProductRequest) toInput() (models.ProductInput, error) {
	price, err := r.Price.Decimal()
	if err != nil {
		return models.ProductInput{}, err
	}
	discount, err := r.Discount.NullDecimal()
	if err != nil {
		return models.ProductInput{}, err
	}

	return models.ProductInput{
		NameUz:    r.NameUz,
		NameRu:    r.NameRu,
		Price:     price,
		Discount:  discount,
		Image:     r.Image,
		Category:  r.Category,
		Available: r.Available,
	}, nil
}

type ProductResponse struct {
	ID              string    `json:"id"`
	NameUz          string    `json:"nameUz"`
	NameRu          string    `json:"nameRu"`
	Price           float64   `json:"price"`
	Discount        *float64  `json:"discount"`
	DiscountedPrice float64   `json:"discountedPrice"`
	Image           *string   `json:"image"`
	Category        string    `json:"category"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID.String(),
		NameUz:          p.NameUz,
		NameRu:          p.NameRu,
		Price:           p.Price.InexactFloat64(),
		Discount:        nullableFloat(p.Discount),
		DiscountedPrice: pricing.DiscountedPrice(p.Price, p.Discount).InexactFloat64(),
		Image:           p.Image,
		Category:        p.Category,
		Available:       p.Available,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func newProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductResponse(&products[i]))
	}
	return out
}

type OrderRequest struct {
	DeliveryAddress string             `json:"deliveryAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	PhoneNumber     string             `json:"phoneNumber"`
	TotalPrice      Numeric            `json:"totalPrice"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     Numeric `json:"price"`
	Discount  Numeric `json:"discount"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	DeliveryAddress string              `json:"deliveryAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	PhoneNumber     string              `json:"phoneNumber"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	ID            int64    `json:"id"`
	ProductID     *string  `json:"productId"`
	ProductNameUz string   `json:"productNameUz"`
	ProductNameRu string   `json:"productNameRu"`
	Quantity      int      `json:"quantity"`
	Price         float64  `json:"price"`
	Discount      *float64 `json:"discount"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID.String(),
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		PhoneNumber:     o.PhoneNumber,
		TotalPrice:      o.TotalPrice.InexactFloat64(),
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
	for _, item := range o.Items {
		var productID *string
		if item.ProductID.Valid {
			id := item.ProductID.UUID.String()
			productID = &id
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:            item.ID,
			ProductID:     productID,
			ProductNameUz: item.ProductNameUz,
			ProductNameRu: item.ProductNameRu,
			Quantity:      item.Quantity,
			Price:         item.Price.InexactFloat64(),
			Discount:      nullableFloat(item.Discount),
		})
	}
	return resp
}

type OrderPageResponse struct {
	Items      []OrderResponse `json:"items"`
	NextCursor string          `json:"nextCursor,omitempty"`
	HasMore    bool            `json:"hasMore"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func nullableFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}
