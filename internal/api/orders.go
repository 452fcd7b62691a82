package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/safar/go-food-store/internal/database"
	"github.com/safar/go-food-store/internal/store"
)

const (
	msgCreateOrder   = "Failed to create order"
	msgFetchOrders   = "Failed to fetch orders"
	msgFetchOrder    = "Failed to fetch order"
	msgOrderNotFound = "Order not found"

	defaultOrderPageSize = 20
	maxOrderPageSize     = 100
)

// CreateOrder stores the order, then announces it. A failed announcement is
// logged by the dispatcher and does not affect the response.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError, msgCreateOrder, err)
		return
	}

	orderReq, err := req.toStore()
	if err != nil {
		fail(c, http.StatusInternalServerError, msgCreateOrder, err)
		return
	}

	ctx := c.Request.Context()
	order, err := store.CreateOrder(ctx, h.db, orderReq)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgCreateOrder, err)
		return
	}

	if h.metrics != nil {
		h.metrics.OrderCreated()
	}

	// The order is committed; a client hanging up must not cancel the announcement.
	h.dispatcher.Dispatch(context.WithoutCancel(ctx), order)

	c.JSON(http.StatusOK, CreateOrderResponse{Success: true, OrderID: order.ID.String()})
}

func (r OrderRequest) toStore() (store.CreateOrderRequest, error) {
	total, err := r.TotalPrice.Decimal()
	if err != nil {
		return store.CreateOrderRequest{}, fmt.Errorf("total price: %w", err)
	}

	items := make([]store.OrderItemRequest, 0, len(r.Items))
	for i, item := range r.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return store.CreateOrderRequest{}, fmt.Errorf("item %d product id: %w", i, err)
		}
		price, err := item.Price.Decimal()
		if err != nil {
			return store.CreateOrderRequest{}, fmt.Errorf("item %d price: %w", i, err)
		}
		discount, err := item.Discount.NullDecimal()
		if err != nil {
			return store.CreateOrderRequest{}, fmt.Errorf("item %d discount: %w", i, err)
		}
		items = append(items, store.OrderItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     price,
			Discount:  discount,
		})
	}

	return store.CreateOrderRequest{
		DeliveryAddress: r.DeliveryAddress,
		PaymentMethod:   r.PaymentMethod,
		PhoneNumber:     r.PhoneNumber,
		TotalPrice:      total,
		Items:           items,
	}, nil
}

func (h *Handler) ListOrders(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 || limit > maxOrderPageSize {
		limit = defaultOrderPageSize
	}

	page, err := store.ListOrdersCursor(c.Request.Context(), h.db, c.Query("cursor"), limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgFetchOrders, err)
		return
	}

	resp := OrderPageResponse{
		Items:      make([]OrderResponse, 0, len(page.Items)),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, newOrderResponse(&page.Items[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
		return
	}

	order, err := store.GetOrder(c.Request.Context(), h.db, id)
	if err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgOrderNotFound})
			return
		}
		fail(c, http.StatusInternalServerError, msgFetchOrder, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
