package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/safar/go-food-store/internal/store"
)

const (
	msgFetchProducts = "Failed to fetch products"
	msgCreateProduct = "Failed to create product"
	msgUpdateProduct = "Failed to update product"
	msgDeleteProduct = "Failed to delete product"
)

// ListProducts returns the storefront menu: available products, newest first.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := store.ListAvailableProducts(c.Request.Context(), h.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgFetchProducts, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponses(products))
}

// ListAllProducts is the admin view and includes unavailable products.
func (h *Handler) ListAllProducts(c *gin.Context) {
	products, err := store.ListProducts(c.Request.Context(), h.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgFetchProducts, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponses(products))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError, msgCreateProduct, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		fail(c, http.StatusInternalServerError, msgCreateProduct, err)
		return
	}
	// New products always start available.
	in.Available = nil

	product, err := store.CreateProduct(c.Request.Context(), h.db, in)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgCreateProduct, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, msgUpdateProduct, fmt.Errorf("parse product id: %w", err))
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusInternalServerError, msgUpdateProduct, err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		fail(c, http.StatusInternalServerError, msgUpdateProduct, err)
		return
	}

	product, err := store.UpdateProduct(c.Request.Context(), h.db, id, in)
	if err != nil {
		fail(c, http.StatusInternalServerError, msgUpdateProduct, err)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(product))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusInternalServerError, msgDeleteProduct, fmt.Errorf("parse product id: %w", err))
		return
	}

	if err := store.DeleteProduct(c.Request.Context(), h.db, id); err != nil {
		fail(c, http.StatusInternalServerError, msgDeleteProduct, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
