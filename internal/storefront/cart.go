// Package storefront holds the customer and admin client logic of the shop:
// the cart, menu grouping, checkout validation and calls to the HTTP API.
package storefront

import (
	"github.com/safar/go-food-store/internal/pricing"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string
	NameUz    string
	NameRu    string
	Price     decimal.Decimal
	Discount  decimal.NullDecimal
	Image     string
	Category  string
	Available bool
}

// DisplayPrice is what the customer pays per unit.
func (p Product) DisplayPrice() decimal.Decimal {
	return pricing.DiscountedPrice(p.Price, p.Discount)
}

type CartItem struct {
	Product  Product
	Quantity int
}

// Cart is an in-memory basket. Items keep the order in which they were first
// added.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one more unit of p in the cart.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// Remove takes one unit out; the line disappears when it reaches zero.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID != productID {
			continue
		}
		if c.items[i].Quantity > 1 {
			c.items[i].Quantity--
			return
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		return
	}
}

func (c *Cart) Quantity(productID string) int {
	for _, item := range c.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total sums discounted unit prices times quantities.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(pricing.LineTotal(item.Product.Price, item.Product.Discount, item.Quantity))
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}
