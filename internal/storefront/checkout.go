package storefront

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PaymentCash = "Naqd pul"
	PaymentCard = "Karta orqali"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrMissingPhone = errors.New("phone number is required")
)

type CheckoutForm struct {
	DeliveryAddress string `validate:"required"`
	PaymentMethod   string `validate:"required,oneof='Naqd pul' 'Karta orqali'"`
	PhoneNumber     string `validate:"max=32"`
}

var validate = validator.New()

// ValidateCheckout runs before any request is made. An empty cart is
// reported as ErrEmptyCart and a blank phone number as ErrMissingPhone.
func ValidateCheckout(cart *Cart, form CheckoutForm) error {
	if cart == nil || cart.IsEmpty() {
		return ErrEmptyCart
	}
	if strings.TrimSpace(form.PhoneNumber) == "" {
		return ErrMissingPhone
	}
	if err := validate.Struct(form); err != nil {
		return fmt.Errorf("validate checkout: %w", err)
	}
	return nil
}
