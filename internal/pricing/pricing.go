// Package pricing holds the discount arithmetic shared by the catalog, the
// order notification and the storefront cart, plus locale-aware rendering of
// amounts.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var hundred = decimal.NewFromInt(100)

// HasDiscount reports whether discount should be applied. A zero discount is
// treated the same as no discount.
func HasDiscount(discount decimal.NullDecimal) bool {
	return discount.Valid && !discount.Decimal.IsZero()
}

// DiscountedPrice returns price × (1 − discount/100), or price unchanged when
// there is no discount.
func DiscountedPrice(price decimal.Decimal, discount decimal.NullDecimal) decimal.Decimal {
	if !HasDiscount(discount) {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(discount.Decimal.Div(hundred))
	return price.Mul(factor)
}

func LineTotal(price decimal.Decimal, discount decimal.NullDecimal, quantity int) decimal.Decimal {
	return DiscountedPrice(price, discount).Mul(decimal.NewFromInt(int64(quantity)))
}

// NormalizeDiscount maps a zero discount to null so "no discount" has a
// single stored form.
func NormalizeDiscount(discount decimal.NullDecimal) decimal.NullDecimal {
	if !HasDiscount(discount) {
		return decimal.NullDecimal{}
	}
	return discount
}

// Formatter renders amounts with the digit grouping of a locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// MustFormatter is NewFormatter for locales known at compile time.
func MustFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(amount.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
}
