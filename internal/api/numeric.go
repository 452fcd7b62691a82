package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var errMissingNumber = errors.New("missing number")

// Numeric accepts a JSON number, a numeric string or null. Admin forms send
// prices as strings, so coercion is deferred until the value is used and a
// malformed value fails the request there.
type Numeric struct {
	raw string
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		n.raw = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = str
	}
	n.raw = strings.TrimSpace(s)
	return nil
}

// MarshalJSON writes a number when raw parses and a string otherwise, so a
// malformed value still round-trips as valid JSON.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if n.raw == "" {
		return []byte("null"), nil
	}
	d, err := decimal.NewFromString(n.raw)
	if err != nil {
		return json.Marshal(n.raw)
	}
	return []byte(d.String()), nil
}

// NumericFrom wraps a decimal for request bodies built in Go.
func NumericFrom(d decimal.Decimal) Numeric {
	return Numeric{raw: d.String()}
}

func (n Numeric) IsSet() bool {
	return n.raw != ""
}

// Decimal coerces a required value.
func (n Numeric) Decimal() (decimal.Decimal, error) {
	if n.raw == "" {
		return decimal.Decimal{}, errMissingNumber
	}
	d, err := decimal.NewFromString(n.raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("coerce %q: %w", n.raw, err)
	}
	return d, nil
}

// NullDecimal coerces an optional value; absent and zero both mean null.
func (n Numeric) NullDecimal() (decimal.NullDecimal, error) {
	if n.raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := n.Decimal()
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	if d.IsZero() {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(d), nil
}
