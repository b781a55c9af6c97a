package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errAmountMissing   = errors.New("amount is required")
	errAmountNotFinite = errors.New("amount must be a finite number")
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e FieldValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseAmount coerces a numeric or numeric-string amount into a float64.
// Strings are parsed strictly: "12.50" is accepted, "12abc" is not.
func ParseAmount(value interface{}) (float64, error) {
	var amount float64
	switch v := value.(type) {
	case nil:
		return 0, ValidationErr("Invalid amount", FieldValidationError{Field: "amount", Message: errAmountMissing.Error()})
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int:
		amount = float64(v)
	case int32:
		amount = float64(v)
	case int64:
		amount = float64(v)
	case uint:
		amount = float64(v)
	case uint32:
		amount = float64(v)
	case uint64:
		amount = float64(v)
	case decimal.Decimal:
		amount = v.InexactFloat64()
	case json.Number:
		parsed, err := parseAmountString(v.String())
		if err != nil {
			return 0, err
		}
		amount = parsed
	case string:
		parsed, err := parseAmountString(v)
		if err != nil {
			return 0, err
		}
		amount = parsed
	default:
		return 0, ValidationErr("Invalid amount", FieldValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("unsupported type %T", value),
		})
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ValidationErr("Invalid amount", FieldValidationError{Field: "amount", Message: errAmountNotFinite.Error()})
	}
	return amount, nil
}

func parseAmountString(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ValidationErr("Invalid amount", FieldValidationError{Field: "amount", Message: errAmountMissing.Error()})
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, ValidationErr("Invalid amount", FieldValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("%q is not a number", raw),
		})
	}
	return d.InexactFloat64(), nil
}

// SerializeJSON renders structured input as JSON text for a text column.
// A nil value yields an empty string.
func SerializeJSON(field string, value interface{}) (string, error) {
	if value == nil {
		return "", nil
	}
	if s, ok := value.(json.RawMessage); ok {
		if !json.Valid(s) {
			return "", ValidationErr("Invalid "+field, FieldValidationError{Field: field, Message: "malformed JSON"})
		}
		return string(s), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", ValidationErr("Invalid "+field, FieldValidationError{Field: field, Message: err.Error()})
	}
	return string(b), nil
}
