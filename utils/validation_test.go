package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"decimal string", "12.50", 12.5},
		{"padded string", " 3 ", 3},
		{"exponent string", "1e2", 100},
		{"float", 9.99, 9.99},
		{"int", 42, 42},
		{"int64", int64(-5), -5},
		{"json number", json.Number("0.01"), 0.01},
		{"decimal", decimal.RequireFromString("19.95"), 19.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountRejects(t *testing.T) {
	for name, input := range map[string]interface{}{
		"nil":               nil,
		"empty":             "",
		"word":              "twelve",
		"trailing":          "12abc",
		"nan":               math.NaN(),
		"inf":               math.Inf(1),
		"overflow":          "1e400",
		"negative overflow": "-1e400",
		"overflow number":   json.Number("1e400"),
		"bool":              true,
		"map":               map[string]interface{}{"value": 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAmount(input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestSerializeJSON(t *testing.T) {
	text, err := SerializeJSON("customer", map[string]interface{}{"email": "a@b.c"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.c"}`, text)

	text, err = SerializeJSON("customer", nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = SerializeJSON("customer", json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)

	_, err = SerializeJSON("customer", json.RawMessage(`{"a":`))
	assert.True(t, IsValidationError(err))

	_, err = SerializeJSON("customer", make(chan int))
	assert.True(t, IsValidationError(err))
}
