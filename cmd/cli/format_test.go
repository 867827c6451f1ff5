package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{50, "$50.00"},
		{0, "$0.00"},
		{-1234.5, "-$1,234.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatMoney(tt.input))
	}
}

func TestFormatMoneyNonFinite(t *testing.T) {
	// Non-finite values must render, not panic the session.
	assert.Equal(t, "$NaN", formatMoney(math.NaN()))
	assert.Equal(t, "$+Inf", formatMoney(math.Inf(1)))
	assert.Equal(t, "-$+Inf", formatMoney(math.Inf(-1)))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1,000", formatQuantity(1000))
	assert.Equal(t, "500", formatQuantity(500))
	assert.Equal(t, "12,345,678", formatQuantity(12345678))
}

func TestTitleCity(t *testing.T) {
	assert.Equal(t, "Bogota", titleCity("BOGOTA"))
	assert.Equal(t, "Santa Marta", titleCity("santa marta"))
}
