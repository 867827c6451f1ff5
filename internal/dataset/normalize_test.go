package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoricals(t *testing.T) {
	assert.Equal(t, "TAT", NormalizeChannel("  tat "))
	assert.Equal(t, "aaa", NormalizeProductType(" AAA\t"))
	assert.Equal(t, "BogotA", NormalizeCity("  BogotA  "), "city casing is preserved")
}

func TestNormalizeIdempotence(t *testing.T) {
	for _, raw := range []string{" au esp ", "TAT", "  Bogota", "aaa jumbo "} {
		channel := NormalizeChannel(raw)
		assert.Equal(t, channel, NormalizeChannel(channel))

		productType := NormalizeProductType(raw)
		assert.Equal(t, productType, NormalizeProductType(productType))

		city := NormalizeCity(raw)
		assert.Equal(t, city, NormalizeCity(city))
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "ebitda (cartera)", normalizeHeader(" EBITDA (Cartera)\n"))
	assert.Equal(t, "1era milla", normalizeHeader("1era Milla\r\n"))
}
