package dataset

import "strings"

// Categorical values are normalized once at load time. Grouping on
// non-normalized text would silently fragment groups, so every function here
// is idempotent and applied before any record reaches an engine.

// NormalizeChannel trims and uppercases a sales-channel identifier.
func NormalizeChannel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeProductType trims and lowercases a product category label.
func NormalizeProductType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeCity trims a city name, preserving its original casing. Cities are
// title-cased only at display time.
func NormalizeCity(s string) string {
	return strings.TrimSpace(s)
}

// normalizeHeader strips embedded newlines, trims and lowercases a column
// header. Column lookups match exactly on the normalized name.
func normalizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ToLower(strings.TrimSpace(s))
}
