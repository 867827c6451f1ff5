package main

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var cityCaser = cases.Title(language.Spanish)

// titleCity renders a stored city name for display. The dataset keeps the
// original casing; title case is a display concern only.
func titleCity(city string) string {
	return cityCaser.String(strings.ToLower(city))
}

// formatMoney renders a value as "$1,234.50" with comma thousands separators.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	prefix := "$"
	if neg {
		prefix = "-$"
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.Index(s, ".")
	if dot < 0 {
		// Non-finite values format without a decimal point.
		return prefix + s
	}
	return prefix + groupThousands(s[:dot]) + "." + s[dot+1:]
}

// formatQuantity renders a quantity as a whole number with thousands
// separators, e.g. 1000 => "1,000".
func formatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if strings.HasPrefix(s, "-") {
		return "-" + groupThousands(s[1:])
	}
	return groupThousands(s)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var buf []byte
	count := 0
	for i := len(s) - 1; i >= 0; i-- {
		buf = append(buf, s[i])
		count++
		if count == 3 && i != 0 {
			buf = append(buf, ',')
			count = 0
		}
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
