package dataset

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts loosely formatted monetary text ("$1,234.50", " 1 234 ")
// into a float. The second return reports whether the cell parsed cleanly;
// unparseable text coerces to 0.0 instead of failing, so aggregates built on
// top of malformed cells can be understated. Blank cells are clean zeros.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// ParseFloat accepts "nan", "inf" and "infinity"; none of them are
	// monetary values, so they coerce like any other malformed cell.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
