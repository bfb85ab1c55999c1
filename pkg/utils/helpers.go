package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatPrice renders a price with two decimals and thousands separators.
func FormatPrice(n float64) string {
	rounded := math.Round(n*100) / 100
	formatted := humanize.CommafWithDigits(rounded, 2)

	whole, frac, found := strings.Cut(formatted, ".")
	if !found {
		return whole + ".00"
	}
	if len(frac) == 1 {
		frac += "0"
	}
	return whole + "." + frac
}

// ParseOptionalInt64 parses s, returning nil for an empty string.
func ParseOptionalInt64(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
