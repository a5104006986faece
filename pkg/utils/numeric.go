// utils/numeric.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// CoerceAmount turns a loosely typed JSON value into a non-negative number.
// Accepts numbers and numeric strings (currency symbols and thousands
// separators are stripped). Anything without an extractable digit is 0.
func CoerceAmount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return clampAmount(n)
	case float32:
		return clampAmount(float64(n))
	case int:
		return clampAmount(float64(n))
	case int64:
		return clampAmount(float64(n))
	case string:
		return clampAmount(parseAmountString(n))
	default:
		return 0
	}
}

// CoerceInt is CoerceAmount truncated to a non-negative integer.
func CoerceInt(v interface{}) int {
	return int(CoerceAmount(v))
}

func clampAmount(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func parseAmountString(s string) float64 {
	var b strings.Builder
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
			b.WriteRune(r)
		case r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	if !hasDigit {
		return 0
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatINR renders an amount with Indian-style digit grouping and no
// decimal places, e.g. 1234567 -> "12,34,567". Matches en-IN toLocaleString.
func FormatINR(amount float64) string {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}
	s := strconv.FormatInt(int64(math.Round(amount)), 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
