package formatter

import (
	"strconv"
	"strings"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// FormatCount renders a social counter in compact form.
// Example: 999 -> "999", 1200 -> "1.2K", 3400000 -> "3.4M"
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return compact(n, 1_000_000) + "M"
	case n >= 1_000:
		return compact(n, 1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func compact(n, unit int) string {
	s := strconv.FormatFloat(float64(n)/float64(unit), 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
