package projection

import (
	"fmt"
	"strconv"
)

// FormatPopulation abbreviates large values: 1.41B, 67.0M, 9.4K. A nil value
// prints as N/A.
func FormatPopulation(v *int64) string {
	if v == nil {
		return "N/A"
	}
	return FormatCount(*v)
}

// FormatCount abbreviates n the same way as FormatPopulation.
func FormatCount(n int64) string {
	neg := n < 0
	a := n
	if neg {
		a = -n
	}
	var s string
	switch {
	case a >= 1_000_000_000:
		s = fmt.Sprintf("%.2fB", float64(a)/1e9)
	case a >= 1_000_000:
		s = fmt.Sprintf("%.1fM", float64(a)/1e6)
	case a >= 1_000:
		s = fmt.Sprintf("%.1fK", float64(a)/1e3)
	default:
		s = strconv.FormatInt(a, 10)
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatChange prints a signed population delta, "—" when unknown.
func FormatChange(v *int64) string {
	if v == nil {
		return "—"
	}
	if *v >= 0 {
		return "+" + FormatCount(*v)
	}
	return FormatCount(*v)
}

// FormatPercentChange prints "+12.3%", "—" when unknown.
func FormatPercentChange(v *float64) string {
	if v == nil {
		return "—"
	}
	sign := ""
	if *v >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, *v)
}
