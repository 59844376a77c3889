package exporter

import (
	"fmt"
	"strings"
)

// FormatBRL renders a value as Brazilian currency: R$ 1.234.567,89 with a
// dot as the thousands separator and a comma before the cents.
func FormatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, decPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("R$ %s%s,%s", sign, b.String(), decPart)
}

// FormatCount renders an integer with dots as thousands separators, the
// Brazilian convention used on dashboard cards.
func FormatCount(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a percentage with one decimal place and a comma,
// e.g. 72,5%.
func FormatPercent(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.Replace(s, ".", ",", 1) + "%"
}
