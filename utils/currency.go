package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyPHP formats an amount as Philippine pesos.
// Example: 1156 -> "PHP 1,156.00"
func FormatCurrencyPHP(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := false
	if strings.HasPrefix(integerPart, "-") {
		negative = true
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := "PHP " + strings.Join(groups, ",") + "." + decimalPart
	if negative {
		out = "PHP -" + strings.Join(groups, ",") + "." + decimalPart
	}
	return out
}
