package finance

import (
	"fmt"
	"math"
	"strings"
)

// roundEpsilon counters binary floating-point drift before rounding to cents.
// 2.675 is stored as 2.67499...; the nudge makes it round up as expected.
const roundEpsilon = 1e-9

// SafeFloat rounds x to 2 decimal places and coerces NaN/Inf to 0. Every
// additive or multiplicative chain in the engine passes through it so
// cent-level drift cannot compound across operations.
func SafeFloat(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	v := math.Round((x+roundEpsilon)*100) / 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// safeNum coerces NaN/Inf to 0 without rounding. Used on raw record values
// (rates, hours, amounts) before they enter a calculation.
func safeNum(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF ",
	"INR": "₹",
	"BRL": "R$",
	"PLN": "zł ",
}

// FormatAmount renders an amount with its currency symbol and thousands
// separators, e.g. FormatAmount(1234.5, "USD") == "$1,234.50". Unknown
// currency codes are used as a prefix verbatim.
func FormatAmount(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	v := SafeFloat(amount)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, groupThousands(whole), cents)
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
