package finance

import "math"

// Converter converts between currencies through a common base. Rates are
// user-entered values relative to that base, so conversion is
// amount * rate[from] / rate[to].
type Converter struct {
	Rates map[string]float64
}

// Convert converts amount from one currency to another. A same-currency
// conversion returns the rounded input unchanged. A zero target rate is a
// degenerate configuration and yields 0 rather than an error, so one bad
// rate cannot take down every figure computed from it.
func (c Converter) Convert(amount float64, from, to string) float64 {
	if math.IsNaN(amount) {
		return 0
	}
	if from == to {
		return SafeFloat(amount)
	}

	fromRate := c.Rates[from]
	toRate := c.Rates[to]
	if toRate == 0 {
		return 0
	}

	inBase := amount * fromRate
	return SafeFloat(inBase / toRate)
}
