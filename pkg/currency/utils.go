package currency

import (
	"strconv"
	"strings"
)

// FormatUSD renders a dollar amount with a thousands separator for the
// console tables, e.g. 1234567.8 -> "$1,234,567.80".
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + groupThousands(strconv.FormatFloat(amount, 'f', 2, 64))
}

// FormatChange renders a signed delta, keeping the plus sign so balance
// adjustments read unambiguously in the action summary.
func FormatChange(delta float64) string {
	if delta >= 0 {
		return "+" + FormatUSD(delta)
	}
	return FormatUSD(delta)
}

// FormatRate renders a fractional rate as a percentage, e.g. 0.1 -> "10%".
func FormatRate(rate float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(rate*100, 'f', 2, 64), ".00") + "%"
}

func groupThousands(s string) string {
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	if len(whole) <= 3 {
		return whole + frac
	}

	var b strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String() + frac
}
