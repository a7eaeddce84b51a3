package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatPercent renders 12.3456 as "12.35%".
func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// formatCurrency renders 1234567.891 as "$1,234,567.89".
func formatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 { // rounding carried into the next dollar
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

// formatCount renders 1234567 as "1,234,567".
func formatCount(n int) string {
	sign := ""
	v := int64(n)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + groupThousands(v)
}

func groupThousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
