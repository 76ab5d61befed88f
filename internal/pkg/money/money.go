// Package money formats whole-rupee amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const rupee = "₹"

// Format renders an amount in Indian digit grouping, e.g. 129999 -> "₹1,29,999".
func Format(amount int64) string {
	d := decimal.NewFromInt(amount)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + rupee + groupIndian(d.String())
}

// FormatDecimal renders a fractional amount with two places, e.g. "₹1,498.50".
func FormatDecimal(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	s := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + rupee + groupIndian(whole) + "." + frac
}

// Sum adds price*quantity for each line using exact decimal arithmetic.
func Sum(lines ...Line) int64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromInt(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.IntPart()
}

type Line struct {
	Price    int64
	Quantity int
}

// groupIndian groups the last three digits, then pairs: 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
