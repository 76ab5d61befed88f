package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := map[int64]string{
		0:       "₹0",
		999:     "₹999",
		1499:    "₹1,499",
		129999:  "₹1,29,999",
		1234567: "₹12,34,567",
		-2500:   "-₹2,500",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.Format(in))
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "₹1,498.50", money.FormatDecimal(decimal.RequireFromString("1498.5")))
	assert.Equal(t, "₹0.00", money.FormatDecimal(decimal.Zero))
}

func TestSum(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, int64(0), money.Sum())
	})

	t.Run("multiple_lines", func(t *testing.T) {
		got := money.Sum(money.Line{Price: 999, Quantity: 2}, money.Line{Price: 899, Quantity: 1})
		assert.Equal(t, int64(2897), got)
	})
}
