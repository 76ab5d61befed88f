package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/ledger"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

func order(id string) model.Order {
	return model.Order{
		ID:     id,
		Status: model.OrderProcessing,
		Total:  999,
		Items: []model.CartItem{
			{ID: "1-M-Black", ProductID: "1", Name: "Gojo", Price: 999, Quantity: 1, Size: "M", Color: "Black"},
		},
	}
}

func TestLedger_Add(t *testing.T) {
	t.Run("prepends", func(t *testing.T) {
		l := ledger.New()
		l.Add(order("PI-1"))
		l.Add(order("PI-2"))
		l.Add(order("PI-3"))

		got := l.Orders()
		require.Len(t, got, 3)
		assert.Equal(t, "PI-3", got[0].ID)
		assert.Equal(t, "PI-1", got[2].ID)

		latest, ok := l.Latest()
		require.True(t, ok)
		assert.Equal(t, "PI-3", latest.ID)
	})

	t.Run("no_dedup", func(t *testing.T) {
		l := ledger.New()
		l.Add(order("PI-7"))
		l.Add(order("PI-7"))
		assert.Equal(t, 2, l.Len())
	})

	t.Run("stored_order_does_not_alias_input", func(t *testing.T) {
		l := ledger.New()
		o := order("PI-9")
		l.Add(o)
		o.Items[0].Quantity = 99

		got, ok := l.Get("PI-9")
		require.True(t, ok)
		assert.Equal(t, 1, got.Items[0].Quantity)
	})

	t.Run("reads_are_copies", func(t *testing.T) {
		l := ledger.New()
		l.Add(order("PI-10"))
		l.Orders()[0].Items[0].Price = 1

		got, _ := l.Latest()
		assert.Equal(t, int64(999), got.Items[0].Price)
	})
}

func TestLedger_Empty(t *testing.T) {
	l := ledger.New()
	_, ok := l.Latest()
	assert.False(t, ok)
	_, ok = l.Get("PI-1")
	assert.False(t, ok)
	assert.Empty(t, l.Orders())
}
