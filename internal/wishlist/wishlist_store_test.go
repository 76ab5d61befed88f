package wishlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrivel962969-dotcom/Paperid/internal/wishlist"
)

func TestStore_Toggle(t *testing.T) {
	t.Run("add_then_remove", func(t *testing.T) {
		s := wishlist.NewStore()

		in, err := s.Toggle("1")
		require.NoError(t, err)
		assert.True(t, in)
		assert.True(t, s.Contains("1"))

		in, err = s.Toggle("1")
		require.NoError(t, err)
		assert.False(t, in)
		assert.False(t, s.Contains("1"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("double_toggle_restores_membership", func(t *testing.T) {
		s := wishlist.NewStore()
		_, _ = s.Toggle("3")

		for _, id := range []string{"3", "5"} {
			before := s.Contains(id)
			_, _ = s.Toggle(id)
			_, _ = s.Toggle(id)
			assert.Equal(t, before, s.Contains(id), id)
		}
	})

	t.Run("error_empty_id", func(t *testing.T) {
		s := wishlist.NewStore()
		_, err := s.Toggle("  ")
		assert.ErrorIs(t, err, wishlist.ErrInvalidProductID)
		assert.Equal(t, 0, s.Len())
	})
}

func TestStore_Items(t *testing.T) {
	s := wishlist.NewStore()
	for _, id := range []string{"6", "2", "4"} {
		_, _ = s.Toggle(id)
	}
	assert.Equal(t, []string{"2", "4", "6"}, s.Items())
}
