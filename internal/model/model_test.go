package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
)

func TestVariantKey(t *testing.T) {
	assert.Equal(t, "1-M-Black", model.VariantKey("1", "M", "Black"))
	assert.Equal(t, "2-XL-Deep Blue", model.VariantKey("2", "XL", "Deep Blue"))
}

func TestNewCartItem(t *testing.T) {
	p := model.Product{
		ID: "1", Name: "Gojo", Price: 999,
		Images: []string{"a.jpg", "b.jpg"}, Colors: []string{"Black", "White"},
	}

	t.Run("defaults_color_and_image", func(t *testing.T) {
		it := model.NewCartItem(p, "M", "", 2)
		assert.Equal(t, "1-M-Black", it.ID)
		assert.Equal(t, "Black", it.Color)
		assert.Equal(t, "a.jpg", it.Image)
		assert.Equal(t, int64(1998), it.Subtotal())
	})

	t.Run("explicit_color", func(t *testing.T) {
		it := model.NewCartItem(p, "L", "White", 1)
		assert.Equal(t, "1-L-White", it.ID)
	})
}

func TestCartItem_Clone(t *testing.T) {
	it := model.CartItem{ID: "x", Customization: &model.Customization{Text: "A", TextPosition: &model.Position{X: 1}}}
	cp := it.Clone()
	cp.Customization.Text = "B"
	cp.Customization.TextPosition.X = 9
	assert.Equal(t, "A", it.Customization.Text)
	assert.Equal(t, float64(1), it.Customization.TextPosition.X)
}

func TestProfileUpdate_Apply(t *testing.T) {
	name := "Aarav"
	u := model.User{ID: "1", Name: "Guest", Email: "a@b.c", Phone: "1"}
	got := model.ProfileUpdate{Name: &name}.Apply(u)
	assert.Equal(t, "Aarav", got.Name)
	assert.Equal(t, "1", got.Phone)
	assert.Equal(t, "a@b.c", got.Email)
	assert.True(t, model.ProfileUpdate{}.Empty())
}

func TestPaymentMethod_Validate(t *testing.T) {
	assert.NoError(t, model.NewUPIPayment("a@b", "x").Validate())
	assert.NoError(t, model.NewCardPayment("4242", "Visa").Validate())
	assert.ErrorIs(t, model.PaymentMethod{Kind: model.PaymentUPI}.Validate(), model.ErrInvalidPaymentVariant)
	assert.ErrorIs(t, model.PaymentMethod{Kind: model.PaymentCard, Card: &model.Card{}, UPI: &model.UPI{}}.Validate(), model.ErrInvalidPaymentVariant)
	assert.Error(t, model.PaymentMethod{Kind: "CASH"}.Validate())
}

func TestFormatOrderDate(t *testing.T) {
	d := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "16 Oct 2026", model.FormatOrderDate(d))
}

func TestProductFilter_Matches(t *testing.T) {
	p := model.Product{Category: model.CategoryAnime}
	var nilFilter *model.ProductFilter
	assert.True(t, nilFilter.Matches(p))
	assert.True(t, (&model.ProductFilter{Category: model.CategoryAll}).Matches(p))
	assert.False(t, (&model.ProductFilter{Category: model.CategoryCricket}).Matches(p))
}
