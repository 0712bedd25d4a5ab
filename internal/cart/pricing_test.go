package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	tests := []struct {
		subtotal string
		want     string
	}{
		{"0", "5"},
		{"45", "5"},
		{"49.99", "5"},
		{"50", "0"},
		{"120.5", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			got := ShippingFee(decimal.RequireFromString(tt.subtotal))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestTotals(t *testing.T) {
	// A1 10x2 + B2 25x1 = 45, below the free shipping threshold.
	c := FromItems([]LineItem{
		{ID: "A1", Price: decimal.NewFromInt(10), Quantity: 2},
		{ID: "B2", Price: decimal.NewFromInt(25), Quantity: 1},
	})

	t.Run("Checkout", func(t *testing.T) {
		tot := CheckoutTotals(c)
		assert.Equal(t, 3, tot.Items)
		assert.Equal(t, "45.00", tot.Subtotal.StringFixed(2))
		assert.Equal(t, "5.00", tot.Shipping.StringFixed(2))
		assert.Equal(t, "50.00", tot.GrandTotal.StringFixed(2))
	})

	t.Run("Cart page ignores shipping", func(t *testing.T) {
		tot := CartPageTotals(c)
		assert.Equal(t, "45.00", tot.Subtotal.StringFixed(2))
		assert.Equal(t, "45.00", tot.GrandTotal.StringFixed(2))
	})

	t.Run("Free shipping at threshold", func(t *testing.T) {
		c2 := FromItems([]LineItem{{ID: "X", Price: decimal.NewFromInt(50), Quantity: 1}})
		tot := CheckoutTotals(c2)
		assert.True(t, tot.Shipping.IsZero())
		assert.Equal(t, "50.00", tot.GrandTotal.StringFixed(2))
	})
}
