package cart

import "github.com/shopspring/decimal"

var (
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.NewFromInt(5)
)

type Totals struct {
	Items      int
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ShippingFee is free from FreeShippingThreshold upward, FlatShippingFee below.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// CheckoutTotals applies the shipping rule.
func CheckoutTotals(c *Cart) Totals {
	sub := c.Subtotal()
	ship := ShippingFee(sub)
	return Totals{
		Items:      c.Count(),
		Subtotal:   sub,
		Shipping:   ship,
		GrandTotal: sub.Add(ship),
	}
}

// CartPageTotals reports the grand total as the subtotal; the cart page does
// not charge shipping.
func CartPageTotals(c *Cart) Totals {
	sub := c.Subtotal()
	return Totals{
		Items:      c.Count(),
		Subtotal:   sub,
		Shipping:   decimal.Zero,
		GrandTotal: sub,
	}
}
