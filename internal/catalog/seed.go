package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultProducts is the demo grocery shelf.
func DefaultProducts() []Product {
	return []Product{
		{ID: "fr-001", Name: "Fresh Bananas", Price: price("12.50"), Image: "/static/img/bananas.jpg", Category: "Fruits"},
		{ID: "fr-002", Name: "Pineapple", Price: price("15.00"), Image: "/static/img/pineapple.jpg", Category: "Fruits"},
		{ID: "fr-003", Name: "Watermelon", Price: price("25.00"), Image: "/static/img/watermelon.jpg", Category: "Fruits"},
		{ID: "vg-001", Name: "Tomatoes (1kg)", Price: price("18.00"), Image: "/static/img/tomatoes.jpg", Category: "Vegetables"},
		{ID: "vg-002", Name: "Red Onions (1kg)", Price: price("14.00"), Image: "/static/img/onions.jpg", Category: "Vegetables"},
		{ID: "vg-003", Name: "Garden Eggs", Price: price("9.50"), Image: "/static/img/garden-eggs.jpg", Category: "Vegetables"},
		{ID: "st-001", Name: "Jasmine Rice (5kg)", Price: price("95.00"), Image: "/static/img/rice.jpg", Category: "Staples"},
		{ID: "st-002", Name: "Gari (2kg)", Price: price("22.00"), Image: "/static/img/gari.jpg", Category: "Staples"},
		{ID: "dr-001", Name: "Fresh Milk (1L)", Price: price("16.00"), Image: "/static/img/milk.jpg", Category: "Dairy"},
		{ID: "dr-002", Name: "Farm Eggs (crate)", Price: price("65.00"), Image: "/static/img/eggs.jpg", Category: "Dairy"},
	}
}
