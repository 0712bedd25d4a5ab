package catalog

import (
	"github.com/shopspring/decimal"

	"grocer-be/internal/cart"
)

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

// LineItem is the cart entry an add-to-cart click on this product produces.
func (p Product) LineItem() cart.LineItem {
	return cart.LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	}
}
