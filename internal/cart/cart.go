package cart

import "github.com/shopspring/decimal"

// Cart is an ordered list of line items, in the order they were first added,
// holding at most one item per id.
type Cart struct {
	items []LineItem
}

// FromItems rebuilds a cart from persisted items. Items without a positive
// quantity count as one, and repeated ids are merged into the first entry.
func FromItems(items []LineItem) *Cart {
	c := &Cart{items: make([]LineItem, 0, len(items))}
	for _, it := range items {
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if i := c.index(it.ID); i >= 0 {
			c.items[i].Quantity += it.Quantity
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

func (c *Cart) index(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an item already in the cart, or appends item
// with quantity 1. It returns the resulting line.
func (c *Cart) Add(item LineItem) (LineItem, error) {
	if item.ID == "" {
		return LineItem{}, ErrInvalidItemID
	}
	if item.Price.IsNegative() {
		return LineItem{}, ErrInvalidPrice
	}

	if i := c.index(item.ID); i >= 0 {
		c.items[i].Quantity++
		return c.items[i], nil
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	return item, nil
}

// Remove drops the item with id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// SetQuantity sets the quantity in place. Negative values clamp to zero and
// zero removes the item.
func (c *Cart) SetQuantity(id string, quantity int) (found, removed bool) {
	i := c.index(id)
	if i < 0 {
		return false, false
	}
	if quantity <= 0 {
		c.Remove(id)
		return true, true
	}
	c.items[i].Quantity = quantity
	return true, false
}

func (c *Cart) Find(id string) (LineItem, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	return LineItem{}, false
}

// Items returns a copy of the lines, safe to snapshot into an order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// Count is the sum of quantities.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Total())
	}
	return sum
}
