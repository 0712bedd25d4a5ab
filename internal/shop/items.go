package shop

import (
	"context"

	"go.uber.org/zap"

	"grocer-be/internal/cart"
	"grocer-be/internal/view"
)

// AddItem bumps the quantity of a line already in the cart or appends item
// with quantity one.
func (m *Manager) AddItem(ctx context.Context, item cart.LineItem) error {
	line, err := m.cart.Add(item)
	if err != nil {
		return err
	}

	m.Render(ctx)
	if err := m.saveCart(ctx); err != nil {
		return err
	}
	m.notify(ctx, MsgItemAdded)

	m.log(ctx, "AddItem").Info("item added",
		zap.String("item_id", line.ID),
		zap.Int("quantity", line.Quantity),
	)
	return nil
}

// RemoveItem drops the line with id. The cart is re-rendered and saved even
// when no such line exists.
func (m *Manager) RemoveItem(ctx context.Context, id string) error {
	removed := m.cart.Remove(id)

	m.Render(ctx)
	if err := m.saveCart(ctx); err != nil {
		return err
	}
	m.notify(ctx, MsgItemRemoved)

	m.log(ctx, "RemoveItem").Info("item removed",
		zap.String("item_id", id),
		zap.Bool("was_present", removed),
	)
	return nil
}

// SetQuantity ignores unknown ids. Quantities at or below zero remove the line.
func (m *Manager) SetQuantity(ctx context.Context, id string, quantity int) error {
	if _, ok := m.cart.Find(id); !ok {
		return nil
	}
	if quantity <= 0 {
		return m.RemoveItem(ctx, id)
	}

	m.cart.SetQuantity(id, quantity)
	m.Render(ctx)
	return m.saveCart(ctx)
}

// Render rebuilds the cart panels the mode carries from the current cart.
func (m *Manager) Render(_ context.Context) {
	lines := view.Lines(m.cart.Items())
	empty := m.cart.IsEmpty()

	if m.mode.Has(view.PanelDropdown) {
		m.page.Dropdown = &view.Dropdown{
			Lines:            lines,
			Count:            m.cart.Count(),
			Subtotal:         m.cart.Subtotal(),
			Empty:            empty,
			CheckoutDisabled: empty,
		}
	}

	if m.mode.Has(view.PanelCart) {
		t := cart.CartPageTotals(m.cart)
		m.page.CartPage = &view.CartPage{
			Lines:            lines,
			Count:            t.Items,
			Subtotal:         t.Subtotal,
			GrandTotal:       t.GrandTotal,
			Empty:            empty,
			CheckoutDisabled: empty,
		}
	}

	if m.mode.Has(view.PanelCheckout) {
		m.page.Checkout = m.checkoutModel(lines)
	}
}

func (m *Manager) renderNav() {
	if !m.mode.Has(view.PanelNav) {
		return
	}
	nav := &view.Nav{}
	if m.session != nil {
		nav.LoggedIn = true
		nav.UserName = m.session.Name
	}
	m.page.Nav = nav
}
