package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"grocer-be/internal/address"
	"grocer-be/internal/cart"
	"grocer-be/internal/order"
	"grocer-be/internal/payment"
	"grocer-be/internal/utils"
	"grocer-be/internal/view"
)

// CheckoutForm is a submitted checkout page. Shipping is free-form: every
// field is kept on the order, the shipping rules only check the known ones.
type CheckoutForm struct {
	Shipping       map[string]string
	PaymentMethod  string
	PaymentDetails map[string]string
}

// checkoutState is what the checkout panel redisplays after a rejected
// submission.
type checkoutState struct {
	form   CheckoutForm
	errors map[string]string
}

func (m *Manager) checkoutModel(lines []view.Line) *view.Checkout {
	t := cart.CheckoutTotals(m.cart)
	empty := m.cart.IsEmpty()

	c := &view.Checkout{
		Lines:              lines,
		Count:              t.Items,
		Subtotal:           t.Subtotal,
		Shipping:           t.Shipping,
		GrandTotal:         t.GrandTotal,
		FreeShipping:       t.Shipping.IsZero(),
		PlaceOrderDisabled: empty,
	}

	for _, r := range address.ShippingFields {
		c.ShippingForm = append(c.ShippingForm, view.Field{
			Key:      r.Key,
			Label:    r.Label,
			Value:    m.form.form.Shipping[r.Key],
			Error:    m.form.errors[r.Key],
			Required: strings.HasPrefix(r.Rule, "required"),
		})
	}

	selected := payment.Method(strings.ToLower(strings.TrimSpace(m.form.form.PaymentMethod)))
	for _, method := range payment.Methods() {
		opt := view.PaymentOption{
			Method:   method,
			Label:    method.Label(),
			Selected: method == selected,
		}
		for _, r := range method.Fields() {
			f := view.Field{Key: r.Key, Label: r.Label, Required: true}
			if opt.Selected {
				f.Value = m.form.form.PaymentDetails[r.Key]
				f.Error = m.form.errors[r.Key]
			}
			opt.Fields = append(opt.Fields, f)
		}
		c.Payments = append(c.Payments, opt)
	}
	return c
}

// reject records a refused submission for redisplay and re-renders.
func (m *Manager) reject(ctx context.Context, form CheckoutForm, fieldErrs map[string]string) {
	m.form = checkoutState{form: form, errors: fieldErrs}
	m.Render(ctx)
}

// ProceedToCheckout sends the visitor to checkout when the cart has items
// and a session is active.
func (m *Manager) ProceedToCheckout(ctx context.Context) error {
	if m.cart.IsEmpty() {
		m.notify(ctx, MsgEmptyCart)
		return ErrEmptyCart
	}
	if m.session == nil {
		m.notify(ctx, MsgLoginToCheckout)
		m.navigate(ctx, view.TargetLogin, true)
		return ErrLoginRequired
	}
	m.navigate(ctx, view.TargetCheckout, false)
	return nil
}

// PlaceOrder checks, in order, the session, the cart, the payment method, the
// payment details and the shipping fields. A refused order changes nothing in
// the store. A placed one becomes lastOrder, joins the order history when a
// session is active and empties the cart.
func (m *Manager) PlaceOrder(ctx context.Context, form CheckoutForm) (order.Order, error) {
	log := m.log(ctx, "PlaceOrder")

	if m.session == nil {
		m.notify(ctx, MsgLoginToPurchase)
		m.navigate(ctx, view.TargetLogin, true)
		return order.Order{}, ErrLoginRequired
	}

	if m.cart.IsEmpty() {
		m.notify(ctx, MsgEmptyCart)
		return order.Order{}, ErrEmptyCart
	}

	method, err := payment.ParseMethod(form.PaymentMethod)
	if err != nil {
		m.notify(ctx, MsgSelectPayment)
		m.reject(ctx, form, nil)
		return order.Order{}, fmt.Errorf("%w: %w", ErrNoPaymentMethod, err)
	}

	payInfo, err := payment.Collect(method, form.PaymentDetails)
	if err != nil {
		m.reject(ctx, form, fieldMessages(err))
		log.Info("payment details rejected", zap.String("payment_method", string(method)))
		return order.Order{}, fmt.Errorf("%w: %w", ErrInvalidPayment, err)
	}

	shipping, err := address.ValidateShipping(form.Shipping)
	if err != nil {
		m.notify(ctx, MsgShippingRequired)
		m.reject(ctx, form, fieldMessages(err))
		log.Info("shipping details rejected")
		return order.Order{}, fmt.Errorf("%w: %w", ErrInvalidShipping, err)
	}

	var userID *string
	if m.session.ID != "" {
		id := m.session.ID
		userID = &id
	}

	o := order.New(order.NewOrderParams{
		Items:    m.cart.Items(),
		Shipping: shipping,
		Payment:  payInfo,
		Total:    m.cart.Subtotal(),
		UserID:   userID,
		Number:   m.numbers.Next(),
		PlacedAt: m.clock.Now(),
	})

	history, err := m.history(ctx)
	if err != nil {
		return order.Order{}, err
	}

	// the order lands in all three keys or in none
	snap, err := m.snapshot(ctx, KeyLastOrder, KeyOrderHistory, KeyCart)
	if err != nil {
		return order.Order{}, err
	}
	writes := []struct {
		key   string
		value any
	}{
		{KeyLastOrder, o},
		{KeyOrderHistory, append(history, o)},
		{KeyCart, []cart.LineItem{}},
	}
	for _, w := range writes {
		if err := m.write(ctx, w.key, w.value); err != nil {
			m.restore(ctx, snap)
			return order.Order{}, err
		}
	}

	m.cart.Clear()
	m.form = checkoutState{}
	m.Render(ctx)
	m.metrics.OrdersPlaced.Inc()
	m.notify(ctx, fmt.Sprintf(MsgOrderPlaced, o.OrderNumber))
	m.navigate(ctx, view.TargetConfirmation, true)

	log.Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.TotalAmount),
		zap.Int("items", o.ItemCount()),
	)
	return o, nil
}

func fieldMessages(err error) map[string]string {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages()
	}
	return nil
}
