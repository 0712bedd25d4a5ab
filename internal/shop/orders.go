package shop

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"grocer-be/internal/order"
	"grocer-be/internal/view"
)

// Confirmation renders lastOrder. Without one the visitor is sent home.
func (m *Manager) Confirmation(ctx context.Context) (*view.Confirmation, error) {
	last, err := m.lastOrder(ctx)
	if err != nil {
		return nil, err
	}
	if last == nil {
		m.navigate(ctx, view.TargetHome, false)
		return nil, ErrNoLastOrder
	}

	c := view.ConfirmationFor(*last)
	if m.mode.Has(view.PanelConfirmation) {
		m.page.Confirmation = c
	}
	return c, nil
}

// TrackFromConfirmation hands lastOrder's number to the tracking page.
func (m *Manager) TrackFromConfirmation(ctx context.Context) error {
	last, err := m.lastOrder(ctx)
	if err != nil {
		return err
	}
	if last == nil {
		m.navigate(ctx, view.TargetHome, false)
		return ErrNoLastOrder
	}

	if err := m.write(ctx, KeyTrackOrderNumber, last.OrderNumber); err != nil {
		return err
	}
	m.navigate(ctx, view.TargetTracking, false)
	return nil
}

// LoadTracking consumes a pending trackOrderNumber, if any, and tracks it.
func (m *Manager) LoadTracking(ctx context.Context) (*view.Tracking, error) {
	var number string
	ok, err := m.take(ctx, KeyTrackOrderNumber, &number)
	if err != nil {
		return nil, err
	}

	if !ok || strings.TrimSpace(number) == "" {
		t := &view.Tracking{}
		if m.mode.Has(view.PanelTracking) {
			m.page.Tracking = t
		}
		return t, nil
	}
	return m.TrackOrder(ctx, number)
}

// TrackOrder matches number against lastOrder and then, only with an active
// session, against the order history.
func (m *Manager) TrackOrder(ctx context.Context, number string) (*view.Tracking, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		m.notify(ctx, MsgEnterOrderNumber)
		return nil, ErrOrderNumberRequired
	}

	last, err := m.lastOrder(ctx)
	if err != nil {
		return nil, err
	}

	var history []order.Order
	if m.session != nil {
		if history, err = m.history(ctx); err != nil {
			return nil, err
		}
	}

	var t *view.Tracking
	o, found := order.Find(last, history, number, m.session != nil)
	if found {
		t = view.TrackingFor(number, o)
	} else {
		t = view.TrackingNotFound(number)
	}

	if m.mode.Has(view.PanelTracking) {
		m.page.Tracking = t
	}

	m.log(ctx, "TrackOrder").Info("order lookup",
		zap.String("order_number", number),
		zap.Bool("found", found),
	)
	return t, nil
}
