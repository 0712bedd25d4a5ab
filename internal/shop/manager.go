// Package shop is the cart and session state manager behind every storefront
// page. A Manager belongs to one browsing context for the length of one page
// and is not safe for concurrent use.
package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"grocer-be/internal/cart"
	"grocer-be/internal/logger"
	"grocer-be/internal/metrics"
	"grocer-be/internal/notify"
	"grocer-be/internal/order"
	"grocer-be/internal/storage"
	"grocer-be/internal/user"
	"grocer-be/internal/view"
)

// OrderNumbers hands out order numbers.
type OrderNumbers interface {
	Next() string
}

type Deps struct {
	Store     storage.Store
	Identity  user.IdentityProvider
	Notifier  notify.Notifier
	Navigator Navigator
	Numbers   OrderNumbers
	Clock     clock.Clock
	Metrics   *metrics.Registry

	// NavigationDelay is how long delayed navigations wait. Zero means
	// DefaultNavigationDelay.
	NavigationDelay time.Duration
}

type Manager struct {
	target    view.Target
	mode      view.Mode
	store     storage.Store
	identity  user.IdentityProvider
	notifier  notify.Notifier
	navigator Navigator
	numbers   OrderNumbers
	clock     clock.Clock
	metrics   *metrics.Registry
	navDelay  time.Duration

	cart    *cart.Cart
	session *user.Session
	form    checkoutState
	page    *view.Page
}

// New builds the manager for the page at target, loading the cart and the
// session from the store and rendering the panels of the page's mode.
func New(ctx context.Context, target view.Target, d Deps) (*Manager, error) {
	if d.Store == nil {
		return nil, ErrNoStore
	}
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.Identity == nil {
		d.Identity = user.NewStubProvider()
	}
	if d.Numbers == nil {
		d.Numbers = order.NewNumberGenerator(d.Clock.Now)
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewRegistry()
	}
	if d.NavigationDelay <= 0 {
		d.NavigationDelay = DefaultNavigationDelay
	}

	m := &Manager{
		target:    target,
		mode:      target.Mode(),
		store:     d.Store,
		identity:  d.Identity,
		notifier:  d.Notifier,
		navigator: d.Navigator,
		numbers:   d.Numbers,
		clock:     d.Clock,
		metrics:   d.Metrics,
		navDelay:  d.NavigationDelay,
		page:      view.NewPage(target),
	}

	if err := m.loadCart(ctx); err != nil {
		return nil, err
	}
	if err := m.loadSession(ctx); err != nil {
		return nil, err
	}

	m.renderNav()
	m.Render(ctx)
	return m, nil
}

func (m *Manager) Mode() view.Mode { return m.mode }

// View is the page as last rendered.
func (m *Manager) View() *view.Page { return m.page }

// Items returns a copy of the cart lines.
func (m *Manager) Items() []cart.LineItem { return m.cart.Items() }

func (m *Manager) Session() (user.Session, bool) {
	if m.session == nil {
		return user.Session{}, false
	}
	return *m.session, true
}

func (m *Manager) LoggedIn() bool { return m.session != nil }

func (m *Manager) log(ctx context.Context, method string) *zap.Logger {
	return logger.FromCtx(ctx).With(
		zap.String("layer", "manager"),
		zap.String("method", method),
		zap.String("mode", string(m.mode)),
	)
}

func (m *Manager) notify(ctx context.Context, message string) {
	if m.notifier != nil {
		m.notifier.Notify(ctx, message)
	}
}

func (m *Manager) navigate(ctx context.Context, to view.Target, delayed bool) {
	if m.navigator == nil {
		return
	}
	var after time.Duration
	if delayed {
		after = m.navDelay
	}
	m.navigator.Navigate(ctx, to, after)
}

// read decodes key into dst. Absent and unreadable values both report false;
// unreadable ones are logged and counted. Only store failures are returned.
func (m *Manager) read(ctx context.Context, key string, dst any) (bool, error) {
	return m.decoded(ctx, key, storage.GetJSON(ctx, m.store, key, dst))
}

// take is read followed by a delete of key whenever something was stored
// under it, readable or not.
func (m *Manager) take(ctx context.Context, key string, dst any) (bool, error) {
	err := storage.GetJSON(ctx, m.store, key, dst)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	ok, err := m.decoded(ctx, key, err)
	if err != nil {
		return false, err
	}
	if err := m.remove(ctx, key); err != nil {
		return false, err
	}
	return ok, nil
}

func (m *Manager) decoded(ctx context.Context, key string, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	case errors.Is(err, storage.ErrCorrupt):
		m.metrics.ParseFailures.Inc()
		m.log(ctx, "read").Warn("discarding unreadable stored value",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, nil
	default:
		m.log(ctx, "read").Error("store read failed", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("read %s: %w", key, err)
	}
}

func (m *Manager) write(ctx context.Context, key string, v any) error {
	if err := storage.SetJSON(ctx, m.store, key, v); err != nil {
		m.log(ctx, "write").Error("store write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (m *Manager) remove(ctx context.Context, key string) error {
	if err := m.store.Delete(ctx, key); err != nil {
		m.log(ctx, "remove").Error("store delete failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// storedValue is the raw value of a key, kept to undo a multi-key update.
type storedValue struct {
	key string
	raw []byte
	ok  bool
}

func (m *Manager) snapshot(ctx context.Context, keys ...string) ([]storedValue, error) {
	out := make([]storedValue, 0, len(keys))
	for _, k := range keys {
		raw, err := m.store.Get(ctx, k)
		switch {
		case err == nil:
			out = append(out, storedValue{key: k, raw: raw, ok: true})
		case errors.Is(err, storage.ErrNotFound):
			out = append(out, storedValue{key: k})
		default:
			m.log(ctx, "snapshot").Error("store read failed", zap.String("key", k), zap.Error(err))
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
	}
	return out, nil
}

// restore puts every key of snap back as it was. Failures are only logged.
func (m *Manager) restore(ctx context.Context, snap []storedValue) {
	for _, v := range snap {
		var err error
		if v.ok {
			err = m.store.Set(ctx, v.key, v.raw)
		} else {
			err = m.store.Delete(ctx, v.key)
		}
		if err != nil {
			m.log(ctx, "restore").Error("store rollback failed", zap.String("key", v.key), zap.Error(err))
		}
	}
}

func (m *Manager) loadCart(ctx context.Context) error {
	var items []cart.LineItem
	ok, err := m.read(ctx, KeyCart, &items)
	if err != nil {
		return err
	}
	if !ok {
		items = nil
	}
	m.cart = cart.FromItems(items)
	return nil
}

func (m *Manager) saveCart(ctx context.Context) error {
	return m.write(ctx, KeyCart, m.cart.Items())
}

func (m *Manager) loadSession(ctx context.Context) error {
	var s *user.Session
	ok, err := m.read(ctx, KeyUserData, &s)
	if err != nil {
		return err
	}
	if ok && s != nil {
		m.session = s
	}
	return nil
}

func (m *Manager) lastOrder(ctx context.Context) (*order.Order, error) {
	var o order.Order
	ok, err := m.read(ctx, KeyLastOrder, &o)
	if err != nil || !ok || o.OrderNumber == "" {
		return nil, err
	}
	return &o, nil
}

func (m *Manager) history(ctx context.Context) ([]order.Order, error) {
	var h []order.Order
	ok, err := m.read(ctx, KeyOrderHistory, &h)
	if err != nil || !ok {
		return nil, err
	}
	return h, nil
}
