package web

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"grocer-be/internal/logger"
	"grocer-be/internal/middleware"
	"grocer-be/internal/notify"
	"grocer-be/internal/schedule"
	"grocer-be/internal/shop"
	"grocer-be/internal/storage"
	"grocer-be/internal/view"
)

// keyNotifications holds messages raised by a request that answered with a
// redirect, shown by the next page rendered for the visitor.
const keyNotifications = "notifications"

// exchange is the manager serving one request, with the visitor's store and
// the scheduler its toasts and delayed navigations run on. The scheduler is
// stopped when the response is written.
type exchange struct {
	m      *shop.Manager
	store  storage.Store
	sched  *schedule.Scheduler
	toasts *notify.Tray
	nav    *shop.ScheduledNavigator
}

func (s *Server) begin(w http.ResponseWriter, r *http.Request, target view.Target) (*exchange, bool) {
	ctx := r.Context()
	visitorID, _ := middleware.VisitorIDFromContext(ctx)

	sched := schedule.New(s.clock)
	ex := &exchange{
		store:  storage.Scope(s.store, "visitor:"+visitorID),
		sched:  sched,
		toasts: notify.NewTray(sched, s.timing),
		nav:    shop.NewScheduledNavigator(sched, target),
	}

	m, err := shop.New(ctx, target, shop.Deps{
		Store:           ex.store,
		Identity:        s.identity,
		Notifier:        ex.toasts,
		Navigator:       ex.nav,
		Numbers:         s.numbers,
		Clock:           s.clock,
		Metrics:         s.metrics,
		NavigationDelay: s.navDelay,
	})
	if err != nil {
		sched.Stop()
		s.fail(w, r, err)
		return nil, false
	}
	ex.m = m
	return ex, true
}

// finish answers a request after its operation ran. Immediate navigation
// becomes a redirect; back, when set, redirects there unless a delayed
// navigation is pending; otherwise the manager's page is rendered.
func (s *Server) finish(w http.ResponseWriter, r *http.Request, ex *exchange, err error, back view.Target) {
	defer ex.sched.Stop()

	if err != nil && !shop.IsRejection(err) {
		s.fail(w, r, err)
		return
	}

	switch {
	case ex.nav.Moved():
		s.redirectTo(w, r, ex, ex.nav.Current().Path())
	case back != "" && !ex.nav.Pending():
		s.redirectTo(w, r, ex, back.Path())
	default:
		s.render(w, r, ex)
	}
}

func (s *Server) redirectTo(w http.ResponseWriter, r *http.Request, ex *exchange, path string) {
	ctx := r.Context()

	pending := append(s.takeFlash(ctx, ex.store), ex.toasts.Drain()...)
	if len(pending) > 0 {
		if err := storage.SetJSON(ctx, ex.store, keyNotifications, pending); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, ex *exchange) {
	ctx := r.Context()

	page := ex.m.View()
	if err := s.withCatalog(r, page); err != nil {
		s.fail(w, r, err)
		return
	}
	page.Timing = s.timing
	page.Notifications = append(s.takeFlash(ctx, ex.store), ex.toasts.Messages()...)

	if to, due, ok := ex.nav.Upcoming(); ok {
		after := due.Sub(ex.sched.Now())
		page.Refresh = &view.Refresh{After: after, To: to.Path()}
		secs := int(math.Ceil(after.Seconds()))
		w.Header().Set("Refresh", strconv.Itoa(secs)+"; url="+to.Path())
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// takeFlash reads and clears the pending notifications. Failures lose the
// messages and nothing else.
func (s *Server) takeFlash(ctx context.Context, store storage.Store) []string {
	var msgs []string
	err := storage.GetJSON(ctx, store, keyNotifications, &msgs)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("dropping pending notifications", zap.String("layer", "web"), zap.Error(err))
		msgs = nil
	}
	if err := store.Delete(ctx, keyNotifications); err != nil {
		logger.FromCtx(ctx).Warn("clear notifications failed", zap.String("layer", "web"), zap.Error(err))
	}
	return msgs
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("request failed",
		zap.String("layer", "web"),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
