// Package web serves the storefront: server-rendered pages backed by one
// shop.Manager per request, the product listing API and static assets.
package web

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"grocer-be/internal/auth"
	"grocer-be/internal/catalog"
	"grocer-be/internal/logger"
	"grocer-be/internal/metrics"
	"grocer-be/internal/middleware"
	"grocer-be/internal/notify"
	"grocer-be/internal/shop"
	"grocer-be/internal/storage"
	"grocer-be/internal/user"
	"grocer-be/internal/view"
)

type Deps struct {
	Store    storage.Store
	Catalog  catalog.Repository
	Renderer *view.Renderer
	Tokens   *auth.VisitorTokens
	Limiter  *middleware.RateLimiter
	Metrics  *metrics.Registry
	Identity user.IdentityProvider
	Numbers  shop.OrderNumbers
	Clock    clock.Clock

	StaticDir       string
	AllowedOrigin   string
	NavigationDelay time.Duration
	Timing          notify.Timing
}

type Server struct {
	store    storage.Store
	catalog  catalog.Repository
	renderer *view.Renderer
	tokens   *auth.VisitorTokens
	limiter  *middleware.RateLimiter
	metrics  *metrics.Registry
	identity user.IdentityProvider
	numbers  shop.OrderNumbers
	clock    clock.Clock

	staticDir string
	origin    string
	navDelay  time.Duration
	timing    notify.Timing
}

func NewServer(d Deps) *Server {
	if d.Metrics == nil {
		d.Metrics = metrics.NewRegistry()
	}
	if d.Limiter == nil {
		d.Limiter = middleware.NewRateLimiter()
	}
	if d.Clock == nil {
		d.Clock = clock.New()
	}
	if d.Timing == (notify.Timing{}) {
		d.Timing = notify.DefaultTiming()
	}
	if d.AllowedOrigin == "" {
		d.AllowedOrigin = "*"
	}

	return &Server{
		store:     storage.WithMetrics(d.Store, d.Metrics),
		catalog:   d.Catalog,
		renderer:  d.Renderer,
		tokens:    d.Tokens,
		limiter:   d.Limiter,
		metrics:   d.Metrics,
		identity:  d.Identity,
		numbers:   d.Numbers,
		clock:     d.Clock,
		staticDir: d.StaticDir,
		origin:    d.AllowedOrigin,
		navDelay:  d.NavigationDelay,
		timing:    d.Timing,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(s.origin))
		r.Get("/products", s.listProducts)
	})

	if s.staticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Visitor(s.tokens))
		r.Use(s.limiter.Middleware)

		r.Get(view.TargetHome.Path(), s.homePage)
		r.Get(view.TargetLogin.Path(), s.staticPage(view.TargetLogin))
		r.Get(view.TargetSignup.Path(), s.staticPage(view.TargetSignup))
		r.Get(view.TargetCart.Path(), s.staticPage(view.TargetCart))
		r.Get(view.TargetCheckout.Path(), s.staticPage(view.TargetCheckout))
		r.Get(view.TargetConfirmation.Path(), s.confirmationPage)
		r.Get(view.TargetTracking.Path(), s.trackingPage)

		r.Post("/cart/add", s.addToCart)
		r.Post("/cart/remove", s.removeFromCart)
		r.Post("/cart/quantity", s.updateQuantity)
		r.Post("/checkout/start", s.startCheckout)
		r.Post(view.TargetCheckout.Path(), s.placeOrder)
		r.Post(view.TargetLogin.Path(), s.login)
		r.Post(view.TargetSignup.Path(), s.signup)
		r.Post("/logout", s.logout)
		r.Post(view.TargetConfirmation.Path()+"/track", s.trackFromConfirmation)
		r.Post(view.TargetTracking.Path(), s.trackOrder)
	})

	return r
}
