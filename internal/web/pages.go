package web

import (
	"net/http"
	"net/url"

	"grocer-be/internal/catalog"
	"grocer-be/internal/view"
)

// staticPage renders a page whose manager needs nothing beyond loading.
func (s *Server) staticPage(target view.Target) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ex, ok := s.begin(w, r, target)
		if !ok {
			return
		}
		s.finish(w, r, ex, nil, "")
	}
}

func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetHome)
	if !ok {
		return
	}
	s.finish(w, r, ex, nil, "")
}

// withCatalog fills the product grid of the home page, filtered by ?q=.
func (s *Server) withCatalog(r *http.Request, page *view.Page) error {
	if page.Target != view.TargetHome || page.Catalog != nil {
		return nil
	}
	products, err := s.catalog.List(r.Context())
	if err != nil {
		return err
	}
	q := r.URL.Query().Get("q")
	page.Catalog = &view.Catalog{Query: q, Products: catalog.Filter(products, q)}
	return nil
}

func (s *Server) confirmationPage(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetConfirmation)
	if !ok {
		return
	}
	_, err := ex.m.Confirmation(r.Context())
	s.finish(w, r, ex, err, "")
}

// trackingPage tracks ?orderNumber= when given, otherwise the number handed
// over by the confirmation page.
func (s *Server) trackingPage(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetTracking)
	if !ok {
		return
	}

	var err error
	if number := r.URL.Query().Get("orderNumber"); number != "" {
		_, err = ex.m.TrackOrder(r.Context(), number)
	} else {
		_, err = ex.m.LoadTracking(r.Context())
	}
	s.finish(w, r, ex, err, "")
}

// returnTarget is the page a cart action was submitted from: the "page" form
// value, else the referring path, else home.
func returnTarget(r *http.Request) view.Target {
	if t := targetFor(r.PostFormValue("page"), true); t != "" {
		return t
	}
	if ref, err := url.Parse(r.Referer()); err == nil {
		if t := targetFor(ref.Path, false); t != "" {
			return t
		}
	}
	return view.TargetHome
}

func targetFor(v string, byName bool) view.Target {
	if v == "" {
		return ""
	}
	for _, t := range view.Targets() {
		if (byName && string(t) == v) || (!byName && t.Path() == v) {
			return t
		}
	}
	return ""
}
