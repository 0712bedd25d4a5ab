package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"grocer-be/internal/catalog"
	"grocer-be/internal/payment"
	"grocer-be/internal/shop"
	"grocer-be/internal/view"
)

const fieldPaymentMethod = "payment-method"

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	back := returnTarget(r)

	product, err := s.catalog.Get(r.Context(), r.PostFormValue("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ex, ok := s.begin(w, r, back)
	if !ok {
		return
	}
	err = ex.m.AddItem(r.Context(), product.LineItem())
	s.finish(w, r, ex, err, back)
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	back := returnTarget(r)
	ex, ok := s.begin(w, r, back)
	if !ok {
		return
	}
	err := ex.m.RemoveItem(r.Context(), r.PostFormValue("id"))
	s.finish(w, r, ex, err, back)
}

// updateQuantity treats an unparsable quantity as zero, which removes the line.
func (s *Server) updateQuantity(w http.ResponseWriter, r *http.Request) {
	back := returnTarget(r)
	ex, ok := s.begin(w, r, back)
	if !ok {
		return
	}

	n, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err != nil {
		n = 0
	}
	err = ex.m.SetQuantity(r.Context(), r.PostFormValue("id"), n)
	s.finish(w, r, ex, err, back)
}

func (s *Server) startCheckout(w http.ResponseWriter, r *http.Request) {
	back := returnTarget(r)
	ex, ok := s.begin(w, r, back)
	if !ok {
		return
	}
	err := ex.m.ProceedToCheckout(r.Context())
	s.finish(w, r, ex, err, back)
}

func (s *Server) placeOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ex, ok := s.begin(w, r, view.TargetCheckout)
	if !ok {
		return
	}
	_, err := ex.m.PlaceOrder(r.Context(), checkoutForm(r))
	s.finish(w, r, ex, err, "")
}

// checkoutForm splits a posted checkout page. Every field that is neither the
// method selector nor a payment detail is shipping information.
func checkoutForm(r *http.Request) shop.CheckoutForm {
	raw := r.PostFormValue(fieldPaymentMethod)
	selected := payment.Method(strings.ToLower(strings.TrimSpace(raw)))

	reserved := map[string]bool{fieldPaymentMethod: true}
	details := map[string]string{}
	for _, m := range payment.Methods() {
		for _, f := range m.Fields() {
			reserved[f.Key] = true
			if m == selected {
				details[f.Key] = r.PostFormValue(f.Key)
			}
		}
	}

	shipping := map[string]string{}
	for k, vs := range r.PostForm {
		if reserved[k] || len(vs) == 0 {
			continue
		}
		shipping[k] = vs[0]
	}

	return shop.CheckoutForm{
		Shipping:       shipping,
		PaymentMethod:  raw,
		PaymentDetails: details,
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetLogin)
	if !ok {
		return
	}
	err := ex.m.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	s.finish(w, r, ex, err, "")
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetSignup)
	if !ok {
		return
	}
	err := ex.m.Signup(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	s.finish(w, r, ex, err, "")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetHome)
	if !ok {
		return
	}
	err := ex.m.Logout(r.Context())
	s.finish(w, r, ex, err, view.TargetHome)
}

func (s *Server) trackFromConfirmation(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetConfirmation)
	if !ok {
		return
	}
	err := ex.m.TrackFromConfirmation(r.Context())
	s.finish(w, r, ex, err, "")
}

func (s *Server) trackOrder(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.begin(w, r, view.TargetTracking)
	if !ok {
		return
	}
	_, err := ex.m.TrackOrder(r.Context(), r.PostFormValue("orderNumber"))
	s.finish(w, r, ex, err, "")
}
