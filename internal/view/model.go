package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grocer-be/internal/address"
	"grocer-be/internal/cart"
	"grocer-be/internal/catalog"
	"grocer-be/internal/notify"
	"grocer-be/internal/order"
	"grocer-be/internal/payment"
)

type Nav struct {
	LoggedIn bool
	UserName string
}

type Line struct {
	ID       string
	Name     string
	Image    string
	Price    decimal.Decimal
	Quantity int
	Total    decimal.Decimal
}

func Lines(items []cart.LineItem) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		out = append(out, Line{
			ID:       it.ID,
			Name:     it.Name,
			Image:    it.Image,
			Price:    it.Price,
			Quantity: it.Quantity,
			Total:    it.Total(),
		})
	}
	return out
}

type Dropdown struct {
	Lines            []Line
	Count            int
	Subtotal         decimal.Decimal
	Empty            bool
	CheckoutDisabled bool
}

type CartPage struct {
	Lines            []Line
	Count            int
	Subtotal         decimal.Decimal
	GrandTotal       decimal.Decimal
	Empty            bool
	CheckoutDisabled bool
}

// Field is one input of a form, with the value to redisplay and its error.
type Field struct {
	Key      string
	Label    string
	Value    string
	Error    string
	Required bool
}

type PaymentOption struct {
	Method   payment.Method
	Label    string
	Selected bool
	Fields   []Field
}

type Checkout struct {
	Lines              []Line
	Count              int
	Subtotal           decimal.Decimal
	Shipping           decimal.Decimal
	GrandTotal         decimal.Decimal
	FreeShipping       bool
	PlaceOrderDisabled bool
	ShippingForm       []Field
	Payments           []PaymentOption
}

type Confirmation struct {
	OrderNumber   string
	OrderDate     time.Time
	PaymentMethod string
	Total         string
	Delivery      address.Summary
	Lines         []Line
	ItemCount     int
}

func ConfirmationFor(o order.Order) *Confirmation {
	return &Confirmation{
		OrderNumber:   o.OrderNumber,
		OrderDate:     o.OrderDate,
		PaymentMethod: strings.ToUpper(string(o.PaymentInfo.Method)),
		Total:         o.TotalAmount,
		Delivery:      address.Summarize(o.ShippingInfo),
		Lines:         Lines(o.CartItems),
		ItemCount:     o.ItemCount(),
	}
}

// Tracking is the lookup result. Searched stays false until a number has been
// looked up; NotFound is only meaningful once it has.
type Tracking struct {
	Query             string
	Searched          bool
	NotFound          bool
	OrderNumber       string
	Status            order.Status
	OrderDate         time.Time
	EstimatedDelivery time.Time
	Progress          order.Progress
	Lines             []Line
	Total             string
	Delivery          address.Summary
}

func TrackingFor(query string, o order.Order) *Tracking {
	return &Tracking{
		Query:             query,
		Searched:          true,
		OrderNumber:       o.OrderNumber,
		Status:            o.Status,
		OrderDate:         o.OrderDate,
		EstimatedDelivery: o.EstimatedDelivery(),
		Progress:          order.ProgressFor(o.Status),
		Lines:             Lines(o.CartItems),
		Total:             o.TotalAmount,
		Delivery:          address.Summarize(o.ShippingInfo),
	}
}

func TrackingNotFound(query string) *Tracking {
	return &Tracking{Query: query, Searched: true, NotFound: true}
}

type Catalog struct {
	Query    string
	Products []catalog.Product
}

// Page is everything one rendered page shows. Panels the page's mode does not
// carry stay nil.
type Page struct {
	Target Target
	Mode   Mode
	Title  string

	Nav          *Nav
	Dropdown     *Dropdown
	CartPage     *CartPage
	Checkout     *Checkout
	Confirmation *Confirmation
	Tracking     *Tracking
	Catalog      *Catalog

	Notifications []string
	Timing        notify.Timing
	// Refresh is set when the page should move on by itself after a delay.
	Refresh *Refresh
}

type Refresh struct {
	After time.Duration
	To    string
}

func NewPage(t Target) *Page {
	return &Page{
		Target: t,
		Mode:   t.Mode(),
		Title:  titles[t],
		Timing: notify.DefaultTiming(),
	}
}

var titles = map[Target]string{
	TargetHome:         "Fresh Groceries",
	TargetLogin:        "Log In",
	TargetSignup:       "Sign Up",
	TargetCart:         "Your Cart",
	TargetCheckout:     "Checkout",
	TargetConfirmation: "Order Confirmation",
	TargetTracking:     "Track Your Order",
}
