package order

import (
	"time"

	"github.com/shopspring/decimal"

	"grocer-be/internal/cart"
	"grocer-be/internal/payment"
)

// DeliveryDays is how far after the order date the delivery estimate falls.
const DeliveryDays = 3

// Order is an immutable snapshot taken when the order is placed.
type Order struct {
	CartItems    []cart.LineItem   `json:"cartItems"`
	ShippingInfo map[string]string `json:"shippingInfo"`
	PaymentInfo  payment.Info      `json:"paymentInfo"`
	TotalAmount  string            `json:"totalAmount"`
	UserID       *string           `json:"userId"`
	OrderNumber  string            `json:"orderNumber"`
	Status       Status            `json:"status"`
	OrderDate    time.Time         `json:"orderDate"`
}

type NewOrderParams struct {
	Items    []cart.LineItem
	Shipping map[string]string
	Payment  payment.Info
	Total    decimal.Decimal
	UserID   *string
	Number   string
	PlacedAt time.Time
}

func New(p NewOrderParams) Order {
	items := make([]cart.LineItem, len(p.Items))
	copy(items, p.Items)

	shipping := make(map[string]string, len(p.Shipping))
	for k, v := range p.Shipping {
		shipping[k] = v
	}

	return Order{
		CartItems:    items,
		ShippingInfo: shipping,
		PaymentInfo:  p.Payment,
		TotalAmount:  p.Total.StringFixed(2),
		UserID:       p.UserID,
		OrderNumber:  p.Number,
		Status:       StatusOrdered,
		OrderDate:    p.PlacedAt.UTC(),
	}
}

func (o Order) EstimatedDelivery() time.Time {
	return o.OrderDate.AddDate(0, 0, DeliveryDays)
}

// ItemCount is the sum of quantities across the snapshot.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.CartItems {
		n += it.Quantity
	}
	return n
}
