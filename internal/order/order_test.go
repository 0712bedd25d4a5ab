package order

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocer-be/internal/cart"
	"grocer-be/internal/payment"
)

func TestNew(t *testing.T) {
	placed := time.Date(2026, 3, 30, 22, 15, 0, 0, time.UTC)
	items := []cart.LineItem{{ID: "A1", Price: decimal.NewFromInt(10), Quantity: 2}}
	shipping := map[string]string{"fullName": "Ama"}
	uid := "session-1"

	o := New(NewOrderParams{
		Items:    items,
		Shipping: shipping,
		Payment:  payment.Info{Method: payment.MethodCashOnDelivery},
		Total:    decimal.NewFromInt(20),
		UserID:   &uid,
		Number:   "PB1",
		PlacedAt: placed,
	})

	assert.Equal(t, StatusOrdered, o.Status)
	assert.Equal(t, "20.00", o.TotalAmount)
	assert.Equal(t, "PB1", o.OrderNumber)
	assert.Equal(t, 2, o.ItemCount())

	t.Run("Snapshot does not alias inputs", func(t *testing.T) {
		items[0].Quantity = 99
		shipping["fullName"] = "changed"
		assert.Equal(t, 2, o.CartItems[0].Quantity)
		assert.Equal(t, "Ama", o.ShippingInfo["fullName"])
	})

	t.Run("Delivery estimate is three days later", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, 4, 2, 22, 15, 0, 0, time.UTC), o.EstimatedDelivery())
	})
}

func TestStatus_Step(t *testing.T) {
	assert.Equal(t, 1, StatusOrdered.Step())
	assert.Equal(t, 2, StatusConfirmed.Step())
	assert.Equal(t, 3, StatusProcessing.Step())
	assert.Equal(t, 4, StatusShipped.Step())
	assert.Equal(t, 5, StatusDelivered.Step())
	assert.Equal(t, 1, Status("").Step())
	assert.Equal(t, 1, Status("lost").Step())
}

func TestProgressFor(t *testing.T) {
	tests := []struct {
		status  Status
		percent float64
		states  []StepState
	}{
		{StatusOrdered, 0, []StepState{StepActive, StepPending, StepPending, StepPending, StepPending}},
		{StatusProcessing, 50, []StepState{StepCompleted, StepCompleted, StepActive, StepPending, StepPending}},
		{StatusShipped, 75, []StepState{StepCompleted, StepCompleted, StepCompleted, StepActive, StepPending}},
		{StatusDelivered, 100, []StepState{StepCompleted, StepCompleted, StepCompleted, StepCompleted, StepActive}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := ProgressFor(tt.status)
			assert.Equal(t, tt.status.Step(), p.Current)
			assert.InDelta(t, tt.percent, p.Percent, 0.0001)

			require.Len(t, p.Steps, 5)
			got := make([]StepState, 0, 5)
			for _, s := range p.Steps {
				got = append(got, s.State)
			}
			assert.Equal(t, tt.states, got)
		})
	}

	assert.Equal(t, "Order Placed", ProgressFor(StatusOrdered).Steps[0].Label)
}

func TestNumberGenerator(t *testing.T) {
	now := time.UnixMilli(1767225600123)
	g := NewNumberGenerator(func() time.Time { return now })

	num := g.Next()
	assert.True(t, strings.HasPrefix(num, "PB1767225600123"), num)

	suffix := strings.TrimPrefix(num, "PB1767225600123")
	n, err := strconv.Atoi(suffix)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 1000)

	assert.Regexp(t, regexp.MustCompile(`^PB\d+$`), NewNumberGenerator(nil).Next())
}

func TestFind(t *testing.T) {
	last := &Order{OrderNumber: "PB3"}
	history := []Order{{OrderNumber: "PB1"}, {OrderNumber: "PB2"}, {OrderNumber: "PB3"}}

	t.Run("Last order matches regardless of history flag", func(t *testing.T) {
		o, ok := Find(last, nil, "PB3", false)
		assert.True(t, ok)
		assert.Equal(t, "PB3", o.OrderNumber)
	})

	t.Run("History searched when allowed", func(t *testing.T) {
		o, ok := Find(last, history, "PB1", true)
		assert.True(t, ok)
		assert.Equal(t, "PB1", o.OrderNumber)
	})

	t.Run("History skipped without session", func(t *testing.T) {
		_, ok := Find(last, history, "PB1", false)
		assert.False(t, ok)
	})

	t.Run("No last order", func(t *testing.T) {
		_, ok := Find(nil, history, "PB2", true)
		assert.True(t, ok)

		_, ok = Find(nil, history, "PB9", true)
		assert.False(t, ok)
	})

	t.Run("Empty number never matches", func(t *testing.T) {
		_, ok := Find(&Order{}, []Order{{}}, "", true)
		assert.False(t, ok)
	})
}
