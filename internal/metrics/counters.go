package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Registry holds the process-wide counters reported on /health.
type Registry struct {
	StoreReads    Counter
	StoreWrites   Counter
	ParseFailures Counter
	OrdersPlaced  Counter
	started       time.Time
}

func NewRegistry() *Registry {
	return &Registry{started: time.Now()}
}

// Snapshot is the JSON shape of the health report.
type Snapshot struct {
	StoreReads    uint64 `json:"storeReads"`
	StoreWrites   uint64 `json:"storeWrites"`
	ParseFailures uint64 `json:"parseFailures"`
	OrdersPlaced  uint64 `json:"ordersPlaced"`
	Uptime        string `json:"uptime"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		StoreReads:    r.StoreReads.Load(),
		StoreWrites:   r.StoreWrites.Load(),
		ParseFailures: r.ParseFailures.Load(),
		OrdersPlaced:  r.OrdersPlaced.Load(),
		Uptime:        time.Since(r.started).Truncate(time.Second).String(),
	}
}
