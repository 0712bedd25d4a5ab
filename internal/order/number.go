package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const NumberPrefix = "PB"

// NumberGenerator builds order numbers as prefix + Unix milliseconds + a random
// number below 1000. Collisions are unlikely, not impossible.
type NumberGenerator struct {
	now func() time.Time
}

func NewNumberGenerator(now func() time.Time) *NumberGenerator {
	if now == nil {
		now = time.Now
	}
	return &NumberGenerator{now: now}
}

func (g *NumberGenerator) Next() string {
	now := g.now()

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 1000)
	}

	return fmt.Sprintf("%s%d%d", NumberPrefix, now.UnixMilli(), n.Int64())
}
