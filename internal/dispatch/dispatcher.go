// Package dispatch delivers order notifications through an ordered fallback
// chain: remote endpoint, provider API, then local simulation.
package dispatch

import (
	"context"
	"errors"
	"log"

	"github.com/example/secureshop/internal/cart"
	"github.com/example/secureshop/internal/email"
	"github.com/example/secureshop/internal/metrics"
)

// Order is the wire form of a checkout submission, as accepted by the
// notification endpoint.
type Order struct {
	OrderID       string            `json:"orderId"`
	CartItems     []email.OrderItem `json:"cartItems"`
	Totals        cart.Totals       `json:"totals"`
	ContactMethod string            `json:"contactMethod"`
	ContactInfo   string            `json:"contactInfo"`
}

// Tier is one delivery strategy in the fallback chain.
type Tier interface {
	Name() string
	Attempt(ctx context.Context, order Order, payload email.Payload) error
}

// ErrAllTiersFailed is returned when every tier fails. It cannot happen with
// the simulation tier in the chain.
var ErrAllTiersFailed = errors.New("all notification tiers failed")

// Dispatcher walks its tiers in order and stops at the first success.
type Dispatcher struct {
	tiers []Tier
}

func NewDispatcher(tiers ...Tier) *Dispatcher {
	return &Dispatcher{tiers: tiers}
}

// Send attempts delivery tier by tier and returns the name of the tier that
// succeeded. Tier failures are logged as warnings, never surfaced as hard
// errors, so checkout can always complete.
func (d *Dispatcher) Send(ctx context.Context, order Order, payload email.Payload) (string, error) {
	for _, tier := range d.tiers {
		if err := tier.Attempt(ctx, order, payload); err != nil {
			log.Printf("[Dispatch] %s tier failed for order %s: %v", tier.Name(), order.OrderID, err)
			metrics.DispatchAttempts.WithLabelValues(tier.Name(), "failure").Inc()
			continue
		}
		metrics.DispatchAttempts.WithLabelValues(tier.Name(), "success").Inc()
		log.Printf("[Dispatch] Order %s notification delivered via %s tier", order.OrderID, tier.Name())
		return tier.Name(), nil
	}
	return "", ErrAllTiersFailed
}
