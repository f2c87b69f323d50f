// Package cart implements the shopping cart state manager: persisted line
// items keyed by session, joined against the catalog on every read.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/secureshop/internal/catalog"
)

// Line is one persisted cart record. The cart holds at most one line per
// product id; adding the same product again increments the quantity in place.
type Line struct {
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Item is a snapshot entry: a catalog product joined with its cart quantity.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Totals are derived from the current line list on every read and never
// stored. TotalUsd and TotalXmr are display-ready fixed-precision strings.
type Totals struct {
	TotalUsd  string `json:"totalUsd"`
	TotalXmr  string `json:"totalXmr"`
	ItemCount int    `json:"itemCount"`
}

// Manager owns cart state for all sessions. Mutations for the same cart key
// are serialized so read-modify-write-persist is atomic per cart.
type Manager struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *Manager) lock(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// load restores the persisted line list, failing open to an empty list on
// missing or malformed data.
func (m *Manager) load(ctx context.Context, key string) []Line {
	lines, err := m.store.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("[Cart] Failed to load cart %s, starting empty: %v", key, err)
		return nil
	}
	return lines
}

func (m *Manager) save(ctx context.Context, key string, lines []Line) {
	if err := m.store.Save(ctx, key, lines); err != nil {
		log.Printf("[Cart] Failed to persist cart %s: %v", key, err)
	}
}

// Add puts quantity units of a product into the cart. It returns false when
// the product id does not resolve in the catalog.
func (m *Manager) Add(ctx context.Context, key string, productID, quantity int) bool {
	if _, ok := catalog.Find(productID); !ok {
		log.Printf("[Cart] Product not found: %d", productID)
		return false
	}
	if quantity < 1 {
		quantity = 1
	}

	defer m.lock(key)()
	lines := m.load(ctx, key)

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, Line{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
	}

	m.save(ctx, key, lines)
	return true
}

// Remove deletes the line for a product. Removing an absent product is a
// no-op, not an error.
func (m *Manager) Remove(ctx context.Context, key string, productID int) {
	defer m.lock(key)()
	lines := m.load(ctx, key)
	m.save(ctx, key, removeLine(lines, productID))
}

// SetQuantity sets a line's quantity in place. Zero or negative quantity is
// equivalent to Remove. Setting quantity on a product not in the cart is a
// no-op; it does not add the product.
func (m *Manager) SetQuantity(ctx context.Context, key string, productID, quantity int) {
	defer m.lock(key)()
	lines := m.load(ctx, key)

	if quantity <= 0 {
		m.save(ctx, key, removeLine(lines, productID))
		return
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			m.save(ctx, key, lines)
			return
		}
	}
}

// Items returns the cart snapshot: product details joined with quantities,
// preserving insertion order. Lines whose product id no longer resolves in
// the catalog are dropped from the snapshot.
func (m *Manager) Items(ctx context.Context, key string) []Item {
	lines := m.load(ctx, key)
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		product, ok := catalog.Find(line.ProductID)
		if !ok {
			log.Printf("[Cart] Dropping line for unknown product %d in cart %s", line.ProductID, key)
			continue
		}
		items = append(items, Item{Product: product, Quantity: line.Quantity})
	}
	return items
}

// Totals recomputes the cart totals from the current snapshot.
func (m *Manager) Totals(ctx context.Context, key string) Totals {
	return ComputeTotals(m.Items(ctx, key))
}

// Clear empties the cart.
func (m *Manager) Clear(ctx context.Context, key string) {
	defer m.lock(key)()
	if err := m.store.Delete(ctx, key); err != nil {
		log.Printf("[Cart] Failed to clear cart %s: %v", key, err)
	}
}

// ComputeTotals sums a snapshot into display totals: USD with 2 fraction
// digits, XMR with 3.
func ComputeTotals(items []Item) Totals {
	totalUsd := decimal.Zero
	totalXmr := decimal.Zero
	count := 0
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalUsd = totalUsd.Add(item.PriceUsd.Mul(qty))
		totalXmr = totalXmr.Add(item.PriceXmr.Mul(qty))
		count += item.Quantity
	}
	return Totals{
		TotalUsd:  totalUsd.StringFixed(2),
		TotalXmr:  totalXmr.StringFixed(3),
		ItemCount: count,
	}
}

func removeLine(lines []Line, productID int) []Line {
	out := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	return out
}
