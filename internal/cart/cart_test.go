package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore is an in-memory Store with injectable failures.
type mockStore struct {
	mu    sync.Mutex
	carts map[string][]Line

	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func newMockStore() *mockStore {
	return &mockStore{carts: make(map[string][]Line)}
}

func (m *mockStore) Load(ctx context.Context, key string) ([]Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	lines, ok := m.carts[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (m *mockStore) Save(ctx context.Context, key string, lines []Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	saved := make([]Line, len(lines))
	copy(saved, lines)
	m.carts[key] = saved
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}

func newTestManager() (*Manager, *mockStore) {
	store := newMockStore()
	return NewManager(store), store
}

const testKey = "session-1"

// ============================================
// Add Tests
// ============================================

func TestManager_Add_NewLine(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	ok := m.Add(ctx, testKey, 1, 2)

	require.True(t, ok)
	assert.Equal(t, 1, store.SaveCalls)

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "Ultimate Privacy Guide", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestManager_Add_MergesDuplicateProduct(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	require.True(t, m.Add(ctx, testKey, 1, 2))
	require.True(t, m.Add(ctx, testKey, 1, 3))

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestManager_Add_UnknownProduct(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	ok := m.Add(ctx, testKey, 999, 1)

	assert.False(t, ok)
	assert.Zero(t, store.SaveCalls)
	assert.Empty(t, m.Items(ctx, testKey))
}

func TestManager_Add_QuantityDefaultsToOne(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	require.True(t, m.Add(ctx, testKey, 1, 0))

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestManager_Add_SetsAddedAt(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	before := time.Now().UTC()
	require.True(t, m.Add(ctx, testKey, 1, 1))

	lines := store.carts[testKey]
	require.Len(t, lines, 1)
	assert.False(t, lines[0].AddedAt.Before(before.Add(-time.Second)))
}

// ============================================
// Remove / SetQuantity Tests
// ============================================

func TestManager_Remove(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 1, 1)
	m.Add(ctx, testKey, 2, 1)
	m.Remove(ctx, testKey, 1)

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestManager_Remove_AbsentProductIsNoOp(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 1, 2)
	m.Remove(ctx, testKey, 5)

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestManager_SetQuantity_UpdatesInPlace(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 1, 2)
	m.SetQuantity(ctx, testKey, 1, 7)

	items := m.Items(ctx, testKey)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestManager_SetQuantity_ZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	setQty, _ := newTestManager()
	setQty.Add(ctx, testKey, 1, 2)
	setQty.Add(ctx, testKey, 2, 1)
	setQty.SetQuantity(ctx, testKey, 1, 0)

	removed, _ := newTestManager()
	removed.Add(ctx, testKey, 1, 2)
	removed.Add(ctx, testKey, 2, 1)
	removed.Remove(ctx, testKey, 1)

	assert.Equal(t, removed.Items(ctx, testKey), setQty.Items(ctx, testKey))
}

func TestManager_SetQuantity_AbsentProductDoesNotAdd(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.SetQuantity(ctx, testKey, 1, 3)

	assert.Empty(t, m.Items(ctx, testKey))
}

// ============================================
// Snapshot / Totals Tests
// ============================================

func TestManager_Items_PreservesInsertionOrder(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 3, 1)
	m.Add(ctx, testKey, 1, 1)
	m.Add(ctx, testKey, 2, 1)
	m.Add(ctx, testKey, 1, 1) // merge, must not reorder

	items := m.Items(ctx, testKey)
	require.Len(t, items, 3)
	assert.Equal(t, 3, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
	assert.Equal(t, 2, items[2].ID)
}

func TestManager_Items_DropsUnknownProducts(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	// A line whose product has left the catalog.
	require.NoError(t, store.Save(ctx, testKey, []Line{
		{ProductID: 1, Quantity: 1, AddedAt: time.Now()},
		{ProductID: 999, Quantity: 4, AddedAt: time.Now()},
		{ProductID: 2, Quantity: 2, AddedAt: time.Now()},
	}))

	items := m.Items(ctx, testKey)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)

	totals := m.Totals(ctx, testKey)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestManager_Totals_TwoLineScenario(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	// Product 1: $25.00 / 0.15 XMR, qty 2. Product 2: $35.00 / 0.21 XMR, qty 1.
	m.Add(ctx, testKey, 1, 2)
	m.Add(ctx, testKey, 2, 1)

	totals := m.Totals(ctx, testKey)
	assert.Equal(t, "85.00", totals.TotalUsd)
	assert.Equal(t, "0.510", totals.TotalXmr)
	assert.Equal(t, 3, totals.ItemCount)
}

func TestManager_Totals_EmptyCart(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	totals := m.Totals(ctx, testKey)
	assert.Equal(t, "0.00", totals.TotalUsd)
	assert.Equal(t, "0.000", totals.TotalXmr)
	assert.Zero(t, totals.ItemCount)
}

func TestManager_Totals_MatchesDirectRecompute(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 1, 2)
	m.Add(ctx, testKey, 4, 1)
	m.SetQuantity(ctx, testKey, 1, 5)
	m.Remove(ctx, testKey, 4)
	m.Add(ctx, testKey, 6, 3)

	assert.Equal(t, ComputeTotals(m.Items(ctx, testKey)), m.Totals(ctx, testKey))
}

// ============================================
// Clear / Persistence Tests
// ============================================

func TestManager_Clear(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	m.Add(ctx, testKey, 1, 2)
	m.Add(ctx, testKey, 2, 1)
	m.Clear(ctx, testKey)

	assert.Empty(t, m.Items(ctx, testKey))
	assert.Zero(t, m.Totals(ctx, testKey).ItemCount)
}

func TestManager_RoundTrip(t *testing.T) {
	store := newMockStore()
	ctx := context.Background()

	first := NewManager(store)
	first.Add(ctx, testKey, 2, 1)
	first.Add(ctx, testKey, 1, 3)

	// A fresh manager over the same store sees the identical snapshot.
	second := NewManager(store)
	assert.Equal(t, first.Items(ctx, testKey), second.Items(ctx, testKey))
}

func TestManager_LoadFailure_FailsOpen(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	store.LoadErr = errors.New("disk on fire")

	assert.Empty(t, m.Items(ctx, testKey))

	// Mutations still work, starting from the empty fallback state.
	store.LoadErr = nil
	require.True(t, m.Add(ctx, testKey, 1, 1))
	assert.Len(t, m.Items(ctx, testKey), 1)
}

func TestManager_SaveFailure_DoesNotPanic(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	store.SaveErr = errors.New("disk full")

	assert.True(t, m.Add(ctx, testKey, 1, 1))
	assert.Empty(t, m.Items(ctx, testKey))
}
