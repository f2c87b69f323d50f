package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	products := All()

	require.Len(t, products, 6)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.False(t, p.PriceUsd.IsNegative())
		assert.False(t, p.PriceXmr.IsNegative())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "tampered"

	assert.Equal(t, "Ultimate Privacy Guide", All()[0].Name)
}

func TestFind(t *testing.T) {
	p, ok := Find(2)
	require.True(t, ok)
	assert.Equal(t, "Secure Communication Toolkit", p.Name)
	assert.Equal(t, "35.00", p.PriceUsd.StringFixed(2))
	assert.Equal(t, "0.210", p.PriceXmr.StringFixed(3))
}

func TestFind_Unknown(t *testing.T) {
	_, ok := Find(999)
	assert.False(t, ok)
}
