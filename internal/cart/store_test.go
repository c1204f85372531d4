package cart

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, name string, price float64, qty int) Line {
	return Line{ProductID: id, Name: name, Price: decimal.NewFromFloat(price), Quantity: qty}
}

func TestStoreTotals(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 2)))
	require.NoError(t, s.Add(line("p2", "Lavender Cones", 199, 1)))

	assert.True(t, s.Subtotal().Equal(decimal.NewFromInt(797)),
		"subtotal = %s", s.Subtotal())
	assert.True(t, s.Total().Equal(decimal.NewFromInt(827)),
		"total = %s", s.Total())
}

func TestStoreTotalEmptyCartIsZero(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	assert.True(t, s.Total().IsZero(), "empty cart must not charge shipping")
}

func TestStoreAddMergesSameProduct(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 1)))
	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 2)))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestStoreAddNonPositiveQuantityCountsAsOne(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 0)))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestStoreUpdateQuantityClampsToOne(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)
	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 3)))

	require.NoError(t, s.UpdateQuantity("p1", 0))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity, "quantity never drops below 1; removal is explicit")
}

func TestStoreUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)
	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 1)))

	require.NoError(t, s.UpdateQuantity("missing", 5))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestStoreRemove(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)
	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 1)))
	require.NoError(t, s.Add(line("p2", "Lavender Cones", 199, 1)))

	require.NoError(t, s.Remove("p1"))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	s, err := NewStore(NewFileStorage(path))
	require.NoError(t, err)
	require.NoError(t, s.Add(line("p1", "Sandalwood Sticks", 299, 2)))

	restored, err := NewStore(NewFileStorage(path))
	require.NoError(t, err)

	lines := restored.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(299)))
}

func TestFileStorageMissingFileIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	s, err := NewStore(NewFileStorage(path))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}
