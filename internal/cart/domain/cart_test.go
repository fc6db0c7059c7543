package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalog "github.com/sahilmehra/zaika/internal/catalog/domain"
)

func dish(id, name, price string) catalog.MenuItem {
	return catalog.MenuItem{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		TaxRate:   decimal.NewFromInt(5),
		Available: true,
	}
}

func TestNewLineSnapshotsItem(t *testing.T) {
	item := dish("1", "Risotto", "18.99")

	line, err := NewLine(item, 2)
	require.NoError(t, err)
	require.Equal(t, "1", line.ItemID)
	require.Equal(t, "Risotto", line.Name)
	require.True(t, line.UnitPrice.Equal(item.Price))
	require.Equal(t, 2, line.Quantity)
}

func TestNewLineRejectsZeroQuantity(t *testing.T) {
	_, err := NewLine(dish("1", "Risotto", "18.99"), 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestNewLineRejectsUnavailableItem(t *testing.T) {
	item := dish("1", "Risotto", "18.99")
	item.Available = false

	_, err := NewLine(item, 1)
	require.ErrorIs(t, err, ErrItemUnavailable)
}

func TestLineTax(t *testing.T) {
	line, err := NewLine(dish("1", "Risotto", "18.99"), 1)
	require.NoError(t, err)
	require.True(t, line.Tax().Equal(decimal.RequireFromString("0.9495")))
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	var c Cart
	item := dish("1", "Risotto", "18.99")

	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
}

func TestCartRemoveDecrementsThenDeletes(t *testing.T) {
	var c Cart
	item := dish("1", "Risotto", "18.99")
	require.NoError(t, c.Add(item))
	require.NoError(t, c.Add(item))

	require.NoError(t, c.Remove("1"))
	require.Equal(t, 1, c.Lines()[0].Quantity)

	require.NoError(t, c.Remove("1"))
	require.True(t, c.Empty())
}

func TestCartRemoveUnknownLine(t *testing.T) {
	var c Cart
	require.ErrorIs(t, c.Remove("nope"), ErrLineNotFound)
}

func TestCartSubtotal(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(dish("1", "Risotto", "18.99")))
	require.NoError(t, c.Add(dish("2", "Wings", "12.50")))
	require.NoError(t, c.Add(dish("2", "Wings", "12.50")))

	require.True(t, c.Subtotal().Equal(decimal.RequireFromString("43.99")))
}

func TestCartLinesReturnsCopy(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(dish("1", "Risotto", "18.99")))

	lines := c.Lines()
	lines[0].Quantity = 99
	require.Equal(t, 1, c.Lines()[0].Quantity)
}
