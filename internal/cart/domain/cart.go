package domain

import (
	"errors"

	"github.com/shopspring/decimal"

	catalog "github.com/sahilmehra/zaika/internal/catalog/domain"
)

var (
	ErrItemUnavailable = errors.New("item unavailable")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Line snapshots a catalog item at selection time. An order keeps these
// snapshots, so later menu edits never touch placed orders.
type Line struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Quantity  int             `json:"quantity"`
}

func NewLine(item catalog.MenuItem, quantity int) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if !item.Available {
		return Line{}, ErrItemUnavailable
	}
	return Line{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		TaxRate:   item.TaxRate,
		Quantity:  quantity,
	}, nil
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Tax is unitPrice·quantity·taxRate/100, exact.
func (l Line) Tax() decimal.Decimal {
	return l.Total().Mul(l.TaxRate).Shift(-2)
}

// Cart is a caller's in-progress selection. A line's quantity never drops
// below 1; removing the last unit removes the line.
type Cart struct {
	lines []Line
}

func (c *Cart) Add(item catalog.MenuItem) error {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++
			return nil
		}
	}

	line, err := NewLine(item, 1)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

func (c *Cart) Remove(itemID string) error {
	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return nil
	}
	return ErrLineNotFound
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}
