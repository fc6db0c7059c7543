package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	cartdomain "github.com/sahilmehra/zaika/internal/cart/domain"
	"github.com/sahilmehra/zaika/internal/pricing"
	"github.com/sahilmehra/zaika/pkg/geo"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Address struct {
	HouseNo  string `json:"house_no"`
	Floor    string `json:"floor,omitempty"`
	Area     string `json:"area"`
	Landmark string `json:"landmark,omitempty"`
}

func (a Address) Validate() error {
	if a.HouseNo == "" || a.Area == "" {
		return ErrInvalidAddress
	}
	return nil
}

// OneLine is the single-line rendering shown on invoices.
func (a Address) OneLine() string {
	return strings.Join([]string{a.HouseNo, a.Area}, ", ")
}

// Order is write-once except for Status. Lines are snapshots copied out of
// the cart; the applied offer itself is not retained, only its discount.
type Order struct {
	ID        string            `json:"id"`
	Lines     []cartdomain.Line `json:"lines"`
	Pricing   pricing.Breakdown `json:"pricing"`
	Status    Status            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Caller    string            `json:"caller"`
	Address   Address           `json:"address"`
	Location  *geo.Point        `json:"location,omitempty"`
}

func NewOrder(lines []cartdomain.Line, breakdown pricing.Breakdown, address Address, caller string, location *geo.Point) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}
	if err := address.Validate(); err != nil {
		return Order{}, err
	}

	snapshot := make([]cartdomain.Line, len(lines))
	copy(snapshot, lines)

	return Order{
		ID:        uuid.NewString(),
		Lines:     snapshot,
		Pricing:   breakdown,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
		Caller:    caller,
		Address:   address,
		Location:  location,
	}, nil
}

// WithStatus returns a copy in the new status, or ErrInvalidTransition when
// the status graph forbids the move.
func (o Order) WithStatus(next Status) (Order, error) {
	if !o.Status.CanTransitionTo(next) {
		return Order{}, ErrInvalidTransition
	}
	o.Status = next
	return o, nil
}

func (o Order) Active() bool {
	return !o.Status.Terminal()
}
