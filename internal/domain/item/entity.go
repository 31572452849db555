package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("item name cannot be empty")
	ErrNegativeRate    = errors.New("daily rate cannot be negative")
	ErrAlreadyReserved = errors.New("item is already reserved")
)

// Item is a rentable unit of stock. Availability flips when an order holding
// the item is cancelled (released) or created (reserved).
type Item struct {
	id             uuid.UUID
	name           string
	dailyRateCents int64
	available      bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewItem(name string, dailyRateCents int64) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if dailyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	return &Item{
		id:             uuid.New(),
		name:           name,
		dailyRateCents: dailyRateCents,
		available:      true,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	name string,
	dailyRateCents int64,
	available bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:             id,
		name:           name,
		dailyRateCents: dailyRateCents,
		available:      available,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) Name() string          { return i.name }
func (i *Item) DailyRateCents() int64 { return i.dailyRateCents }
func (i *Item) Available() bool       { return i.available }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }

func (i *Item) Reserve() error {
	if !i.available {
		return ErrAlreadyReserved
	}
	i.available = false
	return nil
}

func (i *Item) Release() {
	i.available = true
}

// SetAvailability force-sets the flag, bypassing the Reserve guard. Used by
// command undo to restore a captured snapshot.
func (i *Item) SetAvailability(available bool) {
	i.available = available
}
