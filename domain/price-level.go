package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceLevel is one row of an order book side. Prices and sizes are exact
// decimals, never binary floats: level removal relies on exact equality,
// which float parsing of exchange strings corrupts.
type PriceLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
	Count int // orders at this level, 0 when the feed has none
}

type BookSide int

const (
	BidSide BookSide = iota
	AskSide
)

// PriceLevelSide holds one side of a book sorted at all times: bids
// descending, asks ascending, no duplicate prices, no zero-size entries.
// Equality of prices is decimal comparison, so "10.5" and "10.50" address
// the same level.
type PriceLevelSide struct {
	side   BookSide
	levels []PriceLevel
}

func NewPriceLevelSide(side BookSide) *PriceLevelSide {
	return &PriceLevelSide{side: side}
}

// search returns the insertion index for price and whether an entry with
// that exact price is already present.
func (s *PriceLevelSide) search(price decimal.Decimal) (int, bool) {
	i := sort.Search(len(s.levels), func(i int) bool {
		if s.side == BidSide {
			return s.levels[i].Price.Cmp(price) <= 0
		}
		return s.levels[i].Price.Cmp(price) >= 0
	})

	if i < len(s.levels) && s.levels[i].Price.Cmp(price) == 0 {
		return i, true
	}
	return i, false
}

// Upsert inserts or replaces the level at its price. A zero size deletes
// the level; deleting an absent price is a no-op.
func (s *PriceLevelSide) Upsert(level PriceLevel) {
	i, found := s.search(level.Price)

	if level.Size.IsZero() {
		if found {
			s.levels = append(s.levels[:i], s.levels[i+1:]...)
		}
		return
	}

	if found {
		s.levels[i] = level
		return
	}

	s.levels = append(s.levels, PriceLevel{})
	copy(s.levels[i+1:], s.levels[i:])
	s.levels[i] = level
}

func (s *PriceLevelSide) Len() int {
	return len(s.levels)
}

// Best returns the top of the side: highest bid or lowest ask.
func (s *PriceLevelSide) Best() (PriceLevel, bool) {
	if len(s.levels) == 0 {
		return PriceLevel{}, false
	}
	return s.levels[0], true
}

// Levels returns up to limit entries in canonical order as a fresh slice.
// limit <= 0 means all.
func (s *PriceLevelSide) Levels(limit int) []PriceLevel {
	n := len(s.levels)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]PriceLevel, n)
	copy(out, s.levels[:n])
	return out
}

// Serialize renders up to limit entries as [price, size] decimal strings.
func (s *PriceLevelSide) Serialize(limit int) [][]string {
	levels := s.Levels(limit)

	out := make([][]string, len(levels))
	for i, l := range levels {
		out[i] = []string{l.Price.String(), l.Size.String()}
	}
	return out
}
