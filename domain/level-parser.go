package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// NormalizeLevel converts one exchange-specific raw entry into a
// PriceLevel. Implementations must be deterministic and must return
// ErrMalformedLevel on bad input rather than a wrong number.
type NormalizeLevel func(entry []string) (PriceLevel, error)

// MalformedMode selects what a batch does with an entry the normalizer
// rejects.
type MalformedMode int

const (
	// SkipMalformed drops the bad entry and keeps the rest of the batch.
	SkipMalformed MalformedMode = iota
	// AbortOnMalformed fails the whole batch on the first bad entry.
	AbortOnMalformed
)

// ParseLevel is the default normalizer for [price, size, count?] string
// entries, the shape most depth feeds use.
func ParseLevel(entry []string) (PriceLevel, error) {
	if len(entry) < 2 {
		return PriceLevel{}, fmt.Errorf("%w: want [price, size], got %d elements", ErrMalformedLevel, len(entry))
	}

	price, err := decimal.NewFromString(entry[0])
	if err != nil {
		return PriceLevel{}, fmt.Errorf("%w: price %q", ErrMalformedLevel, entry[0])
	}

	size, err := decimal.NewFromString(entry[1])
	if err != nil {
		return PriceLevel{}, fmt.Errorf("%w: size %q", ErrMalformedLevel, entry[1])
	}

	if price.Sign() < 0 || size.Sign() < 0 {
		return PriceLevel{}, fmt.Errorf("%w: negative price or size %v", ErrMalformedLevel, entry)
	}

	level := PriceLevel{Price: price, Size: size}

	if len(entry) > 2 {
		count, err := strconv.Atoi(entry[2])
		if err != nil || count < 0 {
			return PriceLevel{}, fmt.Errorf("%w: order count %q", ErrMalformedLevel, entry[2])
		}
		level.Count = count
	}

	return level, nil
}

// normalizeBatch runs the normalizer over a raw entry list, honoring the
// malformed-entry mode. Returns the parsed levels and how many entries
// were skipped.
func normalizeBatch(entries [][]string, normalize NormalizeLevel, mode MalformedMode) ([]PriceLevel, int, error) {
	levels := make([]PriceLevel, 0, len(entries))
	skipped := 0

	for _, entry := range entries {
		level, err := normalize(entry)
		if err != nil {
			if mode == AbortOnMalformed {
				return nil, 0, err
			}
			skipped++
			continue
		}
		levels = append(levels, level)
	}

	return levels, skipped, nil
}
