package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lvl(price, size string) PriceLevel {
	return PriceLevel{
		Price: decimal.RequireFromString(price),
		Size:  decimal.RequireFromString(size),
	}
}

func TestPriceLevelSide_BidsSortedDescending(t *testing.T) {
	side := NewPriceLevelSide(BidSide)

	side.Upsert(lvl("100", "1"))
	side.Upsert(lvl("102", "2"))
	side.Upsert(lvl("101", "3"))

	got := side.Serialize(0)
	expected := [][]string{{"102", "2"}, {"101", "3"}, {"100", "1"}}
	assert.Equal(t, expected, got, "bids should be sorted by price descending")
}

func TestPriceLevelSide_AsksSortedAscending(t *testing.T) {
	side := NewPriceLevelSide(AskSide)

	side.Upsert(lvl("102", "2"))
	side.Upsert(lvl("100", "1"))
	side.Upsert(lvl("101", "3"))

	got := side.Serialize(0)
	expected := [][]string{{"100", "1"}, {"101", "3"}, {"102", "2"}}
	assert.Equal(t, expected, got, "asks should be sorted by price ascending")
}

func TestPriceLevelSide_UpsertReplacesExistingPrice(t *testing.T) {
	side := NewPriceLevelSide(BidSide)

	side.Upsert(lvl("100", "1"))
	side.Upsert(lvl("100", "4"))

	require.Equal(t, 1, side.Len())
	best, ok := side.Best()
	require.True(t, ok)
	assert.Equal(t, "4", best.Size.String())
}

func TestPriceLevelSide_DecimalRepresentationsAddressSameLevel(t *testing.T) {
	side := NewPriceLevelSide(AskSide)

	side.Upsert(lvl("10.5", "3"))
	side.Upsert(lvl("10.50", "7"))
	require.Equal(t, 1, side.Len(), "10.5 and 10.50 are the same price level")

	side.Upsert(lvl("10.500", "0"))
	assert.Equal(t, 0, side.Len(), "zero size at an equivalent representation should delete the level")
}

func TestPriceLevelSide_ZeroSizeDeleteIsIdempotent(t *testing.T) {
	side := NewPriceLevelSide(BidSide)

	side.Upsert(lvl("100", "1"))
	side.Upsert(lvl("100", "0"))
	side.Upsert(lvl("100", "0"))

	assert.Equal(t, 0, side.Len())

	side.Upsert(lvl("99", "0"))
	assert.Equal(t, 0, side.Len(), "deleting an absent price should be a no-op")
}

func TestPriceLevelSide_LevelsLimitReturnsCopy(t *testing.T) {
	side := NewPriceLevelSide(AskSide)
	for _, l := range []PriceLevel{lvl("100", "1"), lvl("101", "2"), lvl("102", "3")} {
		side.Upsert(l)
	}

	top := side.Levels(2)
	require.Len(t, top, 2)
	assert.Equal(t, "100", top[0].Price.String())

	top[0] = lvl("1", "1")
	best, _ := side.Best()
	assert.Equal(t, "100", best.Price.String(), "mutating the returned slice must not touch the side")

	assert.Len(t, side.Levels(0), 3, "limit 0 means full depth")
	assert.Len(t, side.Levels(10), 3)
}
