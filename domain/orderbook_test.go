package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSymbol(t *testing.T) *MarketSymbol {
	t.Helper()
	symbol, err := NewMarketSymbol("BTC", "USDT")
	require.NoError(t, err)
	return symbol
}

func TestOrderBook_SnapshotThenDelta(t *testing.T) {
	book := NewOrderBook(testSymbol(t))

	err := book.ApplySnapshot(
		[]PriceLevel{lvl("100", "2"), lvl("99", "1")},
		[]PriceLevel{lvl("101", "3")},
		10, 0,
	)
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.Nonce())

	// Nonce 11 deletes the best bid.
	err = book.ApplyDelta([]PriceLevel{lvl("100", "0")}, nil, 11, 0)
	require.NoError(t, err)

	view := book.LimitedView(0)
	assert.Equal(t, int64(11), view.Nonce)
	assert.Equal(t, [][]string{{"99", "1"}}, view.Bids)
	assert.Equal(t, [][]string{{"101", "3"}}, view.Asks)
}

func TestOrderBook_StaleDeltaLeavesBookUntouched(t *testing.T) {
	book := NewOrderBook(testSymbol(t))
	require.NoError(t, book.ApplySnapshot([]PriceLevel{lvl("100", "2")}, nil, 10, 0))

	err := book.ApplyDelta([]PriceLevel{lvl("100", "9")}, nil, 10, 0)
	assert.ErrorIs(t, err, ErrStaleDelta)

	view := book.LimitedView(0)
	assert.Equal(t, int64(10), view.Nonce)
	assert.Equal(t, [][]string{{"100", "2"}}, view.Bids)
}

func TestOrderBook_CrossedBookFlaggedNotCorrected(t *testing.T) {
	book := NewOrderBook(testSymbol(t))
	require.NoError(t, book.ApplySnapshot(
		[]PriceLevel{lvl("100", "1")},
		[]PriceLevel{lvl("101", "1")},
		10, 0,
	))

	// A bid through the best ask crosses the book. The state is kept as
	// delivered, only the flag is raised.
	err := book.ApplyDelta([]PriceLevel{lvl("102", "1")}, nil, 11, 0)
	assert.ErrorIs(t, err, ErrCrossedBook)

	view := book.LimitedView(0)
	assert.True(t, view.Crossed)
	assert.Equal(t, [][]string{{"102", "1"}, {"100", "1"}}, view.Bids)

	// The flag clears once the crossing level is gone.
	err = book.ApplyDelta([]PriceLevel{lvl("102", "0")}, nil, 12, 0)
	require.NoError(t, err)
	assert.False(t, book.LimitedView(0).Crossed)
}

func TestOrderBook_CrossedSnapshot(t *testing.T) {
	book := NewOrderBook(testSymbol(t))

	err := book.ApplySnapshot(
		[]PriceLevel{lvl("101", "1")},
		[]PriceLevel{lvl("101", "2")},
		10, 0,
	)
	assert.ErrorIs(t, err, ErrCrossedBook)
	assert.True(t, book.LimitedView(0).Crossed)
}

func TestOrderBook_LimitedView(t *testing.T) {
	book := NewOrderBook(testSymbol(t))
	require.NoError(t, book.ApplySnapshot(
		[]PriceLevel{lvl("100", "1"), lvl("99", "2"), lvl("98", "3")},
		[]PriceLevel{lvl("101", "1"), lvl("102", "2")},
		10, 1257894000000,
	))

	view := book.LimitedView(2)
	assert.Equal(t, "btc_usdt", view.Symbol)
	assert.Equal(t, OrderBookSource_LocalOrderBook, view.Source)
	assert.Equal(t, [][]string{{"100", "1"}, {"99", "2"}}, view.Bids)
	assert.Equal(t, [][]string{{"101", "1"}, {"102", "2"}}, view.Asks)
	assert.Equal(t, int64(1257894000000), view.Timestamp)
	assert.Equal(t, "2009-11-10T23:00:00.000Z", view.Datetime)
}

func TestOrderBook_ZeroNonceDeltaDoesNotAdvanceSequence(t *testing.T) {
	book := NewOrderBook(testSymbol(t))
	require.NoError(t, book.ApplySnapshot([]PriceLevel{lvl("100", "1")}, nil, 10, 0))

	err := book.ApplyDelta([]PriceLevel{lvl("99", "1")}, nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), book.Nonce())
	assert.Equal(t, 2, len(book.LimitedView(0).Bids))
}
