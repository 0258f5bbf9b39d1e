package domain

import (
	"sync"
	"time"
)

type OrderBookSource string

const (
	OrderBookSource_Provider       OrderBookSource = "Provider"
	OrderBookSource_LocalOrderBook OrderBookSource = "LocalOrderBook"
)

// BookView is the consumer-facing, depth-limited copy of a book. Levels
// are [price, size] decimal strings.
type BookView struct {
	Source    OrderBookSource `json:"source"`
	Symbol    string          `json:"symbol"`
	Bids      [][]string      `json:"bids"`
	Asks      [][]string      `json:"asks"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Datetime  string          `json:"datetime,omitempty"`
	Nonce     int64           `json:"nonce"`

	// Crossed reports best bid >= best ask after the batch that produced
	// this view. A data-quality warning, not a correction.
	Crossed bool `json:"crossed,omitempty"`
}

// OrderBook is the in-memory state of one market's book. It is owned and
// mutated by exactly one ReconciliationController; everyone else reads it
// through LimitedView. The mutex is scoped to this book only.
type OrderBook struct {
	Symbol *MarketSymbol

	mu        sync.Mutex
	bids      *PriceLevelSide
	asks      *PriceLevelSide
	nonce     int64
	timestamp int64
	crossed   bool
}

func NewOrderBook(symbol *MarketSymbol) *OrderBook {
	return &OrderBook{
		Symbol: symbol,
		bids:   NewPriceLevelSide(BidSide),
		asks:   NewPriceLevelSide(AskSide),
	}
}

// ApplySnapshot replaces both sides wholesale. Used only on
// (re)initialization. Returns ErrCrossedBook if the snapshot itself is
// crossed; the state is kept as delivered.
func (ob *OrderBook) ApplySnapshot(bids, asks []PriceLevel, nonce, timestamp int64) error {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.bids = NewPriceLevelSide(BidSide)
	ob.asks = NewPriceLevelSide(AskSide)

	for _, level := range bids {
		ob.bids.Upsert(level)
	}
	for _, level := range asks {
		ob.asks.Upsert(level)
	}

	ob.nonce = nonce
	if timestamp != 0 {
		ob.timestamp = timestamp
	}

	return ob.checkCrossed()
}

// ApplyDelta upserts one feed message's entries into the book. A delta
// with a non-increasing nonce is rejected with ErrStaleDelta and leaves
// the book untouched. Entries are applied in feed order. Returns
// ErrCrossedBook (applied, flagged) if the batch crossed the book.
func (ob *OrderBook) ApplyDelta(bids, asks []PriceLevel, nonce, timestamp int64) error {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	if nonce != 0 && nonce <= ob.nonce {
		return ErrStaleDelta
	}

	for _, level := range bids {
		ob.bids.Upsert(level)
	}
	for _, level := range asks {
		ob.asks.Upsert(level)
	}

	if nonce != 0 {
		ob.nonce = nonce
	}
	if timestamp != 0 {
		ob.timestamp = timestamp
	}

	return ob.checkCrossed()
}

// checkCrossed records and reports a crossed book. Callers hold ob.mu.
func (ob *OrderBook) checkCrossed() error {
	bestBid, okBid := ob.bids.Best()
	bestAsk, okAsk := ob.asks.Best()

	ob.crossed = okBid && okAsk && bestBid.Price.Cmp(bestAsk.Price) >= 0
	if ob.crossed {
		return ErrCrossedBook
	}
	return nil
}

func (ob *OrderBook) Nonce() int64 {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.nonce
}

// LimitedView returns a depth-limited copy of the current state.
// limit <= 0 means full depth.
func (ob *OrderBook) LimitedView(limit int) *BookView {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	view := &BookView{
		Source:    OrderBookSource_LocalOrderBook,
		Symbol:    ob.Symbol.String(),
		Bids:      ob.bids.Serialize(limit),
		Asks:      ob.asks.Serialize(limit),
		Timestamp: ob.timestamp,
		Nonce:     ob.nonce,
		Crossed:   ob.crossed,
	}

	if ob.timestamp != 0 {
		view.Datetime = time.UnixMilli(ob.timestamp).UTC().Format("2006-01-02T15:04:05.000Z")
	}

	return view
}
