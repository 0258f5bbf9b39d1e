package domain

import (
	"context"
	"time"
)

// Subscription is a handle on an asynchronous stream of T. Err carries at
// most one terminal error (e.g. a desync); after it fires the Stream is
// closed. Unsubscribe is idempotent.
type Subscription[T any] struct {
	Stream      <-chan T
	Err         <-chan error
	Topic       string
	Unsubscribe func()
}

// RawDelta is one incremental depth message as produced by a provider
// adapter: raw string entries tagged with the market and a sequence nonce.
// Immutable once received; consumed exactly once by the controller owning
// its market.
type RawDelta struct {
	Symbol *MarketSymbol
	Bids   [][]string
	Asks   [][]string

	// Nonce is the last sequence id the delta covers. Feeds whose events
	// span an id range (binance U..u) set FirstNonce to the first covered
	// id; unit-step feeds leave it zero.
	Nonce      int64
	FirstNonce int64

	Timestamp  int64 // epoch millis, 0 when the feed carries none
	ReceivedAt time.Time
}

// seqStart is the id that must abut the predecessor for the delta to be
// contiguous.
func (d *RawDelta) seqStart() int64 {
	if d.FirstNonce != 0 {
		return d.FirstNonce
	}
	return d.Nonce
}

// BookSnapshot is a full point-in-time book fetched out of band.
type BookSnapshot struct {
	Bids      [][]string `json:"bids"`
	Asks      [][]string `json:"asks"`
	Nonce     int64      `json:"lastUpdateId"`
	Timestamp int64      `json:"timestamp,omitempty"`
}

// ProviderSyncAPI fetches full snapshots. Implementations live outside the
// core; network failures propagate as a failed snapshot attempt.
type ProviderSyncAPI interface {
	OrderBookSnapshot(ctx context.Context, symbol *MarketSymbol, limit int) (*BookSnapshot, error)
}

// ProviderStreamAPI yields an ordered, per-market stream of raw deltas.
type ProviderStreamAPI interface {
	DepthDiffStream(symbol *MarketSymbol) (*Subscription[*RawDelta], error)
}
