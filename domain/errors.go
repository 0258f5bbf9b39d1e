package domain

import "errors"

var (
	// ErrMalformedLevel marks a single price level entry that cannot be
	// parsed into exact decimals. Depending on the batch mode the entry is
	// skipped or the whole batch is aborted.
	ErrMalformedLevel = errors.New("malformed price level")

	// ErrStaleDelta marks a delta whose nonce is not greater than the
	// book's current nonce. Dropped, logged, never fatal.
	ErrStaleDelta = errors.New("stale order book delta")

	// ErrCrossedBook means best bid >= best ask after an applied batch.
	// The book is not auto-corrected; the condition is reported with the
	// update that produced it.
	ErrCrossedBook = errors.New("crossed order book")

	// ErrUnrecoverableGap means the buffered deltas cannot be spliced onto
	// any fetched snapshot: even the oldest buffered delta is already ahead
	// of the snapshot nonce.
	ErrUnrecoverableGap = errors.New("unrecoverable sequence gap")

	// ErrBufferOverflow means the gap buffer hit its hard cap before a
	// snapshot became usable. Handled exactly like ErrUnrecoverableGap.
	ErrBufferOverflow = errors.New("gap buffer overflow")

	// ErrOrderBookDesync is fatal for one market's subscription: the
	// snapshot retry budget is exhausted. The consumer must resubscribe.
	ErrOrderBookDesync = errors.New("order book desynchronized")

	// ErrBookNotReady is returned for point-in-time reads while the market
	// has no live book yet.
	ErrBookNotReady = errors.New("order book not ready")

	ErrMarketNotFound = errors.New("market not found")
)
