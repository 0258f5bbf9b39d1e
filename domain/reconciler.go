package domain

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/spooky-finn/go-localbook/config"
	promclient "github.com/spooky-finn/go-localbook/infrastructure/prometheus"
)

var logger = log.New(os.Stdout, "[localbook] ", log.LstdFlags)

type ControllerState string

const (
	StateNoBook            ControllerState = "NO_BOOK"
	StateBuffering         ControllerState = "BUFFERING"
	StateSnapshotRequested ControllerState = "SNAPSHOT_REQUESTED"
	StateLive              ControllerState = "LIVE"

	// StateResyncing buffers exactly like StateBuffering while the
	// existing, now stale, live book keeps serving reads.
	StateResyncing ControllerState = "RESYNCING"
)

type CrossedBookPolicy string

const (
	// CrossedBookFlag attaches a warning to the delivered view and keeps
	// going. Masking a genuine protocol bug would hide real desyncs.
	CrossedBookFlag CrossedBookPolicy = "flag"
	// CrossedBookResync treats a crossing like a sequence gap.
	CrossedBookResync CrossedBookPolicy = "resync"
)

type ControllerConfig struct {
	// SnapshotDelayThreshold is how many deltas to buffer before fetching
	// a snapshot. REST snapshots are slower and staler than the feed;
	// waiting first makes the snapshot land behind the buffer, the only
	// case Reconcile can splice.
	SnapshotDelayThreshold int
	SnapshotRetryLimit     int
	BufferHardCap          int
	SnapshotTimeout        time.Duration
	MalformedMode          MalformedMode
	CrossedBookPolicy      CrossedBookPolicy
	Normalize              NormalizeLevel
}

func (c ControllerConfig) withDefaults() ControllerConfig {
	if c.SnapshotDelayThreshold <= 0 {
		c.SnapshotDelayThreshold = 5
	}
	if c.SnapshotRetryLimit <= 0 {
		c.SnapshotRetryLimit = 3
	}
	if c.BufferHardCap <= 0 {
		c.BufferHardCap = 4096
	}
	if c.SnapshotTimeout <= 0 {
		c.SnapshotTimeout = 15 * time.Second
	}
	if c.CrossedBookPolicy == "" {
		c.CrossedBookPolicy = CrossedBookFlag
	}
	if c.Normalize == nil {
		c.Normalize = ParseLevel
	}
	return c
}

// ReconciliationController runs the per-market state machine that bridges
// the REST snapshot with the asynchronous delta feed:
//
//	NO_BOOK -> BUFFERING -> SNAPSHOT_REQUESTED -> LIVE -> RESYNCING -> ...
//
// All delta handling for one market is serialized by the controller's own
// mutex; distinct markets never share a lock.
type ReconciliationController struct {
	symbol  *MarketSymbol
	syncAPI ProviderSyncAPI
	conf    ControllerConfig

	// onDesync is invoked once per fatal desync, after the retry budget is
	// exhausted. The controller is back in NO_BOOK by then.
	onDesync func(error)

	mu              sync.Mutex
	state           ControllerState
	book            *OrderBook
	buffer          *GapBuffer
	snapshotRetries int
	generation      int
	closed          bool
}

func NewReconciliationController(symbol *MarketSymbol, syncAPI ProviderSyncAPI, conf ControllerConfig, onDesync func(error)) *ReconciliationController {
	conf = conf.withDefaults()
	if onDesync == nil {
		onDesync = func(error) {}
	}

	return &ReconciliationController{
		symbol:   symbol,
		syncAPI:  syncAPI,
		conf:     conf,
		onDesync: onDesync,
		state:    StateNoBook,
		book:     NewOrderBook(symbol),
		buffer:   NewGapBuffer(conf.BufferHardCap),
	}
}

func (c *ReconciliationController) State() ControllerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns a depth-limited copy of the book, or ErrBookNotReady when
// the market has no usable book yet. During a resync the stale book keeps
// serving until the fresh snapshot lands.
func (c *ReconciliationController) View(limit int) (*BookView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateLive && c.state != StateResyncing {
		return nil, ErrBookNotReady
	}
	return c.book.LimitedView(limit), nil
}

// HandleDelta feeds one raw delta through the state machine. It reports
// whether the delta was applied to a live book, i.e. whether consumers
// should be handed a fresh view. Deltas for one market must be passed in
// strict arrival order.
func (c *ReconciliationController) HandleDelta(delta *RawDelta) (applied bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, nil
	}

	switch c.state {
	case StateNoBook:
		c.state = StateBuffering
		c.bufferDelta(delta)
		return false, nil

	case StateBuffering, StateSnapshotRequested, StateResyncing:
		c.bufferDelta(delta)
		return false, nil

	case StateLive:
		return c.applyLive(delta)
	}

	return false, nil
}

// bufferDelta pushes a delta, kicks off the snapshot fetch once enough
// have accumulated, and converts an overflow into a retry. Callers hold
// c.mu.
func (c *ReconciliationController) bufferDelta(delta *RawDelta) {
	if _, err := c.buffer.Push(delta); err != nil {
		logger.Printf("%s: %s, consuming one snapshot retry", c.symbol, err)
		c.retrySnapshot()
		return
	}

	if c.buffer.ShouldRequestSnapshot(c.conf.SnapshotDelayThreshold) {
		c.requestSnapshot()
		if c.state == StateBuffering {
			c.state = StateSnapshotRequested
		}
	}
}

// applyLive applies a delta directly to the live book. Callers hold c.mu.
func (c *ReconciliationController) applyLive(delta *RawDelta) (bool, error) {
	if delta.Nonce != 0 && c.book.Nonce() != 0 && delta.seqStart() > c.book.Nonce()+1 {
		logger.Printf("%s: implied gap: delta starts at %d, book nonce %d, resyncing", c.symbol, delta.seqStart(), c.book.Nonce())
		c.enterResync(delta)
		return false, nil
	}

	bids, asks, err := c.normalizeDelta(delta)
	if err != nil {
		// AbortOnMalformed mode: the whole batch is dropped.
		logger.Printf("%s: dropping delta nonce %d: %s", c.symbol, delta.Nonce, err)
		return false, err
	}

	err = c.book.ApplyDelta(bids, asks, delta.Nonce, delta.Timestamp)
	switch {
	case err == ErrStaleDelta:
		promclient.StaleDeltasTotal.Inc()
		if config.DebugMode {
			logger.Printf("%s: stale delta nonce %d dropped (book at %d)", c.symbol, delta.Nonce, c.book.Nonce())
		}
		return false, nil

	case err == ErrCrossedBook:
		if c.conf.CrossedBookPolicy == CrossedBookResync {
			logger.Printf("%s: crossed book after nonce %d, treating as gap", c.symbol, delta.Nonce)
			c.enterResync(nil)
			return false, nil
		}
		// Flag policy: the view carries the warning.
		return true, ErrCrossedBook

	case err != nil:
		return false, err
	}

	return true, nil
}

func (c *ReconciliationController) normalizeDelta(delta *RawDelta) (bids, asks []PriceLevel, err error) {
	bids, skippedBids, err := normalizeBatch(delta.Bids, c.conf.Normalize, c.conf.MalformedMode)
	if err != nil {
		return nil, nil, err
	}

	asks, skippedAsks, err := normalizeBatch(delta.Asks, c.conf.Normalize, c.conf.MalformedMode)
	if err != nil {
		return nil, nil, err
	}

	if n := skippedBids + skippedAsks; n > 0 {
		promclient.MalformedLevelsTotal.Add(float64(n))
		logger.Printf("%s: skipped %d malformed levels in delta nonce %d", c.symbol, n, delta.Nonce)
	}

	return bids, asks, nil
}

// enterResync starts a fresh buffer while the stale book keeps serving
// reads. The carried delta, if any, seeds the new buffer. Callers hold
// c.mu.
func (c *ReconciliationController) enterResync(delta *RawDelta) {
	promclient.ResyncsTotal.Inc()
	c.generation++
	c.buffer.Reset()
	c.state = StateResyncing

	if delta != nil {
		c.bufferDelta(delta)
	}
}

// requestSnapshot launches the asynchronous fetch. Callers hold c.mu.
func (c *ReconciliationController) requestSnapshot() {
	c.buffer.MarkSnapshotRequested()
	go c.fetchSnapshot(c.generation)
}

func (c *ReconciliationController) fetchSnapshot(generation int) {
	ctx, cancel := context.WithTimeout(context.Background(), c.conf.SnapshotTimeout)
	defer cancel()

	snapshot, err := c.syncAPI.OrderBookSnapshot(ctx, c.symbol, 0)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A response that outlived its controller or its generation (resync,
	// retry, unsubscribe) is discarded on arrival.
	if c.closed || generation != c.generation {
		return
	}

	if err != nil {
		logger.Printf("%s: snapshot fetch failed: %s", c.symbol, err)
		c.retrySnapshot()
		return
	}

	c.applySnapshot(snapshot)
}

// applySnapshot splices the fetched snapshot with the buffered deltas and
// goes live. Callers hold c.mu.
func (c *ReconciliationController) applySnapshot(snapshot *BookSnapshot) {
	replay, err := c.buffer.Reconcile(snapshot.Nonce)
	if err != nil {
		logger.Printf("%s: %s (snapshot nonce %d, %d buffered)", c.symbol, err, snapshot.Nonce, c.buffer.Len())
		c.retrySnapshot()
		return
	}

	bids, _, err := normalizeBatch(snapshot.Bids, c.conf.Normalize, c.conf.MalformedMode)
	if err == nil {
		var asks []PriceLevel
		asks, _, err = normalizeBatch(snapshot.Asks, c.conf.Normalize, c.conf.MalformedMode)
		if err == nil {
			err = c.applyReplay(bids, asks, snapshot, replay)
		}
	}
	if err != nil {
		logger.Printf("%s: unusable snapshot: %s", c.symbol, err)
		c.retrySnapshot()
		return
	}

	c.buffer.Reset()
	c.snapshotRetries = 0
	c.state = StateLive

	if config.DebugMode {
		logger.Printf("%s: live at nonce %d after replaying %d deltas", c.symbol, c.book.Nonce(), len(replay))
	}
}

func (c *ReconciliationController) applyReplay(bids, asks []PriceLevel, snapshot *BookSnapshot, replay []*RawDelta) error {
	fresh := NewOrderBook(c.symbol)
	if err := fresh.ApplySnapshot(bids, asks, snapshot.Nonce, snapshot.Timestamp); err != nil && err != ErrCrossedBook {
		return err
	}

	for _, delta := range replay {
		if delta.seqStart() > fresh.Nonce()+1 {
			return ErrUnrecoverableGap
		}

		dBids, dAsks, err := c.normalizeDelta(delta)
		if err != nil {
			return err
		}

		err = fresh.ApplyDelta(dBids, dAsks, delta.Nonce, delta.Timestamp)
		if err != nil && err != ErrStaleDelta && err != ErrCrossedBook {
			return err
		}
	}

	// Consumers must never observe a nonce regression, so a resync may
	// only swap in a book at least as new as the stale one it replaces.
	if fresh.Nonce() < c.book.Nonce() {
		return ErrUnrecoverableGap
	}

	c.book = fresh
	return nil
}

// retrySnapshot consumes one unit of the retry budget. Callers hold c.mu.
func (c *ReconciliationController) retrySnapshot() {
	c.snapshotRetries++
	c.generation++

	if c.snapshotRetries > c.conf.SnapshotRetryLimit {
		promclient.DesyncsTotal.Inc()
		logger.Printf("%s: snapshot retry budget exhausted (%d attempts), desync", c.symbol, c.snapshotRetries)

		c.state = StateNoBook
		c.book = NewOrderBook(c.symbol)
		c.buffer.Reset()
		c.snapshotRetries = 0

		go c.onDesync(ErrOrderBookDesync)
		return
	}

	c.buffer.Clear()
	c.buffer.MarkSnapshotRequested()
	go c.fetchSnapshot(c.generation)
}

// Close stops the controller: further deltas are ignored and any in-flight
// snapshot response is discarded on arrival.
func (c *ReconciliationController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.generation++
	c.buffer.Reset()
	c.state = StateNoBook
}
