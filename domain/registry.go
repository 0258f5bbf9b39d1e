package domain

import (
	"sync"

	promclient "github.com/spooky-finn/go-localbook/infrastructure/prometheus"
)

type consumer struct {
	ch    chan *BookView
	errCh chan error
	depth int
}

type marketEntry struct {
	controller *ReconciliationController
	feed       *Subscription[*RawDelta]
	consumers  map[*consumer]struct{}
	done       chan struct{}
}

// SubscriptionRegistry fans a single upstream delta feed per market out to
// many consumers. The first subscriber for a market creates its
// reconciliation controller; the last one leaving tears it down.
type SubscriptionRegistry struct {
	syncAPI      ProviderSyncAPI
	streamAPI    ProviderStreamAPI
	conf         ControllerConfig
	defaultDepth int

	mu      sync.Mutex
	markets map[string]*marketEntry
}

func NewSubscriptionRegistry(syncAPI ProviderSyncAPI, streamAPI ProviderStreamAPI, conf ControllerConfig, defaultDepth int) *SubscriptionRegistry {
	if defaultDepth <= 0 {
		defaultDepth = 100
	}

	return &SubscriptionRegistry{
		syncAPI:      syncAPI,
		streamAPI:    streamAPI,
		conf:         conf,
		defaultDepth: defaultDepth,
		markets:      make(map[string]*marketEntry),
	}
}

// Subscribe registers a consumer for resolved views of one market,
// truncated to depth levels per side (0 = registry default). Delivery is
// fan-out, not reliable: a consumer that does not drain its channel skips
// intermediate views.
func (r *SubscriptionRegistry) Subscribe(symbol *MarketSymbol, depth int) (*Subscription[*BookView], error) {
	if depth <= 0 {
		depth = r.defaultDepth
	}

	r.mu.Lock()

	entry, ok := r.markets[symbol.String()]
	if !ok {
		feed, err := r.streamAPI.DepthDiffStream(symbol)
		if err != nil {
			r.mu.Unlock()
			return nil, err
		}

		entry = &marketEntry{
			feed:      feed,
			consumers: make(map[*consumer]struct{}),
			done:      make(chan struct{}),
		}
		entry.controller = NewReconciliationController(symbol, r.syncAPI, r.conf, func(err error) {
			r.failMarket(symbol, err)
		})

		r.markets[symbol.String()] = entry
		promclient.OpenOrderBooksGauge.Inc()

		go r.marketLoop(symbol, entry)
	}

	cons := &consumer{
		ch:    make(chan *BookView, 16),
		errCh: make(chan error, 1),
		depth: depth,
	}
	entry.consumers[cons] = struct{}{}

	r.mu.Unlock()

	var once sync.Once
	return &Subscription[*BookView]{
		Stream: cons.ch,
		Err:    cons.errCh,
		Topic:  symbol.String(),
		Unsubscribe: func() {
			once.Do(func() { r.unsubscribe(symbol, cons) })
		},
	}, nil
}

// GetCurrentBook is a synchronous point-in-time read. ErrMarketNotFound
// when nothing subscribed to the market, ErrBookNotReady while it has no
// usable book.
func (r *SubscriptionRegistry) GetCurrentBook(symbol *MarketSymbol, limit int) (*BookView, error) {
	r.mu.Lock()
	entry, ok := r.markets[symbol.String()]
	r.mu.Unlock()

	if !ok {
		return nil, ErrMarketNotFound
	}
	return entry.controller.View(limit)
}

// marketLoop consumes the market's delta feed in strict arrival order.
// This goroutine is the only caller of HandleDelta for its market, which
// is what keeps two deltas from ever being mid-application concurrently.
func (r *SubscriptionRegistry) marketLoop(symbol *MarketSymbol, entry *marketEntry) {
	for {
		select {
		case <-entry.done:
			return

		case err := <-entry.feed.Err:
			if err == nil {
				err = ErrOrderBookDesync
			}
			r.failMarket(symbol, err)
			return

		case delta, ok := <-entry.feed.Stream:
			if !ok {
				// Upstream feed gone; consumers must resubscribe.
				r.failMarket(symbol, ErrOrderBookDesync)
				return
			}

			applied, err := entry.controller.HandleDelta(delta)
			if err == ErrCrossedBook {
				logger.Printf("%s: crossed book reported to consumers", symbol)
			}
			if applied {
				r.fanOut(entry)
			}
		}
	}
}

func (r *SubscriptionRegistry) fanOut(entry *marketEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for cons := range entry.consumers {
		view, err := entry.controller.View(cons.depth)
		if err != nil {
			continue
		}

		select {
		case cons.ch <- view:
		default:
		}
	}
}

// failMarket terminates one market's subscriptions with err. Other
// markets are unaffected.
func (r *SubscriptionRegistry) failMarket(symbol *MarketSymbol, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.markets[symbol.String()]
	if !ok {
		return
	}

	for cons := range entry.consumers {
		select {
		case cons.errCh <- err:
		default:
		}
		close(cons.ch)
	}

	r.teardownLocked(symbol, entry)
}

func (r *SubscriptionRegistry) unsubscribe(symbol *MarketSymbol, cons *consumer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.markets[symbol.String()]
	if !ok {
		return
	}

	if _, ok := entry.consumers[cons]; !ok {
		return
	}
	delete(entry.consumers, cons)
	close(cons.ch)

	if len(entry.consumers) == 0 {
		r.teardownLocked(symbol, entry)
	}
}

// teardownLocked frees the market's controller, buffer and book. Callers
// hold r.mu.
func (r *SubscriptionRegistry) teardownLocked(symbol *MarketSymbol, entry *marketEntry) {
	close(entry.done)
	entry.feed.Unsubscribe()
	entry.controller.Close()
	delete(r.markets, symbol.String())
	promclient.OpenOrderBooksGauge.Dec()
}
