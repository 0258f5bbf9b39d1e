package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/spooky-finn/go-localbook/config"
	"github.com/spooky-finn/go-localbook/domain"
	"github.com/spooky-finn/go-localbook/helpers"
)

var logger = log.New(log.Writer(), "[usecase] ", log.LstdFlags)

// APIResolver hands out the collaborator APIs for a named provider.
type APIResolver interface {
	SyncAPI(provider string) (domain.ProviderSyncAPI, error)
	StreamAPI(provider string) (domain.ProviderStreamAPI, error)
}

// OrderBookStreamUseCase mediates between the transport layer and the
// per-provider subscription registries.
type OrderBookStreamUseCase struct {
	resolver APIResolver
	conf     *config.Config

	mu         sync.Mutex
	registries map[string]*domain.SubscriptionRegistry

	// warm holds the use case's own background subscriptions, opened when
	// a point-in-time read arrives for a market nobody streams yet.
	warm map[string]*domain.Subscription[*domain.BookView]
}

func NewOrderBookStreamUseCase(resolver APIResolver, conf *config.Config) *OrderBookStreamUseCase {
	return &OrderBookStreamUseCase{
		resolver:   resolver,
		conf:       conf,
		registries: make(map[string]*domain.SubscriptionRegistry),
		warm:       make(map[string]*domain.Subscription[*domain.BookView]),
	}
}

func (u *OrderBookStreamUseCase) registry(provider string) (*domain.SubscriptionRegistry, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if reg, ok := u.registries[provider]; ok {
		return reg, nil
	}

	syncAPI, err := u.resolver.SyncAPI(provider)
	if err != nil {
		return nil, err
	}
	streamAPI, err := u.resolver.StreamAPI(provider)
	if err != nil {
		return nil, err
	}

	reg := domain.NewSubscriptionRegistry(syncAPI, streamAPI, domain.ControllerConfig{
		SnapshotDelayThreshold: u.conf.SnapshotDelayThreshold,
		SnapshotRetryLimit:     u.conf.SnapshotRetryLimit,
		BufferHardCap:          u.conf.GapBufferHardCap,
		SnapshotTimeout:        u.conf.SnapshotTimeout,
		CrossedBookPolicy:      domain.CrossedBookPolicy(u.conf.CrossedBookPolicy),
	}, u.conf.DefaultDepth)

	u.registries[provider] = reg
	return reg, nil
}

// Subscribe opens a consumer stream of resolved views for one market.
func (u *OrderBookStreamUseCase) Subscribe(provider string, symbol *domain.MarketSymbol, depth int) (*domain.Subscription[*domain.BookView], error) {
	reg, err := u.registry(provider)
	if err != nil {
		return nil, err
	}
	return reg.Subscribe(symbol, depth)
}

// GetOrderBookSnapshot is a synchronous read. If the market already has a
// live local book its view is returned; otherwise a background
// subscription is opened so the book warms up, and this call answers with
// a provider-direct snapshot.
func (u *OrderBookStreamUseCase) GetOrderBookSnapshot(ctx context.Context, provider string, symbol *domain.MarketSymbol, limit int) (*domain.BookView, error) {
	reg, err := u.registry(provider)
	if err != nil {
		return nil, err
	}

	view, err := reg.GetCurrentBook(symbol, limit)
	if err == nil {
		if config.DebugMode {
			logger.Printf("serving local book for %s: %s", symbol, helpers.ToJsonString(view))
		}
		return view, nil
	}
	if err != domain.ErrMarketNotFound && err != domain.ErrBookNotReady {
		return nil, err
	}

	u.ensureWarm(reg, provider, symbol)

	syncAPI, err := u.resolver.SyncAPI(provider)
	if err != nil {
		return nil, err
	}

	snapshot, err := syncAPI.OrderBookSnapshot(ctx, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("provider snapshot for %s: %w", symbol, err)
	}

	return &domain.BookView{
		Source:    domain.OrderBookSource_Provider,
		Symbol:    symbol.String(),
		Bids:      snapshot.Bids,
		Asks:      snapshot.Asks,
		Timestamp: snapshot.Timestamp,
		Nonce:     snapshot.Nonce,
	}, nil
}

// ensureWarm keeps one background subscription per market so repeated
// point-in-time reads graduate to the local book.
func (u *OrderBookStreamUseCase) ensureWarm(reg *domain.SubscriptionRegistry, provider string, symbol *domain.MarketSymbol) {
	key := provider + ":" + symbol.String()

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.warm[key]; ok {
		return
	}

	sub, err := reg.Subscribe(symbol, u.conf.DefaultDepth)
	if err != nil {
		logger.Printf("warm-up subscription for %s failed: %s", key, err)
		return
	}
	u.warm[key] = sub

	// Drain the stream; a desync drops the warm slot so the next read
	// restarts the market from scratch.
	go func() {
		for range sub.Stream {
		}
		u.mu.Lock()
		delete(u.warm, key)
		u.mu.Unlock()
	}()

	logger.Printf("opened local order book for %s", key)
}

func (u *OrderBookStreamUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for key, sub := range u.warm {
		sub.Unsubscribe()
		delete(u.warm, key)
	}
}
