package rpc

import (
	"context"
	"fmt"

	"github.com/spooky-finn/go-localbook/domain"
	gen "github.com/spooky-finn/go-localbook/gen"
)

func (s *server) GetOrderBookSnapshot(ctx context.Context, in *gen.GetOrderBookSnapshotRequest) (*gen.GetOrderBookSnapshotResponse, error) {
	if !s.providers.has(in.Provider) {
		return nil, fmt.Errorf("provider %s is not supported", in.Provider)
	}

	symbol, err := domain.NewMarketSymbolFromString(in.Market)
	if err != nil {
		return nil, fmt.Errorf("invalid market symbol %q: %w", in.Market, err)
	}

	view, err := s.orderBookUseCase.GetOrderBookSnapshot(ctx, in.Provider, symbol, int(in.MaxDepth))
	if err != nil {
		return nil, err
	}

	resp := &gen.GetOrderBookSnapshotResponse{
		Source:    selectOrderBookSource(view.Source),
		Bids:      serializeLevels(view.Bids),
		Asks:      serializeLevels(view.Asks),
		Nonce:     view.Nonce,
		Timestamp: view.Timestamp,
		Datetime:  view.Datetime,
		Crossed:   view.Crossed,
	}
	return resp, nil
}

func (s *server) StreamOrderBook(in *gen.StreamOrderBookRequest, stream gen.MarketDataService_StreamOrderBookServer) error {
	if !s.providers.has(in.Provider) {
		return fmt.Errorf("provider %s is not supported", in.Provider)
	}

	symbol, err := domain.NewMarketSymbolFromString(in.Market)
	if err != nil {
		return fmt.Errorf("invalid market symbol %q: %w", in.Market, err)
	}

	sub, err := s.orderBookUseCase.Subscribe(in.Provider, symbol, int(in.MaxDepth))
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()

		case err := <-sub.Err:
			return err

		case view, ok := <-sub.Stream:
			if !ok {
				// Market stream ended; the subscription's Err carries the
				// cause if there is one.
				select {
				case err := <-sub.Err:
					return err
				default:
					return nil
				}
			}

			update := &gen.OrderBookUpdate{
				Source:    selectOrderBookSource(view.Source),
				Bids:      serializeLevels(view.Bids),
				Asks:      serializeLevels(view.Asks),
				Nonce:     view.Nonce,
				Timestamp: view.Timestamp,
				Datetime:  view.Datetime,
				Crossed:   view.Crossed,
			}
			if err := stream.Send(update); err != nil {
				return err
			}
		}
	}
}

func serializeLevels(levels [][]string) []*gen.OrderBookLevel {
	out := make([]*gen.OrderBookLevel, 0, len(levels))
	for _, level := range levels {
		if len(level) < 2 {
			continue
		}
		out = append(out, &gen.OrderBookLevel{
			Price: level[0],
			Qty:   level[1],
		})
	}
	return out
}

func selectOrderBookSource(source domain.OrderBookSource) gen.OrderBookSource {
	switch source {
	case domain.OrderBookSource_LocalOrderBook:
		return gen.OrderBookSource_LocalOrderBook
	case domain.OrderBookSource_Provider:
		return gen.OrderBookSource_Provider
	default:
		return gen.OrderBookSource_Unknown
	}
}
