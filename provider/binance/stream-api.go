package binance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spooky-finn/go-localbook/domain"
)

// depthUpdateData is binance's depth diff payload. FinalUpdateId serves as
// the delta's nonce.
type depthUpdateData struct {
	Event         string     `json:"e"`
	EventTime     int64      `json:"E"`
	Symbol        string     `json:"s"`
	FirstUpdateId int64      `json:"U"`
	FinalUpdateId int64      `json:"u"`
	Bids          [][]string `json:"b"`
	Asks          [][]string `json:"a"`
}

// StreamAPI adapts the multiplexed stream client to the core's
// ProviderStreamAPI: raw depth diffs become classified RawDelta values at
// this boundary, so the core never inspects channel strings.
type StreamAPI struct {
	streamClient *StreamClient
}

func NewStreamAPI(client *StreamClient) *StreamAPI {
	return &StreamAPI{streamClient: client}
}

func (s *StreamAPI) DepthDiffStream(symbol *domain.MarketSymbol) (*domain.Subscription[*domain.RawDelta], error) {
	topic := fmt.Sprintf("%s@depth", symbol.Join(""))

	subscription, err := s.streamClient.Subscribe(topic)
	if err != nil {
		return nil, err
	}

	out := make(chan *domain.RawDelta, 64)

	go func() {
		defer close(out)

		for msg := range subscription.Stream {
			var data depthUpdateData
			if err := json.Unmarshal(msg, &data); err != nil {
				logger.Printf("%s: unparseable depth update: %s", topic, err)
				continue
			}

			out <- toRawDelta(symbol, data)
		}
	}()

	return &domain.Subscription[*domain.RawDelta]{
		Stream:      out,
		Topic:       topic,
		Unsubscribe: subscription.Unsubscribe,
	}, nil
}

// toRawDelta maps a depth diff onto the core's delta type. One binance
// event covers the id range U..u, so both ends are carried: contiguity is
// judged on U, staleness and replay filtering on u.
func toRawDelta(symbol *domain.MarketSymbol, data depthUpdateData) *domain.RawDelta {
	return &domain.RawDelta{
		Symbol:     symbol,
		Bids:       data.Bids,
		Asks:       data.Asks,
		Nonce:      data.FinalUpdateId,
		FirstNonce: data.FirstUpdateId,
		Timestamp:  data.EventTime,
		ReceivedAt: time.Now(),
	}
}
