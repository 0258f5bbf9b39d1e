package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/spooky-finn/go-localbook/domain"
)

// SyncAPI fetches order book snapshots over binance's websocket API
// endpoint. One request at a time per connection is matched to its
// response by request id.
type SyncAPI struct {
	conn       *websocket.Conn
	writeMutex sync.Mutex
	in         chan []byte
}

type apiResponse[T any] struct {
	ID     int `json:"id"`
	Status int `json:"status"`
	Result T   `json:"result"`
}

func NewSyncAPI() (*SyncAPI, error) {
	endpoint := os.Getenv("BINANCE_WS_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "wss://ws-api.binance.com:443/ws-api/v3"
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 5 * time.Second,
	}

	conn, _, err := dialer.Dial(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing binance ws api: %w", err)
	}

	api := &SyncAPI{
		conn: conn,
		in:   make(chan []byte, 8),
	}
	go api.listener()

	return api, nil
}

func (api *SyncAPI) OrderBookSnapshot(ctx context.Context, symbol *domain.MarketSymbol, limit int) (*domain.BookSnapshot, error) {
	reqID := requestID()

	params := map[string]interface{}{
		"symbol": strings.ToUpper(symbol.Join("")),
	}
	if limit > 0 {
		params["limit"] = limit
	}

	api.writeMutex.Lock()
	err := api.conn.WriteJSON(map[string]interface{}{
		"id":     reqID,
		"method": "depth",
		"params": params,
	})
	api.writeMutex.Unlock()

	if err != nil {
		return nil, err
	}

	msg, err := api.waitForResponse(ctx, reqID)
	if err != nil {
		return nil, err
	}

	var response apiResponse[domain.BookSnapshot]
	if err := json.Unmarshal(msg, &response); err != nil {
		return nil, err
	}

	return &domain.BookSnapshot{
		Bids:  response.Result.Bids,
		Asks:  response.Result.Asks,
		Nonce: response.Result.Nonce,
	}, nil
}

func (api *SyncAPI) listener() {
	for {
		_, message, err := api.conn.ReadMessage()
		if err != nil {
			logger.Printf("ws api read: %s", err)
			close(api.in)
			return
		}
		api.in <- message
	}
}

func (api *SyncAPI) waitForResponse(ctx context.Context, reqID int) ([]byte, error) {
	for {
		select {
		case msg, ok := <-api.in:
			if !ok {
				return nil, fmt.Errorf("ws api connection closed")
			}

			var envelope struct {
				ID *int `json:"id"`
			}
			if err := json.Unmarshal(msg, &envelope); err != nil {
				return nil, err
			}

			if envelope.ID == nil || *envelope.ID != reqID {
				continue
			}
			return msg, nil

		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (api *SyncAPI) Close() error {
	return api.conn.Close()
}
