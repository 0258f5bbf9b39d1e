package binance

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/recws-org/recws"

	"github.com/spooky-finn/go-localbook/domain"
)

const (
	defaultWebsocketEndpoint = "wss://stream.binance.com:9443/stream"
	keepAliveTimeout         = 9 * time.Minute
)

var logger = log.New(log.Writer(), "[binance] ", log.LstdFlags)

// streamMessage is the combined-stream envelope: every payload is tagged
// with the topic it belongs to. Command acks carry an id and no stream.
type streamMessage struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
	ID     *int            `json:"id"`
}

type wsRequest struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []string `json:"params"`
}

type subscriptionEntry struct {
	ch              chan []byte
	subscriberCount int
}

// StreamClient multiplexes one reconnecting websocket connection across
// many topic subscriptions.
type StreamClient struct {
	conn *recws.RecConn

	mu            sync.Mutex
	subscriptions map[string]*subscriptionEntry
}

func NewStreamClient() *StreamClient {
	return &StreamClient{
		subscriptions: make(map[string]*subscriptionEntry),
	}
}

func (c *StreamClient) Connect() error {
	conn := &recws.RecConn{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 5 * time.Second,
		KeepAliveTimeout: keepAliveTimeout,
		NonVerbose:       true,
	}
	conn.Dial(defaultWebsocketEndpoint, nil)

	c.conn = conn
	go c.read()
	return nil
}

// Subscribe attaches to a topic, sharing the channel with any existing
// subscribers of the same topic.
func (c *StreamClient) Subscribe(topic string) (*domain.Subscription[[]byte], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.subscriptions[topic]
	if ok {
		entry.subscriberCount++
	} else {
		entry = &subscriptionEntry{
			ch:              make(chan []byte, 64),
			subscriberCount: 1,
		}
		c.subscriptions[topic] = entry

		err := c.conn.WriteJSON(wsRequest{
			ID:     requestID(),
			Method: "SUBSCRIBE",
			Params: []string{topic},
		})
		if err != nil {
			delete(c.subscriptions, topic)
			return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}

	return &domain.Subscription[[]byte]{
		Stream: entry.ch,
		Topic:  topic,
		Unsubscribe: func() {
			if err := c.unsubscribe(topic); err != nil {
				logger.Printf("unsubscribe %s: %s", topic, err)
			}
		},
	}, nil
}

func (c *StreamClient) unsubscribe(topic string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.subscriptions[topic]
	if !ok {
		return nil
	}

	entry.subscriberCount--
	if entry.subscriberCount > 0 {
		return nil
	}

	close(entry.ch)
	delete(c.subscriptions, topic)

	return c.conn.WriteJSON(wsRequest{
		ID:     requestID(),
		Method: "UNSUBSCRIBE",
		Params: []string{topic},
	})
}

func (c *StreamClient) Close() error {
	c.conn.Close()
	return nil
}

func (c *StreamClient) read() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if !c.conn.IsConnected() {
				// recws redials in the background.
				time.Sleep(time.Second)
				continue
			}
			logger.Printf("read error: %s", err)
			continue
		}

		var envelope streamMessage
		if err := json.Unmarshal(msg, &envelope); err != nil {
			logger.Printf("unparseable message: %s", err)
			continue
		}

		if envelope.Stream == "" {
			continue
		}

		// Send under the lock so unsubscribe cannot close the channel
		// mid-send.
		c.mu.Lock()
		if entry, ok := c.subscriptions[envelope.Stream]; ok {
			select {
			case entry.ch <- envelope.Data:
			default:
				logger.Printf("dropping message for slow topic %s", envelope.Stream)
			}
		}
		c.mu.Unlock()
	}
}

func requestID() int {
	return 10000 + rand.Intn(9989999)
}
