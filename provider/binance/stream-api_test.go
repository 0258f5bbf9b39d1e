package binance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spooky-finn/go-localbook/domain"
)

func TestDepthUpdateUnmarshal(t *testing.T) {
	payload := []byte(`{
		"e": "depthUpdate",
		"E": 1672515782136,
		"s": "BTCUSDT",
		"U": 157,
		"u": 160,
		"b": [["0.0024", "10"]],
		"a": [["0.0026", "100"]]
	}`)

	var data depthUpdateData
	require.NoError(t, json.Unmarshal(payload, &data))

	assert.Equal(t, "depthUpdate", data.Event)
	assert.Equal(t, int64(1672515782136), data.EventTime)
	assert.Equal(t, int64(157), data.FirstUpdateId)
	assert.Equal(t, int64(160), data.FinalUpdateId)
	assert.Equal(t, [][]string{{"0.0024", "10"}}, data.Bids)
	assert.Equal(t, [][]string{{"0.0026", "100"}}, data.Asks)
}

func TestToRawDelta(t *testing.T) {
	symbol, err := domain.NewMarketSymbol("BTC", "USDT")
	require.NoError(t, err)

	delta := toRawDelta(symbol, depthUpdateData{
		EventTime:     1672515782136,
		FirstUpdateId: 157,
		FinalUpdateId: 160,
		Bids:          [][]string{{"0.0024", "10"}},
	})

	assert.Equal(t, int64(160), delta.Nonce)
	assert.Equal(t, int64(157), delta.FirstNonce, "the range start drives the gap check downstream")
	assert.Equal(t, int64(1672515782136), delta.Timestamp)
	assert.Equal(t, [][]string{{"0.0024", "10"}}, delta.Bids)
	assert.Same(t, symbol, delta.Symbol)
}

func TestStreamMessageEnvelope(t *testing.T) {
	var envelope streamMessage
	require.NoError(t, json.Unmarshal([]byte(`{"stream":"btcusdt@depth","data":{"e":"depthUpdate"}}`), &envelope))
	assert.Equal(t, "btcusdt@depth", envelope.Stream)
	assert.Nil(t, envelope.ID)

	// Command acks carry an id and no stream tag.
	var ack streamMessage
	require.NoError(t, json.Unmarshal([]byte(`{"result":null,"id":312}`), &ack))
	assert.Empty(t, ack.Stream)
	require.NotNil(t, ack.ID)
	assert.Equal(t, 312, *ack.ID)
}
