package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderSet(t *testing.T) {
	providers := newProviderSet([]string{"binance", "kraken"})

	assert.True(t, providers.has("binance"))
	assert.True(t, providers.has("kraken"))
	assert.False(t, providers.has("kucoin"))
	assert.False(t, providers.has(""))

	empty := newProviderSet(nil)
	assert.False(t, empty.has("binance"))
}
