package provider

import (
	"fmt"

	"github.com/spooky-finn/go-localbook/domain"
	"github.com/spooky-finn/go-localbook/provider/binance"
)

// ConnectionManager dials the configured providers and resolves their
// sync/stream APIs by name.
type ConnectionManager struct {
	binanceStream *binance.StreamClient
	binanceSync   *binance.SyncAPI
	binanceAPI    *binance.StreamAPI
}

func NewConnectionManager() (*ConnectionManager, error) {
	streamClient := binance.NewStreamClient()
	if err := streamClient.Connect(); err != nil {
		return nil, fmt.Errorf("connecting binance stream: %w", err)
	}

	syncAPI, err := binance.NewSyncAPI()
	if err != nil {
		return nil, err
	}

	return &ConnectionManager{
		binanceStream: streamClient,
		binanceSync:   syncAPI,
		binanceAPI:    binance.NewStreamAPI(streamClient),
	}, nil
}

func (cm *ConnectionManager) SyncAPI(provider string) (domain.ProviderSyncAPI, error) {
	switch provider {
	case "binance":
		return cm.binanceSync, nil
	}
	return nil, fmt.Errorf("unknown provider: %s", provider)
}

func (cm *ConnectionManager) StreamAPI(provider string) (domain.ProviderStreamAPI, error) {
	switch provider {
	case "binance":
		return cm.binanceAPI, nil
	}
	return nil, fmt.Errorf("unknown provider: %s", provider)
}

func (cm *ConnectionManager) Close() {
	cm.binanceStream.Close()
	cm.binanceSync.Close()
}
