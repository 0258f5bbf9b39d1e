package main

import (
	"log"

	"github.com/spooky-finn/go-localbook/config"
	promclient "github.com/spooky-finn/go-localbook/infrastructure/prometheus"
	"github.com/spooky-finn/go-localbook/provider"
	"github.com/spooky-finn/go-localbook/rpc"
	"github.com/spooky-finn/go-localbook/usecase"
)

func main() {
	conf := config.Load()

	connManager, err := provider.NewConnectionManager()
	if err != nil {
		log.Fatalf("failed to init providers: %s", err)
	}
	defer connManager.Close()

	orderBookUseCase := usecase.NewOrderBookStreamUseCase(connManager, conf)
	defer orderBookUseCase.Close()

	go promclient.StartPromClientServer(conf.MetricsAddr)

	server := rpc.NewServer(orderBookUseCase, conf.Providers)

	if err := server.Serve(conf.GrpcPort); err != nil {
		log.Fatalf("grpc server: %s", err)
	}
}
