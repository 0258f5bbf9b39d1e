package rpc

import (
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"

	gen "github.com/spooky-finn/go-localbook/gen"
	"github.com/spooky-finn/go-localbook/usecase"
)

var logger = log.New(log.Writer(), "[rpc] ", log.LstdFlags)

// providerSet is the allow-list of provider names requests may address.
type providerSet map[string]struct{}

func newProviderSet(names []string) providerSet {
	set := make(providerSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s providerSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

type server struct {
	gen.UnimplementedMarketDataServiceServer

	orderBookUseCase *usecase.OrderBookStreamUseCase
	providers        providerSet
}

func NewServer(orderBookUseCase *usecase.OrderBookStreamUseCase, providers []string) *server {
	return &server{
		orderBookUseCase: orderBookUseCase,
		providers:        newProviderSet(providers),
	}
}

// Serve blocks listening for gRPC connections on the given port.
func (s *server) Serve(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	grpcServer := grpc.NewServer()
	gen.RegisterMarketDataServiceServer(grpcServer, s)

	logger.Printf("grpc server listening at %s", lis.Addr())
	return grpcServer.Serve(lis)
}
