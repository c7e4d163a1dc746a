package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tgpolish/internal/logging"
	pb "github.com/dmitrijs2005/tgpolish/internal/proto"
	"github.com/dmitrijs2005/tgpolish/internal/session"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedSessionServiceServer
	address   string
	manager   *session.Manager
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, m *session.Manager, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		manager:   m,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterSessionServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
