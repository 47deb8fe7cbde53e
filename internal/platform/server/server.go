package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/ogurasousui/edu-centre-directory/internal/adapters/grpc/directoryrpc"
	"github.com/ogurasousui/edu-centre-directory/internal/adapters/grpc/handler"
	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	log        zerolog.Logger
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, svc directory.UseCase, log zerolog.Logger, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unaryLoggingInterceptor(log)),
		grpc.ChainStreamInterceptor(streamLoggingInterceptor(log)),
	}, opts...)

	srv := grpc.NewServer(opts...)
	directoryrpc.RegisterDirectoryServiceServer(srv, handler.NewDirectoryGrpcHandler(svc))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		log:        log,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は既存のリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	s.log.Info().Str("addr", lis.Addr().String()).Msg("gRPC server listening")

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
