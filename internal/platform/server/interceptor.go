package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// unaryLoggingInterceptor はロガーをコンテキストに載せ、呼び出し結果を記録します。
func unaryLoggingInterceptor(log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		reqLog := log.With().Str("method", info.FullMethod).Logger()

		resp, err := next(reqLog.WithContext(ctx), req)
		logResult(reqLog, start, err)
		return resp, err
	}
}

func streamLoggingInterceptor(log zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) error {
		start := time.Now()
		reqLog := log.With().Str("method", info.FullMethod).Logger()

		err := next(srv, &loggedStream{ServerStream: ss, ctx: reqLog.WithContext(ss.Context())})
		logResult(reqLog, start, err)
		return err
	}
}

func logResult(log zerolog.Logger, start time.Time, err error) {
	ev := log.Info()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("code", status.Code(err).String()).
		Dur("elapsed", time.Since(start)).
		Msg("rpc finished")
}

type loggedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *loggedStream) Context() context.Context {
	return s.ctx
}
