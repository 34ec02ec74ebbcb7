package grpc

import (
	"context"
	"time"

	"catalog_service/pkg/metrics"

	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// NewServer returns a gRPC server with the catalog service registered and
// the logging and metrics interceptors installed.
func NewServer(handler CatalogServer, logger *logrus.Logger, m *metrics.Metrics) *grpclib.Server {
	interceptors := []grpclib.UnaryServerInterceptor{LoggingInterceptor(logger)}
	if m != nil {
		interceptors = append(interceptors, MetricsInterceptor(m))
	}

	s := grpclib.NewServer(grpclib.ChainUnaryInterceptor(interceptors...))
	RegisterCatalogServer(s, handler)
	return s
}

func LoggingInterceptor(logger *logrus.Logger) grpclib.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		entry := logger.WithFields(logrus.Fields{
			"method":     info.FullMethod,
			"code":       status.Code(err).String(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.Warnf("gRPC call failed: %v", err)
		} else {
			entry.Info("gRPC call completed")
		}
		return resp, err
	}
}

func MetricsInterceptor(m *metrics.Metrics) grpclib.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		m.GRPCRequestsTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		m.GRPCRequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}
