package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"liyu1981.xyz/model-monitor-service/pkg/app"
)

// AuthorizedMethods require a token authorized for the request's model.
var AuthorizedMethods = []string{
	ListMonitorsFullMethod,
	GetMonitorFullMethod,
	SetLimiterFullMethod,
}

// RateLimitedMethods are the calls keyed by model id in the rate limiter.
var RateLimitedMethods = []string{
	ListMonitorsFullMethod,
	GetMonitorFullMethod,
}

type MonitorServer struct {
	App              *app.App
	RateLimiterStore *app.RateLimiterStore
}

func (s *MonitorServer) CheckModelLimiter(modelID string) bool {
	return s.RateLimiterStore.Allow(app.ModelKey(modelID))
}

// NewServer builds a grpc.Server with the monitor service, the auth and rate
// limit interceptors and the standard health service registered.
func NewServer(ms *MonitorServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		ms.CreateAuthInterceptor(AuthorizedMethods),
		ms.CreateRateLimitInterceptor(RateLimitedMethods),
	))
	s := grpc.NewServer(opts...)

	RegisterMonitorServiceServer(s, ms)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(MonitorServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	return s
}
