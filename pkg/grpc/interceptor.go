package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/metrics"
)

func (s *MonitorServer) CreateRateLimitInterceptor(fullMethods []string) grpc.UnaryServerInterceptor {
	targetMethods := common.Reducer(fullMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethods[info.FullMethod]; ok {
			if r, ok := req.(*structpb.Struct); ok {
				modelID := stringField(r, fieldModelID)
				if !s.CheckModelLimiter(modelID) {
					metrics.GrpcRateLimitedTotal.Inc()
					common.GetLoggerWith(common.LoggerNameGrpcServer).Info("Rate limited",
						zap.String("method", info.FullMethod),
						zap.String("model_id", modelID),
					)
					return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
				}
			}
		}

		return handler(ctx, req)
	}
}
