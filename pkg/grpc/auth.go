package grpc

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/common"
)

const authorizationKey = "authorization"

// bearerToken reads "authorization: Bearer <token>" from incoming metadata.
func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, value := range md.Get(authorizationKey) {
		if token, found := strings.CutPrefix(value, "Bearer "); found {
			return strings.TrimSpace(token)
		}
	}
	return ""
}

// CreateAuthInterceptor applies the same user and model checks as the HTTP
// routes. A request without a model id passes through so the handler can
// report the validation error in-band.
func (s *MonitorServer) CreateAuthInterceptor(fullMethods []string) grpc.UnaryServerInterceptor {
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
		if _, ok := targetMethods[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		logger := common.GetLoggerWith(common.LoggerNameGrpcServer)
		tx := s.App.Db.Conn.WithContext(ctx)

		user, err := s.App.Auth.AuthorizeUser(tx, bearerToken(ctx))
		if err != nil {
			if !errors.Is(err, app.ErrUnauthorized) {
				logger.Error("Failed to authorize user", zap.Error(err))
			}
			return nil, status.Errorf(codes.Unauthenticated, "unauthenticated")
		}

		r, ok := req.(*structpb.Struct)
		if !ok {
			return handler(ctx, req)
		}
		modelID := stringField(r, fieldModelID)
		if modelID == "" {
			return handler(ctx, req)
		}

		allowed, err := s.App.Auth.AuthorizeUserForModel(tx, user, modelID)
		if err != nil {
			logger.Error("Failed to authorize user for model", zap.String("model_id", modelID), zap.Error(err))
		}
		if err != nil || !allowed {
			return nil, status.Errorf(codes.NotFound, "model not found")
		}

		return handler(ctx, req)
	}
}
