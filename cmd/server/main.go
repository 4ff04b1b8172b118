package main

import (
	"fmt"
	"log"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/db"
	monitorGrpc "liyu1981.xyz/model-monitor-service/pkg/grpc"
	monitorHttp "liyu1981.xyz/model-monitor-service/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	opts, err := app.LoadOptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	dialector, ok := db.Dialector(opts.DBType)
	if !ok {
		log.Fatal("Unknown " + common.EnvKeyMonitorDBType + ": " + opts.DBType)
	}
	dbInstance := db.GetInstance(dialector)

	logger := common.GetLogger()

	appCore := &app.App{
		Db:      *dbInstance,
		Options: opts,
	}
	appCore.WithDefaultServices()

	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", opts.DefaultRate, opts.DefaultBurst))

	if opts.GrpcHostPort != "" {
		go func() {
			s := monitorGrpc.NewServer(&monitorGrpc.MonitorServer{
				App:              appCore,
				RateLimiterStore: app.NewRateLimiterStore(rate.Limit(opts.DefaultRate), opts.DefaultBurst),
			})
			logger.Info("gRPC server created with:", defaultLimiter)

			listener, err := net.Listen("tcp", opts.GrpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + opts.GrpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	rs := &monitorHttp.RestfulServer{
		Server:           gin.Default(),
		App:              appCore,
		RateLimiterStore: app.NewRateLimiterStore(rate.Limit(opts.DefaultRate), opts.DefaultBurst),
	}
	rs.Setup()

	logger.Info("http server created with:", defaultLimiter, zap.Bool("auth_enabled", opts.AuthEnabled))

	logger.Info("Starting HTTP server on: " + opts.HttpHostPort)
	if err := rs.Server.Run(opts.HttpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
