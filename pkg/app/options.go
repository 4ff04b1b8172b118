package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"liyu1981.xyz/model-monitor-service/pkg/common"
)

const defaultHttpHostPort = ":1080"

type Options struct {
	AuthEnabled  bool
	DBType       string
	HttpHostPort string
	// GrpcHostPort is empty when the gRPC server is disabled.
	GrpcHostPort string
	DefaultRate  float64
	DefaultBurst int
}

func LoadOptionsFromEnv() (Options, error) {
	var opts Options
	var err error

	if opts.AuthEnabled, err = common.EnvBool(common.EnvKeyMonitorAuthEnabled, true); err != nil {
		return opts, fmt.Errorf("invalid %s, should be a bool value: %w", common.EnvKeyMonitorAuthEnabled, err)
	}

	opts.DBType = strings.TrimSpace(os.Getenv(common.EnvKeyMonitorDBType))
	opts.HttpHostPort = strings.TrimSpace(os.Getenv(common.EnvKeyMonitorHttpHostPort))
	opts.GrpcHostPort = strings.TrimSpace(os.Getenv(common.EnvKeyMonitorGrpcHostPort))

	if opts.HttpHostPort == "" {
		// fallback to default http port
		opts.HttpHostPort = defaultHttpHostPort
	}

	if opts.DefaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyMonitorDefaultRate), 64); err != nil {
		return opts, fmt.Errorf("invalid %s, or not set in .env, should be a float64 value", common.EnvKeyMonitorDefaultRate)
	}

	burst, err := strconv.ParseInt(os.Getenv(common.EnvKeyMonitorDefaultBurst), 10, 64)
	if err != nil {
		return opts, fmt.Errorf("invalid %s, or not set in .env, should be an int value", common.EnvKeyMonitorDefaultBurst)
	}
	opts.DefaultBurst = int(burst)

	return opts, nil
}
