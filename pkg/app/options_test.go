package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/model-monitor-service/pkg/common"
)

func TestLoadOptionsFromEnv(t *testing.T) {
	t.Setenv(common.EnvKeyMonitorAuthEnabled, "false")
	t.Setenv(common.EnvKeyMonitorDBType, "memory")
	t.Setenv(common.EnvKeyMonitorHttpHostPort, "")
	t.Setenv(common.EnvKeyMonitorGrpcHostPort, " :10801 ")
	t.Setenv(common.EnvKeyMonitorDefaultRate, "2.5")
	t.Setenv(common.EnvKeyMonitorDefaultBurst, "5")

	opts, err := LoadOptionsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Options{
		AuthEnabled:  false,
		DBType:       "memory",
		HttpHostPort: ":1080",
		GrpcHostPort: ":10801",
		DefaultRate:  2.5,
		DefaultBurst: 5,
	}, opts)
}

func TestLoadOptionsFromEnv_Errors(t *testing.T) {
	t.Setenv(common.EnvKeyMonitorAuthEnabled, "")
	t.Setenv(common.EnvKeyMonitorDefaultRate, "fast")
	t.Setenv(common.EnvKeyMonitorDefaultBurst, "5")

	_, err := LoadOptionsFromEnv()
	assert.ErrorContains(t, err, common.EnvKeyMonitorDefaultRate)

	t.Setenv(common.EnvKeyMonitorDefaultRate, "1")
	t.Setenv(common.EnvKeyMonitorDefaultBurst, "")
	_, err = LoadOptionsFromEnv()
	assert.ErrorContains(t, err, common.EnvKeyMonitorDefaultBurst)

	t.Setenv(common.EnvKeyMonitorAuthEnabled, "maybe")
	_, err = LoadOptionsFromEnv()
	assert.ErrorContains(t, err, common.EnvKeyMonitorAuthEnabled)
}

func TestLoadOptionsFromEnv_AuthDefaultsOn(t *testing.T) {
	t.Setenv(common.EnvKeyMonitorAuthEnabled, "")
	t.Setenv(common.EnvKeyMonitorDefaultRate, "1")
	t.Setenv(common.EnvKeyMonitorDefaultBurst, "1")

	opts, err := LoadOptionsFromEnv()
	require.NoError(t, err)
	assert.True(t, opts.AuthEnabled)
}
