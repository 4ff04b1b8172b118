package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyMonitorDBType      string = "MONITOR_DB_TYPE"
	EnvKeyMonitorDbPath      string = "MONITOR_DB_PATH"
	EnvKeyMonitorDatabaseURL string = "MONITOR_DATABASE_URL"

	EnvKeyMonitorHttpHostPort string = "MONITOR_HTTP_HOST_PORT"
	EnvKeyMonitorGrpcHostPort string = "MONITOR_GRPC_HOST_PORT"

	EnvKeyMonitorAuthEnabled string = "MONITOR_AUTH_ENABLED"
	EnvKeyMonitorLogDir      string = "MONITOR_LOG_DIR"

	EnvKeyMonitorDefaultRate  string = "MONITOR_DEFAULT_RATE"
	EnvKeyMonitorDefaultBurst string = "MONITOR_DEFAULT_BURST"

	LoggerNameAppCore       string = "app_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerFieldAppCategory  string = "category"
	LoggerCategoryMonitor   string = "monitor"
	LoggerCategoryAuth      string = "auth"
	LoggerCategoryModel     string = "model"
)
