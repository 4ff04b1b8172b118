package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/model-monitor-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestLoggerWithNameAndFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetLoggerWith(LoggerNameAppCore, zap.String(LoggerFieldAppCategory, LoggerCategoryMonitor)).
		Debug("dropped below level")
	GetLoggerWith(LoggerNameAppCore, zap.String(LoggerFieldAppCategory, LoggerCategoryMonitor)).
		Info("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped below level")
	assert.Contains(t, out, `"logger":"app_core"`)
	assert.Contains(t, out, `"category":"monitor"`)
}
