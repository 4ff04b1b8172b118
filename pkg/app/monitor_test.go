package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
	_ "liyu1981.xyz/model-monitor-service/pkg/testing"
)

func TestCreateMonitor(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	tx := appObj.Begin(context.Background())
	require.NoError(t, tx.Error)

	input := hourlyAccuracy(0.05)
	input.Methods = []models.AlertMethod{{Kind: models.AlertMethodEmail, Target: "ops@example.com"}}

	created, err := appObj.Monitor.CreateMonitor(tx, f.Model.ID, input)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	// blank title gets derived
	assert.Equal(t, "Hourly Accuracy", created.Title)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.LastUpdated)

	var saved models.Monitor
	err = appObj.Db.Conn.Where("id = ?", created.ID).First(&saved).Error
	require.NoError(t, err)
	assert.Equal(t, f.Model.ID, saved.ModelID)
	assert.Equal(t, models.AlertCadenceHourly, saved.Cadence)
	assert.Equal(t, 0.05, saved.Variance)

	methods, err := saved.AlertMethods()
	require.NoError(t, err)
	assert.Equal(t, input.Methods, methods)
}

func TestCreateMonitor_KeepsExplicitTitle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	input := hourlyAccuracy(0.05)
	input.Title = "  Accuracy drop  "
	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Accuracy drop", created.Title)
}

func TestCreateMonitor_RejectsDuplicate(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	_, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)

	// explicit title equal to the derived one is still the same configuration
	dup := hourlyAccuracy(0.05)
	dup.Title = "Hourly Accuracy"
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, dup)
	assert.ErrorIs(t, err, ErrDuplicateMonitor)

	// methods in a different order are still the same configuration
	a := models.AlertMethod{Kind: models.AlertMethodEmail, Target: "a@example.com"}
	b := models.AlertMethod{Kind: models.AlertMethodWebhook, Target: "https://example.com/hook"}
	withMethods := hourlyAccuracy(0.1)
	withMethods.Methods = []models.AlertMethod{a, b}
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, withMethods)
	require.NoError(t, err)
	withMethods.Methods = []models.AlertMethod{b, a}
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, withMethods)
	assert.ErrorIs(t, err, ErrDuplicateMonitor)

	// a different threshold is not a duplicate
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.2))
	assert.NoError(t, err)

	monitors, err := appObj.Monitor.GetModelMonitors(appObj.Db.Conn, f.Model.ID)
	require.NoError(t, err)
	assert.Len(t, monitors, 3)
}

func TestCreateMonitor_SameConfigOnOtherModel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	first := seedOwnedModel(t, appObj)
	second := seedOwnedModel(t, appObj)

	_, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, first.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, second.Model.ID, hourlyAccuracy(0.05))
	assert.NoError(t, err)
}

func TestCreateMonitor_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	_, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(-1))
	assert.Error(t, err)

	bad := hourlyAccuracy(0.1)
	bad.Cadence = "yearly"
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, bad)
	assert.Error(t, err)

	monitors, err := appObj.Monitor.GetModelMonitors(appObj.Db.Conn, f.Model.ID)
	require.NoError(t, err)
	assert.Empty(t, monitors)
}

func TestCreateMonitor_RollbackLeavesNothing(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	tx := appObj.Begin(context.Background())
	_, err := appObj.Monitor.CreateMonitor(tx, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback().Error)

	monitors, err := appObj.Monitor.GetModelMonitors(appObj.Db.Conn, f.Model.ID)
	require.NoError(t, err)
	assert.Empty(t, monitors)
}

func TestUpdateMonitor(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)

	update := &models.MonitorInput{
		Cadence: models.AlertCadenceDaily,
		Methods: []models.AlertMethod{{Kind: models.AlertMethodWebhook, Target: "https://example.com/hook"}},
		Threshold: models.MonitorThreshold{
			Metric:   models.AlertMetricRootMeanSquaredError,
			Variance: 1.5,
		},
	}

	tx := appObj.Begin(context.Background())
	updated, err := appObj.Monitor.UpdateMonitor(tx, f.Model.ID, created.ID, update)
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, created.ID, updated.ID)
	// a blank title keeps the default of the stored record
	assert.Equal(t, "Hourly Accuracy", updated.Title)

	saved, err := appObj.Monitor.GetMonitor(appObj.Db.Conn, f.Model.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AlertCadenceDaily, saved.Cadence)
	assert.Equal(t, models.AlertMetricRootMeanSquaredError, saved.Metric)
	assert.Equal(t, 1.5, saved.Variance)
	methods, err := saved.AlertMethods()
	require.NoError(t, err)
	assert.Equal(t, update.Methods, methods)
}

func TestUpdateMonitor_Unchanged(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)

	// re-submitting the same form must not collide with itself
	updated, err := appObj.Monitor.UpdateMonitor(appObj.Db.Conn, f.Model.ID, created.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdateMonitor_RejectsDuplicateOfSibling(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	_, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)
	second, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.1))
	require.NoError(t, err)

	_, err = appObj.Monitor.UpdateMonitor(appObj.Db.Conn, f.Model.ID, second.ID, hourlyAccuracy(0.05))
	assert.ErrorIs(t, err, ErrDuplicateMonitor)

	saved, err := appObj.Monitor.GetMonitor(appObj.Db.Conn, f.Model.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.1, saved.Variance)
}

func TestUpdateMonitor_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)
	other := seedOwnedModel(t, appObj)

	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)

	_, err = appObj.Monitor.UpdateMonitor(appObj.Db.Conn, f.Model.ID, uuid.NewString(), hourlyAccuracy(0.2))
	assert.ErrorIs(t, err, ErrMonitorNotFound)

	// monitor ids are scoped to their model
	_, err = appObj.Monitor.UpdateMonitor(appObj.Db.Conn, other.Model.ID, created.ID, hourlyAccuracy(0.2))
	assert.ErrorIs(t, err, ErrMonitorNotFound)
}

func TestDeleteMonitor(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)
	other := seedOwnedModel(t, appObj)

	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)

	err = appObj.Monitor.DeleteMonitor(appObj.Db.Conn, other.Model.ID, created.ID)
	assert.ErrorIs(t, err, ErrMonitorNotFound)

	err = appObj.Monitor.DeleteMonitor(appObj.Db.Conn, f.Model.ID, created.ID)
	require.NoError(t, err)

	_, err = appObj.Monitor.GetMonitor(appObj.Db.Conn, f.Model.ID, created.ID)
	assert.True(t, errors.Is(err, ErrMonitorNotFound))

	err = appObj.Monitor.DeleteMonitor(appObj.Db.Conn, f.Model.ID, created.ID)
	assert.ErrorIs(t, err, ErrMonitorNotFound)
}

func TestGetModelMonitors_OrderedByTitle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	for _, title := range []string{"charlie", "alpha", "bravo"} {
		in := hourlyAccuracy(0.05)
		in.Title = title
		_, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, in)
		require.NoError(t, err)
	}

	monitors, err := appObj.Monitor.GetModelMonitors(appObj.Db.Conn, f.Model.ID)
	require.NoError(t, err)
	titles := common.Mapper(monitors, func(m models.Monitor) string { return m.Title })
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, titles)
}

func TestCreateMonitor_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)

	created, err := appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.NoError(t, err)
	_, err = appObj.Monitor.CreateMonitor(appObj.Db.Conn, f.Model.ID, hourlyAccuracy(0.05))
	require.ErrorIs(t, err, ErrDuplicateMonitor)

	logs := ParseLogs(buf)

	hasLog := func(msg string) bool {
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "monitor" &&
				lobj["logger"] == "app_core" &&
				lobj["msg"] == msg &&
				lobj["monitor"].(map[string]any)["ModelID"] == f.Model.ID &&
				lobj["monitor"].(map[string]any)["Title"] == "Hourly Accuracy" {
				return true
			}
		}
		return false
	}

	assert.True(t, hasLog("Received monitor for model"), "log not found")
	assert.True(t, hasLog("Created monitor"), "log not found")
	assert.True(t, hasLog("Rejected duplicate monitor"), "log not found")
	assert.NotEmpty(t, created.ID)
}
