package app

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/metrics"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

func monitorLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAppCore,
		zap.String(common.LoggerFieldAppCategory, common.LoggerCategoryMonitor),
	)
}

func recordResult(op string, err error) {
	switch {
	case err == nil:
		metrics.RecordMonitorOperation(op, metrics.ResultOK)
	case errors.Is(err, ErrDuplicateMonitor):
		metrics.RecordMonitorOperation(op, metrics.ResultDuplicate)
	case errors.Is(err, ErrMonitorNotFound):
		metrics.RecordMonitorOperation(op, metrics.ResultNotFound)
	default:
		metrics.RecordMonitorOperation(op, metrics.ResultError)
	}
}

func (a *App) createMonitor(tx *gorm.DB, modelID string, input *models.MonitorInput) (monitor *models.Monitor, err error) {
	defer func() { recordResult(opCreate, err) }()

	logger := monitorLogger()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m := models.Monitor{
		ID:          uuid.NewString(),
		ModelID:     modelID,
		Cadence:     input.Cadence,
		Title:       strings.TrimSpace(input.Title),
		LastUpdated: time.Now().Unix(),
	}
	m.SetThreshold(input.Threshold)
	if err := m.SetAlertMethods(input.Methods); err != nil {
		return nil, errors.Wrap(err, "encode alert methods")
	}
	if m.Title == "" {
		m.Title = models.DefaultTitle(m.Cadence, m.Threshold())
	}

	logger.Info("Received monitor for model", zap.Reflect("monitor", m))

	duplicate, err := a.checkForDuplicateMonitor(tx, &m)
	if err != nil {
		return nil, err
	}
	if duplicate {
		logger.Info("Rejected duplicate monitor", zap.Reflect("monitor", m))
		return nil, ErrDuplicateMonitor
	}

	if err := tx.Create(&m).Error; err != nil {
		return nil, errors.Wrap(err, "insert monitor")
	}

	logger.Info("Created monitor", zap.Reflect("monitor", m))

	return &m, nil
}

func (a *App) updateMonitor(tx *gorm.DB, modelID string, monitorID string, input *models.MonitorInput) (monitor *models.Monitor, err error) {
	defer func() { recordResult(opUpdate, err) }()

	logger := monitorLogger()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := a.getMonitor(tx, modelID, monitorID)
	if err != nil {
		return nil, err
	}

	// A blank title falls back to the stored record's default, taken before
	// any field is overlaid.
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = models.DefaultTitle(m.Cadence, m.Threshold())
	}

	// Replace any components that are different.
	if input.Cadence != m.Cadence {
		m.Cadence = input.Cadence
	}
	current, err := m.AlertMethods()
	if err != nil {
		return nil, errors.Wrap(err, "decode alert methods")
	}
	if methods := models.NormalizeMethods(input.Methods); !models.MethodsEqual(methods, models.NormalizeMethods(current)) {
		if err := m.SetAlertMethods(methods); err != nil {
			return nil, errors.Wrap(err, "encode alert methods")
		}
	}
	if input.Threshold != m.Threshold() {
		m.SetThreshold(input.Threshold)
	}
	if title != m.Title {
		m.Title = title
	}

	duplicate, err := a.checkForDuplicateMonitor(tx, m)
	if err != nil {
		return nil, err
	}
	if duplicate {
		logger.Info("Rejected duplicate monitor", zap.Reflect("monitor", m))
		return nil, ErrDuplicateMonitor
	}

	m.LastUpdated = time.Now().Unix()
	if err := tx.Save(m).Error; err != nil {
		return nil, errors.Wrap(err, "update monitor")
	}

	logger.Info("Updated monitor", zap.Reflect("monitor", m))

	return m, nil
}

func (a *App) deleteMonitor(tx *gorm.DB, modelID string, monitorID string) (err error) {
	defer func() { recordResult(opDelete, err) }()

	result := tx.Where("id = ? AND model_id = ?", monitorID, modelID).Delete(&models.Monitor{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete monitor")
	}
	if result.RowsAffected == 0 {
		return ErrMonitorNotFound
	}

	monitorLogger().Info("Deleted monitor",
		zap.String("model_id", modelID),
		zap.String("monitor_id", monitorID),
	)

	return nil
}

func (a *App) getMonitor(tx *gorm.DB, modelID string, monitorID string) (*models.Monitor, error) {
	var m models.Monitor
	err := tx.Where("id = ? AND model_id = ?", monitorID, modelID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMonitorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load monitor")
	}
	return &m, nil
}

func (a *App) getModelMonitors(tx *gorm.DB, modelID string) ([]models.Monitor, error) {
	var monitors []models.Monitor
	err := tx.
		Where("model_id = ?", modelID).
		Order("title asc").
		Order("id asc").
		Find(&monitors).Error
	if err != nil {
		return nil, errors.Wrap(err, "list monitors")
	}
	return monitors, nil
}

// checkForDuplicateMonitor narrows candidates in SQL and compares methods in
// Go, since the JSON column has no portable equality.
func (a *App) checkForDuplicateMonitor(tx *gorm.DB, m *models.Monitor) (bool, error) {
	var candidates []models.Monitor
	err := tx.
		Where("model_id = ? AND id <> ?", m.ModelID, m.ID).
		Where("cadence = ? AND metric = ? AND variance = ? AND title = ?", m.Cadence, m.Metric, m.Variance, m.Title).
		Find(&candidates).Error
	if err != nil {
		return false, errors.Wrap(err, "check for duplicate monitor")
	}

	for i := range candidates {
		if m.SameConfiguration(&candidates[i]) {
			return true, nil
		}
	}
	return false, nil
}

type IMonitorImpl struct {
	app *App
}

func (im *IMonitorImpl) CreateMonitor(tx *gorm.DB, modelID string, input *models.MonitorInput) (*models.Monitor, error) {
	return im.app.createMonitor(tx, modelID, input)
}

func (im *IMonitorImpl) UpdateMonitor(tx *gorm.DB, modelID string, monitorID string, input *models.MonitorInput) (*models.Monitor, error) {
	return im.app.updateMonitor(tx, modelID, monitorID, input)
}

func (im *IMonitorImpl) DeleteMonitor(tx *gorm.DB, modelID string, monitorID string) error {
	return im.app.deleteMonitor(tx, modelID, monitorID)
}

func (im *IMonitorImpl) GetMonitor(tx *gorm.DB, modelID string, monitorID string) (*models.Monitor, error) {
	return im.app.getMonitor(tx, modelID, monitorID)
}

func (im *IMonitorImpl) GetModelMonitors(tx *gorm.DB, modelID string) ([]models.Monitor, error) {
	return im.app.getModelMonitors(tx, modelID)
}

func (a *App) GetIMonitor() IMonitor {
	return &IMonitorImpl{app: a}
}
