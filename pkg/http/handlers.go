package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
	"liyu1981.xyz/model-monitor-service/pkg/ui"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

const (
	createAlertErrorMessage = "There was an error creating your alert."
	editAlertErrorMessage   = "There was an error editing your alert."
)

const (
	actionUpdateAlert = "update_alert"
	actionDelete      = "delete"
)

type AlertRequest struct {
	Cadence   string  `zog:"cadence"`
	Metric    string  `zog:"metric"`
	Threshold float64 `zog:"threshold"`
	Title     string  `zog:"title"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"cadence":   z.String().Required(),
	"metric":    z.String().Required(),
	"threshold": z.Float64().Required(),
	"title":     z.String().Optional(),
})

type EditAlertRequest struct {
	Action string `zog:"action"`
}

var editAlertRequestSchema = z.Struct(z.Shape{
	"action": z.String().Required(),
})

// monitorInput converts a parsed request plus the repeated methods field.
func (req *AlertRequest) monitorInput(rawMethods []string) (*models.MonitorInput, error) {
	cadence, err := models.ParseAlertCadence(req.Cadence)
	if err != nil {
		return nil, err
	}
	metric, err := models.ParseAlertMetric(req.Metric)
	if err != nil {
		return nil, err
	}
	methods, err := models.ParseAlertMethods(rawMethods)
	if err != nil {
		return nil, err
	}
	return &models.MonitorInput{
		Cadence: cadence,
		Methods: methods,
		Threshold: models.MonitorThreshold{
			Metric:   metric,
			Variance: req.Threshold,
		},
		Title: req.Title,
	}, nil
}

// parseAlertRequest checks the url-encoded alert fields are present and well
// typed. Their values are checked later by monitorInput.
func parseAlertRequest(c *gin.Context) (*AlertRequest, error) {
	var req AlertRequest
	if errs := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); errs != nil {
		return nil, errors.Errorf("invalid alert form: %v", errs)
	}
	return &req, nil
}

// submittedForm echoes what the user typed so a failed submission keeps it.
func submittedForm(c *gin.Context) ui.AlertForm {
	return ui.AlertForm{
		Cadence:   c.PostForm("cadence"),
		Metric:    c.PostForm("metric"),
		Threshold: c.PostForm("threshold"),
		Title:     c.PostForm("title"),
		Methods: common.Filter(c.PostFormArray("methods"), func(m string) bool {
			return strings.TrimSpace(m) != ""
		}),
	}
}

func defaultAlertForm() ui.AlertForm {
	return ui.AlertForm{
		Cadence: string(models.AlertCadenceHourly),
		Metric:  string(models.AlertMetricAccuracy),
	}
}

// rejectAlertForm rolls back and re-renders the form with an inline error.
func rejectAlertForm(c *gin.Context, scope *alertScope, page string, alertID string, form ui.AlertForm, message string, cause error) {
	scope.close()
	serverLogger().Info("Rejected alert form",
		zap.String("model_id", scope.modelID),
		zap.String("alert_id", alertID),
		zap.Error(cause),
	)
	c.HTML(http.StatusBadRequest, page, ui.NewAlertFormPage(*scope.layout, alertID, form, message))
}

func finishAlertForm(c *gin.Context, scope *alertScope) {
	if err := scope.commit(); err != nil {
		serverLogger().Error("Failed to commit transaction", zap.Error(err))
		internalServerError(c)
		return
	}
	redirectTo(c, ui.AlertsPath(scope.repoID, scope.modelID))
}

func (rs *RestfulServer) ListAlerts(c *gin.Context) {
	scope, ok := rs.openAlertScope(c)
	if !ok {
		return
	}
	defer scope.close()
	if !rs.loadLayout(c, scope) {
		return
	}

	monitors, err := rs.App.Monitor.GetModelMonitors(scope.tx, scope.modelID)
	if err != nil {
		serverLogger().Error("Failed to list alerts", zap.Error(err))
		internalServerError(c)
		return
	}

	c.HTML(http.StatusOK, ui.PageProductionAlertsIndex, ui.NewAlertsIndexPage(*scope.layout, monitors))
}

func (rs *RestfulServer) NewAlert(c *gin.Context) {
	scope, ok := rs.openAlertScope(c)
	if !ok {
		return
	}
	defer scope.close()
	if !rs.loadLayout(c, scope) {
		return
	}

	c.HTML(http.StatusOK, ui.PageProductionAlertsNew, ui.NewAlertFormPage(*scope.layout, "", defaultAlertForm(), ""))
}

// CreateAlert answers 400 for a malformed body before looking up the layout,
// so a bad body wins over an unknown model.
func (rs *RestfulServer) CreateAlert(c *gin.Context) {
	scope, ok := rs.openAlertScope(c)
	if !ok {
		return
	}
	defer scope.close()

	req, err := parseAlertRequest(c)
	if err != nil {
		serverLogger().Info("Malformed alert form", zap.String("model_id", scope.modelID), zap.Error(err))
		badRequest(c)
		return
	}

	if !rs.loadLayout(c, scope) {
		return
	}

	input, err := req.monitorInput(c.PostFormArray("methods"))
	if err == nil {
		_, err = rs.App.Monitor.CreateMonitor(scope.tx, scope.modelID, input)
	}
	if err != nil {
		rejectAlertForm(c, scope, ui.PageProductionAlertsNew, "", submittedForm(c), createAlertErrorMessage, err)
		return
	}

	finishAlertForm(c, scope)
}

func (rs *RestfulServer) EditAlert(c *gin.Context) {
	scope, ok := rs.openAlertScope(c)
	if !ok {
		return
	}
	defer scope.close()
	if !rs.loadLayout(c, scope) {
		return
	}

	alertID := c.Param("alert_id")
	monitor, err := rs.App.Monitor.GetMonitor(scope.tx, scope.modelID, alertID)
	if errors.Is(err, app.ErrMonitorNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverLogger().Error("Failed to load alert", zap.String("alert_id", alertID), zap.Error(err))
		internalServerError(c)
		return
	}

	c.HTML(http.StatusOK, ui.PageProductionAlertsEdit, ui.NewAlertFormPage(*scope.layout, alertID, ui.AlertFormFromMonitor(monitor), ""))
}

// UpdateAlert handles both forms of the edit page, told apart by action.
// Like CreateAlert it parses the body before loading the layout.
func (rs *RestfulServer) UpdateAlert(c *gin.Context) {
	scope, ok := rs.openAlertScope(c)
	if !ok {
		return
	}
	defer scope.close()

	var action EditAlertRequest
	if errs := editAlertRequestSchema.Parse(zhttp.Request(c.Request), &action); errs != nil {
		badRequest(c)
		return
	}

	var req *AlertRequest
	switch action.Action {
	case actionDelete:
	case actionUpdateAlert:
		var err error
		if req, err = parseAlertRequest(c); err != nil {
			serverLogger().Info("Malformed alert form", zap.String("model_id", scope.modelID), zap.Error(err))
			badRequest(c)
			return
		}
	default:
		badRequest(c)
		return
	}

	if !rs.loadLayout(c, scope) {
		return
	}

	alertID := c.Param("alert_id")
	monitor, err := rs.App.Monitor.GetMonitor(scope.tx, scope.modelID, alertID)
	if errors.Is(err, app.ErrMonitorNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverLogger().Error("Failed to load alert", zap.String("alert_id", alertID), zap.Error(err))
		internalServerError(c)
		return
	}

	if req == nil {
		err = rs.App.Monitor.DeleteMonitor(scope.tx, scope.modelID, alertID)
		if errors.Is(err, app.ErrMonitorNotFound) {
			notFound(c)
			return
		}
		if err != nil {
			rejectAlertForm(c, scope, ui.PageProductionAlertsEdit, alertID, ui.AlertFormFromMonitor(monitor), editAlertErrorMessage, err)
			return
		}
		finishAlertForm(c, scope)
		return
	}

	input, err := req.monitorInput(c.PostFormArray("methods"))
	if err == nil {
		_, err = rs.App.Monitor.UpdateMonitor(scope.tx, scope.modelID, alertID, input)
	}
	if errors.Is(err, app.ErrMonitorNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		rejectAlertForm(c, scope, ui.PageProductionAlertsEdit, alertID, submittedForm(c), editAlertErrorMessage, err)
		return
	}

	finishAlertForm(c, scope)
}
