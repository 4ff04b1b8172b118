package ui

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageProductionAlertsIndex = "production_alerts_index.html"
	PageProductionAlertsNew   = "production_alerts_new.html"
	PageProductionAlertsEdit  = "production_alerts_edit.html"
)

func AlertsPath(repoID, modelID string) string {
	return fmt.Sprintf("/repos/%s/models/%s/production_alerts/", repoID, modelID)
}

func NewAlertPath(repoID, modelID string) string {
	return AlertsPath(repoID, modelID) + "new"
}

func EditAlertPath(repoID, modelID, alertID string) string {
	return AlertsPath(repoID, modelID) + alertID + "/edit"
}

var funcs = template.FuncMap{
	"link": func(href string, text string) template.HTML {
		return Link(LinkProps{Href: href}, template.HTML(template.HTMLEscapeString(text)))
	},
	"alertsPath": func(l models.ModelLayoutInfo) string {
		return AlertsPath(l.RepoID, l.ModelID)
	},
	"newAlertPath": func(l models.ModelLayoutInfo) string {
		return NewAlertPath(l.RepoID, l.ModelID)
	},
	"editAlertPath": func(l models.ModelLayoutInfo, alertID string) string {
		return EditAlertPath(l.RepoID, l.ModelID, alertID)
	},
	"join": strings.Join,
}

// Templates parses the embedded pages. It panics on a malformed template.
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}

// AlertForm holds raw form values so a failed submission re-renders as typed.
type AlertForm struct {
	Cadence   string
	Metric    string
	Threshold string
	Title     string
	Methods   []string
}

func AlertFormFromMonitor(m *models.Monitor) AlertForm {
	form := AlertForm{
		Cadence:   string(m.Cadence),
		Metric:    string(m.Metric),
		Threshold: strconv.FormatFloat(m.Variance, 'f', -1, 64),
		Title:     m.Title,
	}
	if methods, err := m.AlertMethods(); err == nil {
		form.Methods = common.Mapper(methods, models.AlertMethod.String)
	}
	return form
}

type AlertFormPage struct {
	Layout   models.ModelLayoutInfo
	AlertID  string
	Form     AlertForm
	Cadences []string
	Metrics  []string
	Error    string
}

func NewAlertFormPage(layout models.ModelLayoutInfo, alertID string, form AlertForm, errMsg string) AlertFormPage {
	return AlertFormPage{
		Layout:   layout,
		AlertID:  alertID,
		Form:     form,
		Cadences: models.AlertCadenceValues(),
		Metrics:  models.AlertMetricValues(),
		Error:    errMsg,
	}
}

type MonitorRow struct {
	ID       string
	Title    string
	Cadence  string
	Metric   string
	Variance float64
	Methods  []string
}

type AlertsIndexPage struct {
	Layout   models.ModelLayoutInfo
	Monitors []MonitorRow
}

func NewAlertsIndexPage(layout models.ModelLayoutInfo, monitors []models.Monitor) AlertsIndexPage {
	return AlertsIndexPage{
		Layout: layout,
		Monitors: common.Mapper(monitors, func(m models.Monitor) MonitorRow {
			form := AlertFormFromMonitor(&m)
			return MonitorRow{
				ID:       m.ID,
				Title:    m.Title,
				Cadence:  m.Cadence.Title(),
				Metric:   m.Metric.ShortName(),
				Variance: m.Variance,
				Methods:  form.Methods,
			}
		}),
	}
}
