package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type User struct {
	ID    string `gorm:"primaryKey;type:varchar(36)"`
	Email string `gorm:"uniqueIndex"`
}

type Token struct {
	Token  string `gorm:"primaryKey"`
	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID;references:ID"`
}

type Organization struct {
	ID   string `gorm:"primaryKey;type:varchar(36)"`
	Name string
}

type OrganizationUser struct {
	OrganizationID string `gorm:"primaryKey;type:varchar(36)"`
	UserID         string `gorm:"primaryKey;type:varchar(36)"`
}

type Repo struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Title          string
	OwnerUserID    *string `gorm:"index"`
	OrganizationID *string `gorm:"index"`

	Models []Model `gorm:"foreignKey:RepoID;references:ID"`
}

type Model struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	RepoID string `gorm:"index"`
	Title  string

	Monitors []Monitor `gorm:"foreignKey:ModelID;references:ID"`
}

// ModelLayoutInfo carries what page chrome needs to render around a model.
type ModelLayoutInfo struct {
	RepoID     string
	RepoTitle  string
	ModelID    string
	ModelTitle string
}

// Monitor is a stored alert rule for one model.
type Monitor struct {
	ID          string       `gorm:"primaryKey;type:varchar(36)"`
	ModelID     string       `gorm:"index"`
	Cadence     AlertCadence `gorm:"type:varchar(20)"`
	Methods     datatypes.JSON
	Metric      AlertMetric `gorm:"type:varchar(40)"`
	Variance    float64
	Title       string
	LastUpdated int64
}

func (Monitor) TableName() string {
	return "alert_preferences"
}

func (m *Monitor) Threshold() MonitorThreshold {
	return MonitorThreshold{Metric: m.Metric, Variance: m.Variance}
}

func (m *Monitor) SetThreshold(threshold MonitorThreshold) {
	m.Metric = threshold.Metric
	m.Variance = threshold.Variance
}

// AlertMethods decodes the stored methods column. A null column decodes to nil.
func (m *Monitor) AlertMethods() ([]AlertMethod, error) {
	if len(m.Methods) == 0 {
		return nil, nil
	}
	var methods []AlertMethod
	if err := json.Unmarshal(m.Methods, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (m *Monitor) SetAlertMethods(methods []AlertMethod) error {
	raw, err := json.Marshal(NormalizeMethods(methods))
	if err != nil {
		return err
	}
	m.Methods = datatypes.JSON(raw)
	return nil
}

// SameConfiguration reports whether two monitors would fire identically:
// cadence, methods, threshold and title all match.
func (m *Monitor) SameConfiguration(other *Monitor) bool {
	if m.Cadence != other.Cadence || m.Threshold() != other.Threshold() || m.Title != other.Title {
		return false
	}
	mine, err := m.AlertMethods()
	if err != nil {
		return false
	}
	theirs, err := other.AlertMethods()
	if err != nil {
		return false
	}
	return MethodsEqual(NormalizeMethods(mine), NormalizeMethods(theirs))
}
