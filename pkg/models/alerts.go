package models

import (
	"fmt"
	"math"
	"net/mail"
	"net/url"
	"sort"
	"strings"
)

type AlertCadence string

const (
	AlertCadenceTesting AlertCadence = "testing"
	AlertCadenceHourly  AlertCadence = "hourly"
	AlertCadenceDaily   AlertCadence = "daily"
	AlertCadenceWeekly  AlertCadence = "weekly"
	AlertCadenceMonthly AlertCadence = "monthly"
)

var alertCadences = []AlertCadence{
	AlertCadenceTesting,
	AlertCadenceHourly,
	AlertCadenceDaily,
	AlertCadenceWeekly,
	AlertCadenceMonthly,
}

func AlertCadenceValues() []string {
	values := make([]string, len(alertCadences))
	for i, c := range alertCadences {
		values[i] = string(c)
	}
	return values
}

func ParseAlertCadence(s string) (AlertCadence, error) {
	for _, c := range alertCadences {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid alert cadence %q", s)
}

func (c AlertCadence) Title() string {
	switch c {
	case AlertCadenceTesting:
		return "Testing"
	case AlertCadenceHourly:
		return "Hourly"
	case AlertCadenceDaily:
		return "Daily"
	case AlertCadenceWeekly:
		return "Weekly"
	case AlertCadenceMonthly:
		return "Monthly"
	}
	return string(c)
}

type AlertMetric string

const (
	AlertMetricAccuracy             AlertMetric = "accuracy"
	AlertMetricMeanSquaredError     AlertMetric = "mean_squared_error"
	AlertMetricRootMeanSquaredError AlertMetric = "root_mean_squared_error"
)

var alertMetrics = []AlertMetric{
	AlertMetricAccuracy,
	AlertMetricMeanSquaredError,
	AlertMetricRootMeanSquaredError,
}

func AlertMetricValues() []string {
	values := make([]string, len(alertMetrics))
	for i, m := range alertMetrics {
		values[i] = string(m)
	}
	return values
}

func ParseAlertMetric(s string) (AlertMetric, error) {
	for _, m := range alertMetrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid alert metric %q", s)
}

func (m AlertMetric) ShortName() string {
	switch m {
	case AlertMetricAccuracy:
		return "Accuracy"
	case AlertMetricMeanSquaredError:
		return "MSE"
	case AlertMetricRootMeanSquaredError:
		return "RMSE"
	}
	return string(m)
}

type AlertMethodKind string

const (
	AlertMethodEmail   AlertMethodKind = "email"
	AlertMethodWebhook AlertMethodKind = "webhook"
	AlertMethodStdout  AlertMethodKind = "stdout"
)

type AlertMethod struct {
	Kind   AlertMethodKind `json:"kind"`
	Target string          `json:"target,omitempty"`
}

// ParseAlertMethod accepts the form encoding: "email:<address>",
// "webhook:<url>" or "stdout".
func ParseAlertMethod(s string) (AlertMethod, error) {
	kind, target, _ := strings.Cut(strings.TrimSpace(s), ":")
	method := AlertMethod{Kind: AlertMethodKind(kind), Target: strings.TrimSpace(target)}

	switch method.Kind {
	case AlertMethodStdout:
		if method.Target != "" {
			return AlertMethod{}, fmt.Errorf("stdout alert method takes no target")
		}
	case AlertMethodEmail:
		addr, err := mail.ParseAddress(method.Target)
		if err != nil {
			return AlertMethod{}, fmt.Errorf("invalid email address %q", method.Target)
		}
		method.Target = addr.Address
	case AlertMethodWebhook:
		u, err := url.Parse(method.Target)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return AlertMethod{}, fmt.Errorf("invalid webhook url %q", method.Target)
		}
	default:
		return AlertMethod{}, fmt.Errorf("invalid alert method %q", s)
	}

	return method, nil
}

func (m AlertMethod) String() string {
	if m.Target == "" {
		return string(m.Kind)
	}
	return string(m.Kind) + ":" + m.Target
}

func ParseAlertMethods(raw []string) ([]AlertMethod, error) {
	methods := make([]AlertMethod, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		method, err := ParseAlertMethod(s)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return NormalizeMethods(methods), nil
}

// NormalizeMethods returns a sorted copy without duplicates. No methods means
// stdout.
func NormalizeMethods(methods []AlertMethod) []AlertMethod {
	if len(methods) == 0 {
		return []AlertMethod{{Kind: AlertMethodStdout}}
	}

	sorted := make([]AlertMethod, len(methods))
	copy(sorted, methods)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	normalized := sorted[:1]
	for _, m := range sorted[1:] {
		if m != normalized[len(normalized)-1] {
			normalized = append(normalized, m)
		}
	}
	return normalized
}

func MethodsEqual(a, b []AlertMethod) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type MonitorThreshold struct {
	Metric   AlertMetric
	Variance float64
}

func (t MonitorThreshold) Validate() error {
	if _, err := ParseAlertMetric(string(t.Metric)); err != nil {
		return err
	}
	if math.IsNaN(t.Variance) || math.IsInf(t.Variance, 0) || t.Variance <= 0 {
		return fmt.Errorf("threshold must be a positive number")
	}
	return nil
}

// MonitorInput is what a create or edit form submits.
type MonitorInput struct {
	Cadence   AlertCadence
	Methods   []AlertMethod
	Threshold MonitorThreshold
	Title     string
}

func (in *MonitorInput) Validate() error {
	if _, err := ParseAlertCadence(string(in.Cadence)); err != nil {
		return err
	}
	return in.Threshold.Validate()
}

func DefaultTitle(cadence AlertCadence, threshold MonitorThreshold) string {
	return fmt.Sprintf("%s %s", cadence.Title(), threshold.Metric.ShortName())
}
