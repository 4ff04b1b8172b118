package app

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/model-monitor-service/pkg/app/mocks"
	"liyu1981.xyz/model-monitor-service/pkg/db"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

func GetMockAppWithMemorySqliteDialector(t *testing.T, useMockIMonitor, useMockIAuth, useMockIModel bool) (
	*gomock.Controller,
	*App,
	*mocks.MockIMonitor,
	*mocks.MockIAuth,
	*mocks.MockIModel,
) {
	ctrl := gomock.NewController(t)

	mockIMonitor := mocks.NewMockIMonitor(ctrl)
	mockIAuth := mocks.NewMockIAuth(ctrl)
	mockIModel := mocks.NewMockIModel(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	appInstance := &App{Db: *dbInstance, Options: Options{AuthEnabled: true}}

	monitorService := appInstance.GetIMonitor()
	if useMockIMonitor {
		monitorService = mockIMonitor
	}

	authService := appInstance.GetIAuth()
	if useMockIAuth {
		authService = mockIAuth
	}

	modelService := appInstance.GetIModel()
	if useMockIModel {
		modelService = mockIModel
	}

	appInstance.WithServices(ServiceOpts{
		Monitor: monitorService,
		Auth:    authService,
		Model:   modelService,
	})

	return ctrl, appInstance, mockIMonitor, mockIAuth, mockIModel
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

type fixture struct {
	User  models.User
	Token string
	Repo  models.Repo
	Model models.Model
}

// seedOwnedModel creates a user with a token who owns a repo holding one model.
func seedOwnedModel(t *testing.T, a *App) fixture {
	t.Helper()

	user := models.User{ID: uuid.NewString(), Email: uuid.NewString() + "@example.com"}
	require.NoError(t, a.Db.Conn.Create(&user).Error)

	token := uuid.NewString()
	require.NoError(t, a.Db.Conn.Create(&models.Token{Token: token, UserID: user.ID}).Error)

	repo := models.Repo{ID: uuid.NewString(), Title: "churn", OwnerUserID: &user.ID}
	require.NoError(t, a.Db.Conn.Create(&repo).Error)

	model := models.Model{ID: uuid.NewString(), RepoID: repo.ID, Title: "churn-v1"}
	require.NoError(t, a.Db.Conn.Create(&model).Error)

	return fixture{User: user, Token: token, Repo: repo, Model: model}
}

func hourlyAccuracy(variance float64) *models.MonitorInput {
	return &models.MonitorInput{
		Cadence: models.AlertCadenceHourly,
		Threshold: models.MonitorThreshold{
			Metric:   models.AlertMetricAccuracy,
			Variance: variance,
		},
	}
}
