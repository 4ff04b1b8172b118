package app

import (
	"context"

	"gorm.io/gorm"
	"liyu1981.xyz/model-monitor-service/pkg/db"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

//go:generate mockgen -source=app.go -destination=mocks/mock_app.go -package=mocks

// Every method takes the caller's transaction and never commits it.

type IMonitor interface {
	CreateMonitor(tx *gorm.DB, modelID string, input *models.MonitorInput) (*models.Monitor, error)
	UpdateMonitor(tx *gorm.DB, modelID string, monitorID string, input *models.MonitorInput) (*models.Monitor, error)
	DeleteMonitor(tx *gorm.DB, modelID string, monitorID string) error
	GetMonitor(tx *gorm.DB, modelID string, monitorID string) (*models.Monitor, error)
	GetModelMonitors(tx *gorm.DB, modelID string) ([]models.Monitor, error)
}

type IAuth interface {
	AuthorizeUser(tx *gorm.DB, token string) (*models.User, error)
	AuthorizeUserForRepo(tx *gorm.DB, user *models.User, repoID string) (bool, error)
	AuthorizeUserForModel(tx *gorm.DB, user *models.User, modelID string) (bool, error)
}

type IModel interface {
	GetModelLayoutInfo(tx *gorm.DB, repoID string, modelID string) (*models.ModelLayoutInfo, error)
}

type App struct {
	Db      db.DB
	Options Options
	Monitor IMonitor
	Auth    IAuth
	Model   IModel
}

type ServiceOpts struct {
	Monitor IMonitor
	Auth    IAuth
	Model   IModel
}

func (a *App) WithServices(opts ServiceOpts) *App {
	if opts.Monitor != nil {
		a.Monitor = opts.Monitor
	}
	if opts.Auth != nil {
		a.Auth = opts.Auth
	}
	if opts.Model != nil {
		a.Model = opts.Model
	}
	return a
}

// WithDefaultServices wires the database-backed implementations.
func (a *App) WithDefaultServices() *App {
	return a.WithServices(ServiceOpts{
		Monitor: a.GetIMonitor(),
		Auth:    a.GetIAuth(),
		Model:   a.GetIModel(),
	})
}

// Begin opens a transaction bound to ctx. Check the returned Error before use.
func (a *App) Begin(ctx context.Context) *gorm.DB {
	return a.Db.Conn.WithContext(ctx).Begin()
}
