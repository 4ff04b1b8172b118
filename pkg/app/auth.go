package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

// membershipFilter matches rows whose repo is owned by the user or by an
// organization the user belongs to. It expects repos joined with
// organization_users restricted to the same user.
const membershipFilter = "(repos.owner_user_id = ? OR organization_users.user_id IS NOT NULL)"

const organizationUsersJoin = "LEFT JOIN organization_users ON organization_users.organization_id = repos.organization_id AND organization_users.user_id = ?"

// authorizeUser returns a nil user and no error when auth is disabled.
func (a *App) authorizeUser(tx *gorm.DB, token string) (*models.User, error) {
	if !a.Options.AuthEnabled {
		return nil, nil
	}
	if token == "" {
		return nil, ErrUnauthorized
	}

	var t models.Token
	err := tx.Preload("User").Where("token = ?", token).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		common.GetLoggerWith(
			common.LoggerNameAppCore,
			zap.String(common.LoggerFieldAppCategory, common.LoggerCategoryAuth),
		).Info("Unknown auth token")
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "lookup token")
	}
	return &t.User, nil
}

func (a *App) authorizeUserForRepo(tx *gorm.DB, user *models.User, repoID string) (bool, error) {
	if !a.Options.AuthEnabled {
		return true, nil
	}
	if user == nil {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.Repo{}).
		Joins(organizationUsersJoin, user.ID).
		Where("repos.id = ?", repoID).
		Where(membershipFilter, user.ID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "authorize user for repo")
	}
	return count > 0, nil
}

func (a *App) authorizeUserForModel(tx *gorm.DB, user *models.User, modelID string) (bool, error) {
	if !a.Options.AuthEnabled {
		return true, nil
	}
	if user == nil {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.Model{}).
		Joins("JOIN repos ON repos.id = models.repo_id").
		Joins(organizationUsersJoin, user.ID).
		Where("models.id = ?", modelID).
		Where(membershipFilter, user.ID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "authorize user for model")
	}
	return count > 0, nil
}

type IAuthImpl struct {
	app *App
}

func (ia *IAuthImpl) AuthorizeUser(tx *gorm.DB, token string) (*models.User, error) {
	return ia.app.authorizeUser(tx, token)
}

func (ia *IAuthImpl) AuthorizeUserForRepo(tx *gorm.DB, user *models.User, repoID string) (bool, error) {
	return ia.app.authorizeUserForRepo(tx, user, repoID)
}

func (ia *IAuthImpl) AuthorizeUserForModel(tx *gorm.DB, user *models.User, modelID string) (bool, error) {
	return ia.app.authorizeUserForModel(tx, user, modelID)
}

func (a *App) GetIAuth() IAuth {
	return &IAuthImpl{app: a}
}
