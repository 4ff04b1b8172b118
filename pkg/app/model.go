package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

func (a *App) getModelLayoutInfo(tx *gorm.DB, repoID string, modelID string) (*models.ModelLayoutInfo, error) {
	var model models.Model
	err := tx.Where("id = ? AND repo_id = ?", modelID, repoID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		common.GetLoggerWith(
			common.LoggerNameAppCore,
			zap.String(common.LoggerFieldAppCategory, common.LoggerCategoryModel),
		).Info("Model not in repo", zap.String("repo_id", repoID), zap.String("model_id", modelID))
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load model")
	}

	var repo models.Repo
	if err := tx.Where("id = ?", repoID).First(&repo).Error; err != nil {
		return nil, errors.Wrap(err, "load repo")
	}

	return &models.ModelLayoutInfo{
		RepoID:     repo.ID,
		RepoTitle:  repo.Title,
		ModelID:    model.ID,
		ModelTitle: model.Title,
	}, nil
}

type IModelImpl struct {
	app *App
}

func (im *IModelImpl) GetModelLayoutInfo(tx *gorm.DB, repoID string, modelID string) (*models.ModelLayoutInfo, error) {
	return im.app.getModelLayoutInfo(tx, repoID, modelID)
}

func (a *App) GetIModel() IModel {
	return &IModelImpl{app: a}
}
