package app

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
	_ "liyu1981.xyz/model-monitor-service/pkg/testing"
)

func TestGetModelLayoutInfo(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, appObj, _, _, _ := GetMockAppWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	f := seedOwnedModel(t, appObj)
	other := seedOwnedModel(t, appObj)

	info, err := appObj.Model.GetModelLayoutInfo(appObj.Db.Conn, f.Repo.ID, f.Model.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.ModelLayoutInfo{
		RepoID:     f.Repo.ID,
		RepoTitle:  "churn",
		ModelID:    f.Model.ID,
		ModelTitle: "churn-v1",
	}, info)

	// model exists but under another repo
	_, err = appObj.Model.GetModelLayoutInfo(appObj.Db.Conn, other.Repo.ID, f.Model.ID)
	assert.ErrorIs(t, err, ErrModelNotFound)

	_, err = appObj.Model.GetModelLayoutInfo(appObj.Db.Conn, f.Repo.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrModelNotFound)
}
