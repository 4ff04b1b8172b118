package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

const authCookieName = "auth"

func serverLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// authToken reads the session token from the auth cookie, falling back to a
// bearer Authorization header.
func authToken(c *gin.Context) string {
	if token, err := c.Cookie(authCookieName); err == nil && token != "" {
		return token
	}
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}

// alertScope is an authorized request against one model. It owns the
// request transaction until commit or close.
type alertScope struct {
	tx        *gorm.DB
	user      *models.User
	repoID    string
	modelID   string
	layout    *models.ModelLayoutInfo
	committed bool
}

func (s *alertScope) commit() error {
	s.committed = true
	return s.tx.Commit().Error
}

// close rolls back unless the scope was committed. Safe to call twice.
func (s *alertScope) close() {
	if s.committed {
		return
	}
	s.committed = true
	s.tx.Rollback()
}

// openAlertScope rate limits, opens a transaction and authorizes the caller
// for the repo and model in the path. On failure the response has already
// been written and the transaction rolled back. The layout is not loaded yet,
// see loadLayout.
func (rs *RestfulServer) openAlertScope(c *gin.Context) (*alertScope, bool) {
	logger := serverLogger()

	if !rs.CheckLimiter(c) {
		tooManyRequests(c)
		return nil, false
	}

	tx := rs.App.Begin(c.Request.Context())
	if tx.Error != nil {
		logger.Error("Failed to begin transaction", zap.Error(tx.Error))
		serviceUnavailable(c)
		return nil, false
	}

	scope := &alertScope{tx: tx}
	opened := false
	defer func() {
		if !opened {
			scope.close()
		}
	}()

	user, err := rs.App.Auth.AuthorizeUser(tx, authToken(c))
	if err != nil {
		if !errors.Is(err, app.ErrUnauthorized) {
			logger.Error("Failed to authorize user", zap.Error(err))
		}
		redirectToLogin(c)
		return nil, false
	}
	scope.user = user

	repoID := c.Param("repo_id")
	if _, err := uuid.Parse(repoID); err != nil {
		notFound(c)
		return nil, false
	}
	allowed, err := rs.App.Auth.AuthorizeUserForRepo(tx, user, repoID)
	if err != nil {
		logger.Error("Failed to authorize user for repo", zap.String("repo_id", repoID), zap.Error(err))
	}
	if err != nil || !allowed {
		notFound(c)
		return nil, false
	}

	modelID := c.Param("model_id")
	if _, err := uuid.Parse(modelID); err != nil {
		badRequest(c)
		return nil, false
	}
	allowed, err = rs.App.Auth.AuthorizeUserForModel(tx, user, modelID)
	if err != nil {
		logger.Error("Failed to authorize user for model", zap.String("model_id", modelID), zap.Error(err))
	}
	if err != nil || !allowed {
		notFound(c)
		return nil, false
	}

	scope.repoID = repoID
	scope.modelID = modelID

	opened = true
	return scope, true
}

// loadLayout fills in the page layout for the scope's model. On failure it
// answers 404 and closes the scope.
func (rs *RestfulServer) loadLayout(c *gin.Context, scope *alertScope) bool {
	layout, err := rs.App.Model.GetModelLayoutInfo(scope.tx, scope.repoID, scope.modelID)
	if err != nil {
		if !errors.Is(err, app.ErrModelNotFound) {
			serverLogger().Error("Failed to load model layout", zap.String("model_id", scope.modelID), zap.Error(err))
		}
		scope.close()
		notFound(c)
		return false
	}
	scope.layout = layout
	return true
}
