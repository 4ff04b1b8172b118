package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/metrics"
	"liyu1981.xyz/model-monitor-service/pkg/ui"
)

type RestfulServer struct {
	Server           *gin.Engine
	App              *app.App
	RateLimiterStore *app.RateLimiterStore
}

// CheckLimiter reports whether the request may proceed. Without a store
// nothing is limited.
func (rs *RestfulServer) CheckLimiter(c *gin.Context) bool {
	return rs.RateLimiterStore.Allow(app.ClientKey(c.ClientIP()))
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(metrics.GinMiddleware())
	rs.Server.SetHTMLTemplate(ui.Templates())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	alerts := rs.Server.Group("/repos/:repo_id/models/:model_id/production_alerts")
	{
		alerts.GET("/", rs.ListAlerts)
		alerts.GET("/new", rs.NewAlert)
		alerts.POST("/new", rs.CreateAlert)
		alerts.GET("/:alert_id/edit", rs.EditAlert)
		alerts.POST("/:alert_id/edit", rs.UpdateAlert)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
