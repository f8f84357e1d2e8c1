package routes

import (
	"sitewatch/internal/monitor/api/handler"

	"github.com/gin-gonic/gin"
)

func AddMonitorRoutes(r *gin.Engine, h handler.MonitorHandler) {
	siteRoutes := r.Group("/sites")
	siteRoutes.POST("", h.CreateSite())
	siteRoutes.GET("", h.GetSites())
	siteRoutes.GET("/:id", h.GetSite())
	siteRoutes.PATCH("/:id", h.UpdateSite())
	siteRoutes.DELETE("/:id", h.DeleteSite())
	siteRoutes.POST("/:id/check", h.TriggerCheck())
	siteRoutes.GET("/:id/logs", h.GetSiteLogs())

	r.POST("/checks", h.TriggerAllChecks())

	alertRoutes := r.Group("/alerts")
	alertRoutes.GET("", h.GetAlerts())
	alertRoutes.PATCH("/:id/read", h.MarkAlertRead())

	r.GET("/events", h.StreamEvents())
}
