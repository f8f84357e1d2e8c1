package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sitewatch/internal/monitor/api/dto/request"
	"sitewatch/internal/monitor/api/dto/response"
	"sitewatch/internal/monitor/broadcast"
	"sitewatch/internal/monitor/engine"
	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/model"
	"sitewatch/internal/monitor/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type MonitorHandler interface {
	CreateSite() gin.HandlerFunc
	GetSites() gin.HandlerFunc
	GetSite() gin.HandlerFunc
	UpdateSite() gin.HandlerFunc
	DeleteSite() gin.HandlerFunc
	TriggerCheck() gin.HandlerFunc
	TriggerAllChecks() gin.HandlerFunc
	GetSiteLogs() gin.HandlerFunc
	GetAlerts() gin.HandlerFunc
	MarkAlertRead() gin.HandlerFunc
	StreamEvents() gin.HandlerFunc
}

type monitorHandler struct {
	logger      Logger
	siteService service.SiteService
	monitor     engine.Monitor
	broadcaster *broadcast.Broadcaster
	validator   *validator.Validate
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid URL", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (h *monitorHandler) validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return h.formatValidationError(validationErrs[0])
	}
	return "Invalid request"
}

func (h *monitorHandler) CreateSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateSiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if err := h.validator.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: h.validationMessage(err),
			})
			return
		}
		active := true
		if req.Active != nil {
			active = *req.Active
		}
		site, err := h.siteService.CreateSite(c, model.Site{
			Name:          req.Name,
			URL:           req.URL,
			CheckInterval: req.CheckInterval,
			NotifyEmail:   req.NotifyEmail,
			Active:        active,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNameAlreadyExists) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "Site name already exists",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.CreateSite: %w", err)
			h.logger.LoggingError(c, err, "failed to create site", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusCreated, response.NewSiteResponse(site))
	}
}

func (h *monitorHandler) GetSites() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		status := c.Query("status")
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be a non-negative integer",
			})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be a positive integer",
			})
			return
		}
		sites, err := h.siteService.GetSites(c, name, status, limit, offset)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetSites: %w", err)
			h.logger.LoggingError(c, err, "failed to list sites", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		resp := make([]response.SiteResponse, 0, len(sites))
		for _, site := range sites {
			resp = append(resp, response.NewSiteResponse(site))
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *monitorHandler) GetSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		site, err := h.siteService.GetSite(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetSite: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to get site %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewSiteResponse(site))
	}
}

func (h *monitorHandler) UpdateSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req request.UpdateSiteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if err := h.validator.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: h.validationMessage(err),
			})
			return
		}
		updatedData := model.Site{
			ID:            id,
			Name:          req.Name,
			URL:           req.URL,
			CheckInterval: req.CheckInterval,
			NotifyEmail:   req.NotifyEmail,
		}
		site, err := h.siteService.UpdateSite(c, updatedData, req.Active)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.UpdateSite: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to update site %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewSiteResponse(site))
	}
}

func (h *monitorHandler) DeleteSite() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.siteService.DeleteSite(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.DeleteSite: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to delete site %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Site deleted",
		})
	}
}

// TriggerCheck forces an out-of-band cycle with the same alerting and
// broadcast behavior as a scheduled one.
func (h *monitorHandler) TriggerCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result, err := h.monitor.Run(c, id, engine.TriggerManual)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Site not found",
				})
				return
			}
			if errors.Is(err, apperrors.ErrSiteInactive) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "Site is not active",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.TriggerCheck: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to run check for site %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewCheckResponse(result))
	}
}

func (h *monitorHandler) TriggerAllChecks() gin.HandlerFunc {
	return func(c *gin.Context) {
		checked := h.monitor.RunAll(c, engine.TriggerManual)
		c.JSON(http.StatusOK, response.RunAllResponse{
			SitesChecked: checked,
		})
	}
}

func (h *monitorHandler) GetSiteLogs() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be a positive integer",
			})
			return
		}
		records, err := h.siteService.GetRecentLogs(c, id, limit)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetSiteLogs: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to get logs for site %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func (h *monitorHandler) GetAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		siteID := c.Query("site_id")
		unreadOnly := c.Query("unread") == "true"
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be a non-negative integer",
			})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be a positive integer",
			})
			return
		}
		alerts, err := h.siteService.GetAlerts(c, siteID, unreadOnly, limit, offset)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetAlerts: %w", err)
			h.logger.LoggingError(c, err, "failed to list alerts", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		resp := make([]response.AlertResponse, 0, len(alerts))
		for _, alert := range alerts {
			resp = append(resp, response.NewAlertResponse(alert))
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *monitorHandler) MarkAlertRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.siteService.MarkAlertRead(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrAlertNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Alert not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.MarkAlertRead: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to mark alert %s read", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Alert marked read",
		})
	}
}

// StreamEvents pushes live status events to the client as server-sent events
// until the client disconnects.
func (h *monitorHandler) StreamEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, unsubscribe := h.broadcaster.Subscribe()
		defer unsubscribe()
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Stream(func(w io.Writer) bool {
			select {
			case event, ok := <-events:
				if !ok {
					return false
				}
				c.SSEvent("status", event)
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}

func NewMonitorHandler(zapLogger *zap.Logger, siteService service.SiteService, monitor engine.Monitor, broadcaster *broadcast.Broadcaster) MonitorHandler {
	return &monitorHandler{
		logger:      NewLogger(zapLogger),
		siteService: siteService,
		monitor:     monitor,
		broadcaster: broadcaster,
		validator:   validator.New(),
	}
}
