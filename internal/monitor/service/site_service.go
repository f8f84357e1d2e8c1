package service

import (
	"context"
	"fmt"
	"time"

	"sitewatch/internal/monitor/engine"
	"sitewatch/internal/monitor/model"
	"sitewatch/internal/monitor/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SiteService is the CRUD surface around the monitoring engine. Creating,
// updating or deleting a site keeps the scheduler in sync so a site never
// has a stale or leaked timer.
type SiteService interface {
	CreateSite(ctx context.Context, site model.Site) (model.Site, error)
	UpdateSite(ctx context.Context, updatedData model.Site, active *bool) (model.Site, error)
	DeleteSite(ctx context.Context, siteID string) error
	GetSite(ctx context.Context, siteID string) (model.Site, error)
	GetSites(ctx context.Context, name string, status string, limit int, offset int) ([]model.Site, error)
	GetRecentLogs(ctx context.Context, siteID string, limit int) ([]model.LogRecord, error)
	GetAlerts(ctx context.Context, siteID string, unreadOnly bool, limit int, offset int) ([]model.Alert, error)
	MarkAlertRead(ctx context.Context, alertID string) error
}

type siteService struct {
	sites     repository.SiteRepository
	alerts    repository.AlertRepository
	logs      repository.LogRepository
	scheduler engine.Scheduler
	logger    *zap.Logger
}

func (s *siteService) CreateSite(ctx context.Context, site model.Site) (model.Site, error) {
	site.Status = model.SiteStatusUnknown
	created, err := s.sites.CreateSite(ctx, site)
	if err != nil {
		return site, fmt.Errorf("SiteService.CreateSite: %w", err)
	}
	s.recordLifecycleAlert(ctx, created.ID, model.AlertTypeSiteAdded, fmt.Sprintf("%s was added to monitoring", created.Name))
	if created.Active {
		s.scheduler.Schedule(created)
	}
	return created, nil
}

func (s *siteService) UpdateSite(ctx context.Context, updatedData model.Site, active *bool) (model.Site, error) {
	updated, err := s.sites.UpdateSite(ctx, updatedData, active)
	if err != nil {
		return model.Site{}, fmt.Errorf("SiteService.UpdateSite: %w", err)
	}
	if updated.Active {
		s.scheduler.Reschedule(updated)
	} else {
		s.scheduler.Cancel(updated.ID)
	}
	return updated, nil
}

func (s *siteService) DeleteSite(ctx context.Context, siteID string) error {
	site, err := s.sites.GetSiteById(ctx, siteID)
	if err != nil {
		return fmt.Errorf("SiteService.DeleteSite: %w", err)
	}
	s.scheduler.Cancel(siteID)
	if err = s.sites.DeleteSiteById(ctx, siteID); err != nil {
		return fmt.Errorf("SiteService.DeleteSite: %w", err)
	}
	s.recordLifecycleAlert(ctx, siteID, model.AlertTypeSiteRemoved, fmt.Sprintf("%s was removed from monitoring", site.Name))
	return nil
}

// recordLifecycleAlert persists an in-app alert for site add/remove events.
// These are never emailed, so a failure only loses a UI notification.
func (s *siteService) recordLifecycleAlert(ctx context.Context, siteID string, alertType string, message string) {
	_, err := s.alerts.CreateAlert(ctx, model.Alert{
		ID:      uuid.NewString(),
		SiteID:  siteID,
		Type:    alertType,
		Message: message,
		SentAt:  time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to record lifecycle alert", zap.Error(fmt.Errorf("SiteService.recordLifecycleAlert: %w", err)), zap.String("site_id", siteID))
	}
}

func (s *siteService) GetSite(ctx context.Context, siteID string) (model.Site, error) {
	site, err := s.sites.GetSiteById(ctx, siteID)
	if err != nil {
		return model.Site{}, fmt.Errorf("SiteService.GetSite: %w", err)
	}
	return site, nil
}

func (s *siteService) GetSites(ctx context.Context, name string, status string, limit int, offset int) ([]model.Site, error) {
	sites, err := s.sites.GetSites(ctx, name, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("SiteService.GetSites: %w", err)
	}
	return sites, nil
}

func (s *siteService) GetRecentLogs(ctx context.Context, siteID string, limit int) ([]model.LogRecord, error) {
	records, err := s.logs.GetRecent(ctx, siteID, limit)
	if err != nil {
		return nil, fmt.Errorf("SiteService.GetRecentLogs: %w", err)
	}
	return records, nil
}

func (s *siteService) GetAlerts(ctx context.Context, siteID string, unreadOnly bool, limit int, offset int) ([]model.Alert, error) {
	alerts, err := s.alerts.GetAlerts(ctx, siteID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("SiteService.GetAlerts: %w", err)
	}
	return alerts, nil
}

func (s *siteService) MarkAlertRead(ctx context.Context, alertID string) error {
	if err := s.alerts.MarkRead(ctx, alertID); err != nil {
		return fmt.Errorf("SiteService.MarkAlertRead: %w", err)
	}
	return nil
}

func NewSiteService(
	sites repository.SiteRepository,
	alerts repository.AlertRepository,
	logs repository.LogRepository,
	scheduler engine.Scheduler,
	logger *zap.Logger,
) SiteService {
	return &siteService{
		sites:     sites,
		alerts:    alerts,
		logs:      logs,
		scheduler: scheduler,
		logger:    logger,
	}
}
