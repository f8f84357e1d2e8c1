package engine

import (
	"context"
	"fmt"
	"time"

	"sitewatch/internal/monitor/broadcast"
	"sitewatch/internal/monitor/checker"
	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/logbuffer"
	"sitewatch/internal/monitor/model"
	"sitewatch/internal/monitor/notify"
	"sitewatch/internal/monitor/repository"
	"sitewatch/internal/monitor/sslcheck"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Trigger distinguishes scheduled ticks from manual out-of-band checks. Both
// run the same cycle; only the alert cooldown policy cares which one it was.
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

type Config struct {
	SSLExpiryWarnDays int
	AlertCooldown     time.Duration
}

type Monitor interface {
	Run(ctx context.Context, siteID string, trigger Trigger) (model.CheckResult, error)
	RunAll(ctx context.Context, trigger Trigger) int
}

type siteMonitor struct {
	sites       repository.SiteRepository
	alerts      repository.AlertRepository
	buffer      *logbuffer.Buffer
	checker     checker.Checker
	inspector   sslcheck.Inspector
	notifier    notify.Notifier
	broadcaster *broadcast.Broadcaster
	cfg         Config
	logger      *zap.Logger
}

// Run executes one monitoring cycle for one site: probe, TLS inspect for
// https targets, log, persist, alert, broadcast. An inactive or missing site
// skips the cycle entirely.
func (m *siteMonitor) Run(ctx context.Context, siteID string, trigger Trigger) (model.CheckResult, error) {
	site, err := m.sites.GetSiteById(ctx, siteID)
	if err != nil {
		return model.CheckResult{}, fmt.Errorf("SiteMonitor.Run: %w", err)
	}
	if !site.Active {
		return model.CheckResult{}, fmt.Errorf("SiteMonitor.Run: %w", apperrors.ErrSiteInactive)
	}
	return m.runCycle(ctx, site, trigger), nil
}

// RunAll forces a cycle for every active site and returns the number of sites
// checked. Used by the manual-trigger API.
func (m *siteMonitor) RunAll(ctx context.Context, trigger Trigger) int {
	sites, err := m.sites.GetActiveSites(ctx)
	if err != nil {
		m.logger.Error("failed to load active sites", zap.Error(fmt.Errorf("SiteMonitor.RunAll: %w", err)))
		return 0
	}
	for _, site := range sites {
		m.runCycle(ctx, site, trigger)
	}
	return len(sites)
}

func (m *siteMonitor) runCycle(ctx context.Context, site model.Site, trigger Trigger) model.CheckResult {
	result := m.checker.Check(ctx, site.URL)
	if site.IsHTTPS() {
		// TLS state is reported even when the probe failed for a non-TLS
		// reason, so the two run independently.
		ssl := m.inspector.Inspect(ctx, site.URL)
		result.SSL = &ssl
	}

	now := time.Now()
	prevStatus := site.Status
	if prevStatus == "" {
		prevStatus = model.SiteStatusUnknown
	}
	changeType := model.ChangeTypeRegularCheck
	if result.Status != prevStatus {
		changeType = model.ChangeTypeStatusChange
	}

	m.buffer.Append(model.LogRecord{
		SiteID:         site.ID,
		Status:         result.Status,
		HTTPStatus:     result.HTTPStatus,
		ResponseTimeMs: result.ResponseTimeMs,
		ErrorMessage:   result.ErrorMessage,
		ChangeType:     changeType,
		PrevStatus:     prevStatus,
		Timestamp:      now,
	})

	sslUpdate := sslDetermination(result.SSL)
	if err := m.sites.UpdateSiteStatus(ctx, site.ID, result.Status, sslUpdate); err != nil {
		m.logger.Error("failed to persist site status", zap.Error(fmt.Errorf("SiteMonitor.runCycle: %w", err)), zap.String("site_id", site.ID))
	}

	m.evaluateAlerts(ctx, site, result, prevStatus, trigger, now)

	event := broadcast.StatusEvent{
		SiteID:         site.ID,
		Status:         result.Status,
		ResponseTimeMs: result.ResponseTimeMs,
		Timestamp:      now,
	}
	if sslUpdate != nil {
		event.SSLValid = &sslUpdate.Valid
		event.SSLExpiresAt = sslUpdate.ExpiresAt
		event.SSLDaysLeft = sslUpdate.DaysLeft
	}
	m.broadcaster.Publish(event)
	return result
}

// sslDetermination returns the TLS fields to persist, or nil when no validity
// determination was obtained (non-https target, or the inspection never saw a
// certificate because the connection itself failed).
func sslDetermination(ssl *model.SSLResult) *model.SSLResult {
	if ssl == nil {
		return nil
	}
	if !ssl.Valid && ssl.ExpiresAt == nil {
		return nil
	}
	return ssl
}

func (m *siteMonitor) evaluateAlerts(ctx context.Context, site model.Site, result model.CheckResult, prevStatus string, trigger Trigger, now time.Time) {
	var alerts []model.Alert
	switch {
	case prevStatus == model.SiteStatusUp && result.Status == model.SiteStatusDown:
		message := fmt.Sprintf("%s is down", site.Name)
		if result.ErrorMessage != "" {
			message = fmt.Sprintf("%s is down: %s", site.Name, result.ErrorMessage)
		}
		alerts = append(alerts, m.newAlert(site, model.AlertTypeDown, message, now))
	case prevStatus == model.SiteStatusDown && result.Status == model.SiteStatusUp:
		alerts = append(alerts, m.newAlert(site, model.AlertTypeUp, fmt.Sprintf("%s is back up", site.Name), now))
	case trigger == TriggerManual && result.Status == model.SiteStatusDown && m.cooldownElapsed(site, now):
		alerts = append(alerts, m.newAlert(site, model.AlertTypeManualCheck, fmt.Sprintf("%s is still down", site.Name), now))
	}
	if ssl := result.SSL; ssl != nil && ssl.Valid && ssl.DaysLeft != nil && *ssl.DaysLeft <= m.cfg.SSLExpiryWarnDays {
		message := fmt.Sprintf("SSL certificate for %s expires in %d days", site.Name, *ssl.DaysLeft)
		alerts = append(alerts, m.newAlert(site, model.AlertTypeSSLExpiring, message, now))
	}
	for _, alert := range alerts {
		m.dispatchAlert(ctx, site, alert, now)
	}
}

func (m *siteMonitor) newAlert(site model.Site, alertType string, message string, now time.Time) model.Alert {
	return model.Alert{
		ID:      uuid.NewString(),
		SiteID:  site.ID,
		Type:    alertType,
		Message: message,
		SentAt:  now,
	}
}

func (m *siteMonitor) cooldownElapsed(site model.Site, now time.Time) bool {
	if site.LastAlertAt == nil {
		return true
	}
	return now.Sub(*site.LastAlertAt) >= m.cfg.AlertCooldown
}

// dispatchAlert attempts delivery, then persists the alert with the delivery
// flag so it stays visible even when email failed. Delivery success updates
// the site's last-alert timestamps.
func (m *siteMonitor) dispatchAlert(ctx context.Context, site model.Site, alert model.Alert, now time.Time) {
	alert.Delivered = true
	if err := m.notifier.SendAlert(site, alert); err != nil {
		alert.Delivered = false
		m.logger.Error("failed to deliver alert", zap.Error(fmt.Errorf("SiteMonitor.dispatchAlert: %w", err)), zap.String("site_id", site.ID), zap.String("alert_type", alert.Type))
	}
	if _, err := m.alerts.CreateAlert(ctx, alert); err != nil {
		m.logger.Error("failed to persist alert", zap.Error(fmt.Errorf("SiteMonitor.dispatchAlert: %w", err)), zap.String("site_id", site.ID))
	}
	if alert.Delivered {
		if err := m.sites.MarkAlerted(ctx, site.ID, now); err != nil {
			m.logger.Error("failed to update alert timestamps", zap.Error(fmt.Errorf("SiteMonitor.dispatchAlert: %w", err)), zap.String("site_id", site.ID))
		}
	}
}

func NewMonitor(
	sites repository.SiteRepository,
	alerts repository.AlertRepository,
	buffer *logbuffer.Buffer,
	healthChecker checker.Checker,
	inspector sslcheck.Inspector,
	notifier notify.Notifier,
	broadcaster *broadcast.Broadcaster,
	cfg Config,
	logger *zap.Logger,
) Monitor {
	return &siteMonitor{
		sites:       sites,
		alerts:      alerts,
		buffer:      buffer,
		checker:     healthChecker,
		inspector:   inspector,
		notifier:    notifier,
		broadcaster: broadcaster,
		cfg:         cfg,
		logger:      logger,
	}
}
