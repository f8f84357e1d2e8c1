package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/model"
	"sitewatch/internal/monitor/repository"

	"go.uber.org/zap"
)

// Scheduler owns one timer per active site. A site's next timer is armed only
// after its previous cycle completes, using the site's current interval, so
// cycles for one site never overlap and interval edits take effect on the
// next tick.
type Scheduler interface {
	Schedule(site model.Site)
	Reschedule(site model.Site)
	Cancel(siteID string)
	StartAll(ctx context.Context) error
	Stop()
}

type siteScheduler struct {
	mu           sync.Mutex
	entries      map[string]*timerEntry
	monitor      Monitor
	sites        repository.SiteRepository
	cycleTimeout time.Duration
	logger       *zap.Logger
	wg           sync.WaitGroup
	stopped      bool
}

type timerEntry struct {
	cancel context.CancelFunc
}

// Schedule arms a timer for site, cancelling any prior timer for the same id
// first. The first check fires immediately.
func (s *siteScheduler) Schedule(site model.Site) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if prev, ok := s.entries[site.ID]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	entry := &timerEntry{cancel: cancel}
	s.entries[site.ID] = entry
	s.wg.Add(1)
	go s.runLoop(ctx, entry, site.ID, time.Duration(site.CheckInterval)*time.Minute)
	s.logger.Info("scheduled site", zap.String("site_id", site.ID), zap.Int("interval_minutes", site.CheckInterval))
}

func (s *siteScheduler) Reschedule(site model.Site) {
	s.Schedule(site)
}

// Cancel stops the site's timer. Safe to call for an unknown id.
func (s *siteScheduler) Cancel(siteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.entries[siteID]; ok {
		entry.cancel()
		delete(s.entries, siteID)
		s.logger.Info("cancelled site schedule", zap.String("site_id", siteID))
	}
}

// StartAll loads every active site and schedules it, each with an immediate
// first check.
func (s *siteScheduler) StartAll(ctx context.Context) error {
	sites, err := s.sites.GetActiveSites(ctx)
	if err != nil {
		return fmt.Errorf("Scheduler.StartAll: %w", err)
	}
	for _, site := range sites {
		s.Schedule(site)
	}
	return nil
}

// Stop cancels every timer and waits for in-flight cycles to finish.
func (s *siteScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, entry := range s.entries {
		entry.cancel()
		delete(s.entries, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *siteScheduler) runLoop(ctx context.Context, self *timerEntry, siteID string, interval time.Duration) {
	defer s.wg.Done()
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}
		if !s.runCycle(ctx, siteID) {
			s.remove(siteID, self)
			return
		}
		// Re-arm with the site's current interval. If the reload fails for a
		// transient reason, keep the previous interval.
		site, err := s.sites.GetSiteById(ctx, siteID)
		if err != nil {
			if errors.Is(err, apperrors.ErrSiteNotFound) {
				s.remove(siteID, self)
				return
			}
			s.logger.Error("failed to reload site", zap.Error(fmt.Errorf("Scheduler.runLoop: %w", err)), zap.String("site_id", siteID))
		} else {
			if !site.Active {
				s.remove(siteID, self)
				return
			}
			interval = time.Duration(site.CheckInterval) * time.Minute
		}
		timer.Reset(interval)
	}
}

// runCycle runs one cycle and reports whether the loop should keep going. A
// panic or an error local to one cycle never stops the scheduler; only a
// deleted or deactivated site ends its loop.
func (s *siteScheduler) runCycle(ctx context.Context, siteID string) (keep bool) {
	keep = true
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during monitoring cycle", zap.Any("panic", r), zap.String("site_id", siteID))
		}
	}()
	cycleCtx, cancel := context.WithTimeout(ctx, s.cycleTimeout)
	defer cancel()
	_, err := s.monitor.Run(cycleCtx, siteID, TriggerScheduled)
	if err != nil {
		if errors.Is(err, apperrors.ErrSiteNotFound) || errors.Is(err, apperrors.ErrSiteInactive) {
			return false
		}
		s.logger.Error("monitoring cycle failed", zap.Error(fmt.Errorf("Scheduler.runCycle: %w", err)), zap.String("site_id", siteID))
	}
	return keep
}

// remove drops the entry only if it is still this loop's own, so a newer
// timer armed by a concurrent Reschedule is left untouched.
func (s *siteScheduler) remove(siteID string, self *timerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.entries[siteID]; ok && current == self {
		delete(s.entries, siteID)
	}
	self.cancel()
}

func NewScheduler(monitor Monitor, sites repository.SiteRepository, cycleTimeout time.Duration, logger *zap.Logger) Scheduler {
	return &siteScheduler{
		entries:      make(map[string]*timerEntry),
		monitor:      monitor,
		sites:        sites,
		cycleTimeout: cycleTimeout,
		logger:       logger,
	}
}
