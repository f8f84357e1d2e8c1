package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteRepository interface {
	CreateSite(ctx context.Context, site model.Site) (model.Site, error)
	GetSiteById(ctx context.Context, siteID string) (model.Site, error)
	GetActiveSites(ctx context.Context) ([]model.Site, error)
	GetSites(ctx context.Context, name string, status string, limit int, offset int) ([]model.Site, error)
	UpdateSite(ctx context.Context, updatedData model.Site, active *bool) (model.Site, error)
	UpdateSiteStatus(ctx context.Context, siteID string, status string, ssl *model.SSLResult) error
	MarkAlerted(ctx context.Context, siteID string, at time.Time) error
	DeleteSiteById(ctx context.Context, siteID string) error
}

type siteRepository struct {
	db *gorm.DB
}

func (s *siteRepository) CreateSite(ctx context.Context, site model.Site) (model.Site, error) {
	result := s.db.WithContext(ctx).Create(&site)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return site, fmt.Errorf("SiteRepository.CreateSite: %w", apperrors.ErrSiteNameAlreadyExists)
		}
		return site, fmt.Errorf("SiteRepository.CreateSite: %w", result.Error)
	}
	return site, nil
}

func (s *siteRepository) GetSiteById(ctx context.Context, siteID string) (model.Site, error) {
	var site model.Site
	result := s.db.WithContext(ctx).First(&site, "id = ?", siteID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return site, fmt.Errorf("SiteRepository.GetSiteById: %w", apperrors.ErrSiteNotFound)
		}
		return site, fmt.Errorf("SiteRepository.GetSiteById: %w", result.Error)
	}
	return site, nil
}

func (s *siteRepository) GetActiveSites(ctx context.Context) ([]model.Site, error) {
	var sites []model.Site
	result := s.db.WithContext(ctx).Where("active = ?", true).Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("SiteRepository.GetActiveSites: %w", result.Error)
	}
	return sites, nil
}

func (s *siteRepository) GetSites(ctx context.Context, name string, status string, limit int, offset int) ([]model.Site, error) {
	query := s.db.WithContext(ctx)
	if name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var sites []model.Site
	result := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&sites)
	if result.Error != nil {
		return nil, fmt.Errorf("SiteRepository.GetSites: %w", result.Error)
	}
	return sites, nil
}

// UpdateSite writes the provided fields only. Updates go through a column map
// because a struct update drops zero values, which would make it impossible
// to persist active=false.
func (s *siteRepository) UpdateSite(ctx context.Context, updatedData model.Site, active *bool) (model.Site, error) {
	updates := map[string]interface{}{}
	if updatedData.Name != "" {
		updates["name"] = updatedData.Name
	}
	if updatedData.URL != "" {
		updates["url"] = updatedData.URL
	}
	if updatedData.CheckInterval != 0 {
		updates["check_interval"] = updatedData.CheckInterval
	}
	if updatedData.NotifyEmail != "" {
		updates["notify_email"] = updatedData.NotifyEmail
	}
	if active != nil {
		updates["active"] = *active
	}
	var site model.Site
	result := s.db.WithContext(ctx).Model(&site).Clauses(clause.Returning{}).Where("id = ?", updatedData.ID).Updates(updates)
	if result.Error != nil {
		return site, fmt.Errorf("SiteRepository.UpdateSite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return site, fmt.Errorf("SiteRepository.UpdateSite: %w", apperrors.ErrSiteNotFound)
	}
	return site, nil
}

// UpdateSiteStatus persists the outcome of one cycle. TLS fields are written
// only when a TLS validity determination was obtained.
func (s *siteRepository) UpdateSiteStatus(ctx context.Context, siteID string, status string, ssl *model.SSLResult) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if ssl != nil {
		updates["ssl_valid"] = ssl.Valid
		updates["ssl_expires_at"] = ssl.ExpiresAt
		updates["ssl_days_left"] = ssl.DaysLeft
	}
	result := s.db.WithContext(ctx).Model(&model.Site{}).Where("id = ?", siteID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("SiteRepository.UpdateSiteStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("SiteRepository.UpdateSiteStatus: %w", apperrors.ErrSiteNotFound)
	}
	return nil
}

func (s *siteRepository) MarkAlerted(ctx context.Context, siteID string, at time.Time) error {
	result := s.db.WithContext(ctx).Model(&model.Site{}).Where("id = ?", siteID).Updates(map[string]interface{}{
		"last_alert_at": at,
		"last_email_at": at,
	})
	if result.Error != nil {
		return fmt.Errorf("SiteRepository.MarkAlerted: %w", result.Error)
	}
	return nil
}

func (s *siteRepository) DeleteSiteById(ctx context.Context, siteID string) error {
	result := s.db.WithContext(ctx).Where("id = ?", siteID).Delete(&model.Site{})
	if result.Error != nil {
		return fmt.Errorf("SiteRepository.DeleteSiteById: %w", result.Error)
	}
	return nil
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{
		db: db,
	}
}
