package repository

import (
	"context"
	"fmt"

	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error)
	GetAlerts(ctx context.Context, siteID string, unreadOnly bool, limit int, offset int) ([]model.Alert, error)
	MarkRead(ctx context.Context, alertID string) error
}

type alertRepository struct {
	db *gorm.DB
}

func (a *alertRepository) CreateAlert(ctx context.Context, alert model.Alert) (model.Alert, error) {
	result := a.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		return alert, fmt.Errorf("AlertRepository.CreateAlert: %w", result.Error)
	}
	return alert, nil
}

func (a *alertRepository) GetAlerts(ctx context.Context, siteID string, unreadOnly bool, limit int, offset int) ([]model.Alert, error) {
	query := a.db.WithContext(ctx)
	if siteID != "" {
		query = query.Where("site_id = ?", siteID)
	}
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	var alerts []model.Alert
	result := query.Order("sent_at desc").Limit(limit).Offset(offset).Find(&alerts)
	if result.Error != nil {
		return nil, fmt.Errorf("AlertRepository.GetAlerts: %w", result.Error)
	}
	return alerts, nil
}

func (a *alertRepository) MarkRead(ctx context.Context, alertID string) error {
	result := a.db.WithContext(ctx).Model(&model.Alert{}).Where("id = ?", alertID).Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("AlertRepository.MarkRead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("AlertRepository.MarkRead: %w", apperrors.ErrAlertNotFound)
	}
	return nil
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{
		db: db,
	}
}
