package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "sitewatch/internal/monitor/errors"
	mockengine "sitewatch/internal/monitor/mocks/engine"
	mockrepository "sitewatch/internal/monitor/mocks/repository"
	"sitewatch/internal/monitor/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceMocks struct {
	sites     *mockrepository.MockSiteRepository
	alerts    *mockrepository.MockAlertRepository
	logs      *mockrepository.MockLogRepository
	scheduler *mockengine.MockScheduler
}

func newTestService(t *testing.T) (SiteService, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		sites:     mockrepository.NewMockSiteRepository(ctrl),
		alerts:    mockrepository.NewMockAlertRepository(ctrl),
		logs:      mockrepository.NewMockLogRepository(ctrl),
		scheduler: mockengine.NewMockScheduler(ctrl),
	}
	return NewSiteService(mocks.sites, mocks.alerts, mocks.logs, mocks.scheduler, zap.NewNop()), mocks
}

func TestSiteService_CreateSite(t *testing.T) {
	ctx := context.Background()
	input := model.Site{
		Name:          "Example",
		URL:           "https://example.com",
		CheckInterval: 5,
		Active:        true,
		NotifyEmail:   "ops@example.com",
	}
	stored := input
	stored.ID = "site-1"
	stored.Status = model.SiteStatusUnknown

	testCases := []struct {
		name       string
		input      model.Site
		setupMocks func(mocks serviceMocks)
		expectErr  error
	}{
		{
			name:  "Success Active site is scheduled",
			input: input,
			setupMocks: func(mocks serviceMocks) {
				created := input
				created.Status = model.SiteStatusUnknown
				mocks.sites.EXPECT().CreateSite(ctx, created).Return(stored, nil)
				mocks.alerts.EXPECT().
					CreateAlert(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, alert model.Alert) (model.Alert, error) {
						assert.Equal(t, model.AlertTypeSiteAdded, alert.Type)
						assert.Equal(t, "site-1", alert.SiteID)
						return alert, nil
					})
				mocks.scheduler.EXPECT().Schedule(stored)
			},
		},
		{
			name: "Success Inactive site is not scheduled",
			input: func() model.Site {
				s := input
				s.Active = false
				return s
			}(),
			setupMocks: func(mocks serviceMocks) {
				inactive := stored
				inactive.Active = false
				mocks.sites.EXPECT().CreateSite(ctx, gomock.Any()).Return(inactive, nil)
				mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, nil)
			},
		},
		{
			name:  "Success Lifecycle alert failure is swallowed",
			input: input,
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().CreateSite(ctx, gomock.Any()).Return(stored, nil)
				mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, errors.New("db error"))
				mocks.scheduler.EXPECT().Schedule(stored)
			},
		},
		{
			name:  "Error Duplicate name",
			input: input,
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().CreateSite(ctx, gomock.Any()).Return(model.Site{}, apperrors.ErrSiteNameAlreadyExists)
			},
			expectErr: apperrors.ErrSiteNameAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newTestService(t)
			tc.setupMocks(mocks)

			created, err := service.CreateSite(ctx, tc.input)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.SiteStatusUnknown, created.Status)
			}
		})
	}
}

func TestSiteService_UpdateSite(t *testing.T) {
	ctx := context.Background()
	input := model.Site{ID: "site-1", Name: "Example", CheckInterval: 10}
	activate := true
	deactivate := false

	testCases := []struct {
		name       string
		active     *bool
		setupMocks func(mocks serviceMocks)
		expectErr  error
	}{
		{
			name:   "Success Active site is rescheduled",
			active: &activate,
			setupMocks: func(mocks serviceMocks) {
				updated := input
				updated.Active = true
				mocks.sites.EXPECT().UpdateSite(ctx, input, &activate).Return(updated, nil)
				mocks.scheduler.EXPECT().Reschedule(updated)
			},
		},
		{
			name:   "Success Deactivated site is cancelled",
			active: &deactivate,
			setupMocks: func(mocks serviceMocks) {
				updated := input
				updated.Active = false
				mocks.sites.EXPECT().UpdateSite(ctx, input, &deactivate).Return(updated, nil)
				mocks.scheduler.EXPECT().Cancel("site-1")
			},
		},
		{
			name: "Success Update without activity change keeps current state",
			setupMocks: func(mocks serviceMocks) {
				updated := input
				updated.Active = true
				mocks.sites.EXPECT().UpdateSite(ctx, input, nil).Return(updated, nil)
				mocks.scheduler.EXPECT().Reschedule(updated)
			},
		},
		{
			name: "Error Site not found",
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().UpdateSite(ctx, input, nil).Return(model.Site{}, apperrors.ErrSiteNotFound)
			},
			expectErr: apperrors.ErrSiteNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newTestService(t)
			tc.setupMocks(mocks)

			updated, err := service.UpdateSite(ctx, input, tc.active)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				require.NoError(t, err)
				if tc.active != nil {
					assert.Equal(t, *tc.active, updated.Active)
				}
			}
		})
	}
}

func TestSiteService_DeleteSite(t *testing.T) {
	ctx := context.Background()
	site := model.Site{ID: "site-1", Name: "Example"}

	testCases := []struct {
		name       string
		setupMocks func(mocks serviceMocks)
		expectErr  error
	}{
		{
			name: "Success Cancel precedes delete",
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().GetSiteById(ctx, "site-1").Return(site, nil)
				mocks.scheduler.EXPECT().Cancel("site-1")
				mocks.sites.EXPECT().DeleteSiteById(ctx, "site-1").Return(nil)
				mocks.alerts.EXPECT().
					CreateAlert(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, alert model.Alert) (model.Alert, error) {
						assert.Equal(t, model.AlertTypeSiteRemoved, alert.Type)
						return alert, nil
					})
			},
		},
		{
			name: "Error Site not found",
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().GetSiteById(ctx, "site-1").Return(model.Site{}, apperrors.ErrSiteNotFound)
			},
			expectErr: apperrors.ErrSiteNotFound,
		},
		{
			name: "Error Delete failure",
			setupMocks: func(mocks serviceMocks) {
				mocks.sites.EXPECT().GetSiteById(ctx, "site-1").Return(site, nil)
				mocks.scheduler.EXPECT().Cancel("site-1")
				mocks.sites.EXPECT().DeleteSiteById(ctx, "site-1").Return(errors.New("db error"))
			},
			expectErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newTestService(t)
			tc.setupMocks(mocks)

			err := service.DeleteSite(ctx, "site-1")

			if tc.expectErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSiteService_GetRecentLogs(t *testing.T) {
	ctx := context.Background()
	records := []model.LogRecord{
		{SiteID: "site-1", Status: model.SiteStatusUp, Timestamp: time.Now()},
	}

	testCases := []struct {
		name       string
		setupMocks func(mocks serviceMocks)
		expectErr  bool
	}{
		{
			name: "Success",
			setupMocks: func(mocks serviceMocks) {
				mocks.logs.EXPECT().GetRecent(ctx, "site-1", 50).Return(records, nil)
			},
		},
		{
			name: "Error Log store failure",
			setupMocks: func(mocks serviceMocks) {
				mocks.logs.EXPECT().GetRecent(ctx, "site-1", 50).Return(nil, errors.New("es error"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, mocks := newTestService(t)
			tc.setupMocks(mocks)

			got, err := service.GetRecentLogs(ctx, "site-1", 50)

			if tc.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, records, got)
			}
		})
	}
}

func TestSiteService_Alerts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Get alerts", func(t *testing.T) {
		service, mocks := newTestService(t)
		alerts := []model.Alert{{ID: "alert-1", SiteID: "site-1", Type: model.AlertTypeDown}}
		mocks.alerts.EXPECT().GetAlerts(ctx, "site-1", true, 20, 0).Return(alerts, nil)

		got, err := service.GetAlerts(ctx, "site-1", true, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, alerts, got)
	})

	t.Run("Success Mark alert read", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.alerts.EXPECT().MarkRead(ctx, "alert-1").Return(nil)

		assert.NoError(t, service.MarkAlertRead(ctx, "alert-1"))
	})

	t.Run("Error Mark read not found", func(t *testing.T) {
		service, mocks := newTestService(t)
		mocks.alerts.EXPECT().MarkRead(ctx, "alert-1").Return(apperrors.ErrAlertNotFound)

		assert.ErrorIs(t, service.MarkAlertRead(ctx, "alert-1"), apperrors.ErrAlertNotFound)
	})
}
