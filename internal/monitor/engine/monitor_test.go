package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"sitewatch/internal/monitor/broadcast"
	apperrors "sitewatch/internal/monitor/errors"
	"sitewatch/internal/monitor/logbuffer"
	mockchecker "sitewatch/internal/monitor/mocks/checker"
	mocknotify "sitewatch/internal/monitor/mocks/notify"
	mockrepository "sitewatch/internal/monitor/mocks/repository"
	mocksslcheck "sitewatch/internal/monitor/mocks/sslcheck"
	"sitewatch/internal/monitor/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type monitorMocks struct {
	sites     *mockrepository.MockSiteRepository
	alerts    *mockrepository.MockAlertRepository
	logs      *mockrepository.MockLogRepository
	checker   *mockchecker.MockChecker
	inspector *mocksslcheck.MockInspector
	notifier  *mocknotify.MockNotifier
}

func newTestMonitor(t *testing.T, cfg Config) (Monitor, monitorMocks, *logbuffer.Buffer, *broadcast.Broadcaster) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := monitorMocks{
		sites:     mockrepository.NewMockSiteRepository(ctrl),
		alerts:    mockrepository.NewMockAlertRepository(ctrl),
		logs:      mockrepository.NewMockLogRepository(ctrl),
		checker:   mockchecker.NewMockChecker(ctrl),
		inspector: mocksslcheck.NewMockInspector(ctrl),
		notifier:  mocknotify.NewMockNotifier(ctrl),
	}
	buffer := logbuffer.NewBuffer(mocks.logs, time.Minute, 100, zap.NewNop())
	broadcaster := broadcast.NewBroadcaster()
	t.Cleanup(broadcaster.Close)
	monitor := NewMonitor(mocks.sites, mocks.alerts, buffer, mocks.checker, mocks.inspector, mocks.notifier, broadcaster, cfg, zap.NewNop())
	return monitor, mocks, buffer, broadcaster
}

func TestSiteMonitor_Run_SiteLookupFailures(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMocks  func(mocks monitorMocks)
		expectedErr error
	}{
		{
			name: "Error Site not found",
			setupMocks: func(mocks monitorMocks) {
				mocks.sites.EXPECT().
					GetSiteById(ctx, "site-1").
					Return(model.Site{}, apperrors.ErrSiteNotFound)
			},
			expectedErr: apperrors.ErrSiteNotFound,
		},
		{
			name: "Error Site inactive",
			setupMocks: func(mocks monitorMocks) {
				mocks.sites.EXPECT().
					GetSiteById(ctx, "site-1").
					Return(model.Site{ID: "site-1", Active: false}, nil)
			},
			expectedErr: apperrors.ErrSiteInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			monitor, mocks, buffer, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})
			tc.setupMocks(mocks)

			_, err := monitor.Run(ctx, "site-1", TriggerScheduled)

			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, buffer.Pending())
		})
	}
}

func TestSiteMonitor_Run_UpToDownTransition(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:            "site-1",
		Name:          "Example",
		URL:           "http://example.com",
		CheckInterval: 5,
		Active:        true,
		Status:        model.SiteStatusUp,
		NotifyEmail:   "ops@example.com",
	}
	downResult := model.CheckResult{
		Status:       model.SiteStatusDown,
		ErrorMessage: "Connection refused",
	}

	monitor, mocks, buffer, broadcaster := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})
	events, unsub := broadcaster.Subscribe()
	defer unsub()

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(downResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusDown, nil).Return(nil)
	mocks.notifier.EXPECT().
		SendAlert(site, gomock.Any()).
		DoAndReturn(func(_ model.Site, alert model.Alert) error {
			assert.Equal(t, model.AlertTypeDown, alert.Type)
			assert.Equal(t, "Example is down: Connection refused", alert.Message)
			return nil
		})
	mocks.alerts.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert model.Alert) (model.Alert, error) {
			assert.True(t, alert.Delivered)
			assert.NotEmpty(t, alert.ID)
			return alert, nil
		})
	mocks.sites.EXPECT().MarkAlerted(ctx, site.ID, gomock.Any()).Return(nil)

	result, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	assert.Equal(t, model.SiteStatusDown, result.Status)

	pending := buffer.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, model.ChangeTypeStatusChange, pending[0].ChangeType)
	assert.Equal(t, model.SiteStatusUp, pending[0].PrevStatus)
	assert.Equal(t, model.SiteStatusDown, pending[0].Status)

	event := <-events
	assert.Equal(t, site.ID, event.SiteID)
	assert.Equal(t, model.SiteStatusDown, event.Status)
	assert.Nil(t, event.SSLValid)
}

func TestSiteMonitor_Run_DownToUpRecovery(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:          "site-1",
		Name:        "Example",
		URL:         "http://example.com",
		Active:      true,
		Status:      model.SiteStatusDown,
		NotifyEmail: "ops@example.com",
	}
	httpStatus := 200
	elapsed := int64(42)
	upResult := model.CheckResult{
		Status:         model.SiteStatusUp,
		HTTPStatus:     &httpStatus,
		ResponseTimeMs: &elapsed,
	}

	monitor, mocks, buffer, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(upResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusUp, nil).Return(nil)
	mocks.notifier.EXPECT().
		SendAlert(site, gomock.Any()).
		DoAndReturn(func(_ model.Site, alert model.Alert) error {
			assert.Equal(t, model.AlertTypeUp, alert.Type)
			assert.Equal(t, "Example is back up", alert.Message)
			return nil
		})
	mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, nil)
	mocks.sites.EXPECT().MarkAlerted(ctx, site.ID, gomock.Any()).Return(nil)

	_, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	pending := buffer.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, model.ChangeTypeStatusChange, pending[0].ChangeType)
}

func TestSiteMonitor_Run_UnchangedStatusDoesNotAlert(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:          "site-1",
		Name:        "Example",
		URL:         "http://example.com",
		Active:      true,
		Status:      model.SiteStatusUp,
		NotifyEmail: "ops@example.com",
	}
	httpStatus := 200
	elapsed := int64(10)
	upResult := model.CheckResult{
		Status:         model.SiteStatusUp,
		HTTPStatus:     &httpStatus,
		ResponseTimeMs: &elapsed,
	}

	monitor, mocks, buffer, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(upResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusUp, nil).Return(nil)

	_, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	pending := buffer.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, model.ChangeTypeRegularCheck, pending[0].ChangeType)
}

func TestSiteMonitor_Run_FirstCheckFromUnknown(t *testing.T) {
	ctx := context.Background()
	// A freshly created site has no prior status.
	site := model.Site{
		ID:     "site-1",
		Name:   "Example",
		URL:    "http://example.com",
		Active: true,
		Status: "",
	}
	downResult := model.CheckResult{
		Status:       model.SiteStatusDown,
		ErrorMessage: "Request timeout",
	}

	monitor, mocks, buffer, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(downResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusDown, nil).Return(nil)

	// unknown -> down is a status change in the log but not an alert.
	_, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	pending := buffer.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, model.ChangeTypeStatusChange, pending[0].ChangeType)
	assert.Equal(t, model.SiteStatusUnknown, pending[0].PrevStatus)
}

func TestSiteMonitor_Run_SSLExpiryWarning(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:          "site-1",
		Name:        "Example",
		URL:         "https://example.com",
		Active:      true,
		Status:      model.SiteStatusUp,
		NotifyEmail: "ops@example.com",
	}
	httpStatus := 200
	elapsed := int64(10)
	upResult := model.CheckResult{
		Status:         model.SiteStatusUp,
		HTTPStatus:     &httpStatus,
		ResponseTimeMs: &elapsed,
	}
	expiresAt := time.Now().Add(10 * 24 * time.Hour)
	daysLeft := 10
	sslResult := model.SSLResult{
		Valid:     true,
		ExpiresAt: &expiresAt,
		DaysLeft:  &daysLeft,
	}

	monitor, mocks, _, broadcaster := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})
	events, unsub := broadcaster.Subscribe()
	defer unsub()

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(upResult)
	mocks.inspector.EXPECT().Inspect(ctx, site.URL).Return(sslResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusUp, &sslResult).Return(nil)
	mocks.notifier.EXPECT().
		SendAlert(site, gomock.Any()).
		DoAndReturn(func(_ model.Site, alert model.Alert) error {
			assert.Equal(t, model.AlertTypeSSLExpiring, alert.Type)
			assert.Equal(t, "SSL certificate for Example expires in 10 days", alert.Message)
			return nil
		})
	mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, nil)
	mocks.sites.EXPECT().MarkAlerted(ctx, site.ID, gomock.Any()).Return(nil)

	result, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	require.NotNil(t, result.SSL)

	event := <-events
	require.NotNil(t, event.SSLValid)
	assert.True(t, *event.SSLValid)
	require.NotNil(t, event.SSLDaysLeft)
	assert.Equal(t, 10, *event.SSLDaysLeft)
}

func TestSiteMonitor_Run_SSLConnectionFailureKeepsStoredState(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:          "site-1",
		Name:        "Example",
		URL:         "https://example.com",
		Active:      true,
		Status:      model.SiteStatusUp,
		NotifyEmail: "ops@example.com",
	}
	downResult := model.CheckResult{
		Status:       model.SiteStatusDown,
		ErrorMessage: "Request timeout",
	}
	// No certificate was seen, so no validity determination exists.
	sslResult := model.SSLResult{ErrorMessage: "Connection timeout"}

	monitor, mocks, _, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(downResult)
	mocks.inspector.EXPECT().Inspect(ctx, site.URL).Return(sslResult)
	// TLS fields must not be overwritten on a connection-level failure.
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusDown, nil).Return(nil)
	mocks.notifier.EXPECT().SendAlert(site, gomock.Any()).Return(nil)
	mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, nil)
	mocks.sites.EXPECT().MarkAlerted(ctx, site.ID, gomock.Any()).Return(nil)

	_, err := monitor.Run(ctx, site.ID, TriggerScheduled)
	require.NoError(t, err)
}

func TestSiteMonitor_Run_ManualCheckCooldown(t *testing.T) {
	ctx := context.Background()
	recentAlert := time.Now().Add(-5 * time.Minute)
	staleAlert := time.Now().Add(-time.Hour)

	testCases := []struct {
		name        string
		trigger     Trigger
		lastAlertAt *time.Time
		expectAlert bool
	}{
		{
			name:        "Manual check with elapsed cooldown re-alerts",
			trigger:     TriggerManual,
			lastAlertAt: &staleAlert,
			expectAlert: true,
		},
		{
			name:        "Manual check with no prior alert re-alerts",
			trigger:     TriggerManual,
			lastAlertAt: nil,
			expectAlert: true,
		},
		{
			name:        "Manual check within cooldown is suppressed",
			trigger:     TriggerManual,
			lastAlertAt: &recentAlert,
			expectAlert: false,
		},
		{
			name:        "Scheduled check never re-alerts on unchanged down",
			trigger:     TriggerScheduled,
			lastAlertAt: &staleAlert,
			expectAlert: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			site := model.Site{
				ID:          "site-1",
				Name:        "Example",
				URL:         "http://example.com",
				Active:      true,
				Status:      model.SiteStatusDown,
				NotifyEmail: "ops@example.com",
				LastAlertAt: tc.lastAlertAt,
			}
			downResult := model.CheckResult{
				Status:       model.SiteStatusDown,
				ErrorMessage: "Connection refused",
			}

			monitor, mocks, _, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

			mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
			mocks.checker.EXPECT().Check(ctx, site.URL).Return(downResult)
			mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusDown, nil).Return(nil)
			if tc.expectAlert {
				mocks.notifier.EXPECT().
					SendAlert(site, gomock.Any()).
					DoAndReturn(func(_ model.Site, alert model.Alert) error {
						assert.Equal(t, model.AlertTypeManualCheck, alert.Type)
						return nil
					})
				mocks.alerts.EXPECT().CreateAlert(ctx, gomock.Any()).Return(model.Alert{}, nil)
				mocks.sites.EXPECT().MarkAlerted(ctx, site.ID, gomock.Any()).Return(nil)
			}

			_, err := monitor.Run(ctx, site.ID, tc.trigger)
			require.NoError(t, err)
		})
	}
}

func TestSiteMonitor_Run_DeliveryFailureStillPersistsAlert(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:          "site-1",
		Name:        "Example",
		URL:         "http://example.com",
		Active:      true,
		Status:      model.SiteStatusUp,
		NotifyEmail: "ops@example.com",
	}
	downResult := model.CheckResult{
		Status:       model.SiteStatusDown,
		ErrorMessage: "Connection refused",
	}

	monitor, mocks, _, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(downResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusDown, nil).Return(nil)
	mocks.notifier.EXPECT().SendAlert(site, gomock.Any()).Return(errors.New("smtp error"))
	mocks.alerts.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert model.Alert) (model.Alert, error) {
			assert.False(t, alert.Delivered)
			return alert, nil
		})
	// MarkAlerted must not run when delivery failed, so the next manual check
	// can re-alert immediately.

	_, err := monitor.Run(ctx, site.ID, TriggerScheduled)
	require.NoError(t, err)
}

func TestSiteMonitor_Run_PersistenceFailureDoesNotAbortCycle(t *testing.T) {
	ctx := context.Background()
	site := model.Site{
		ID:     "site-1",
		Name:   "Example",
		URL:    "http://example.com",
		Active: true,
		Status: model.SiteStatusUp,
	}
	httpStatus := 200
	elapsed := int64(10)
	upResult := model.CheckResult{
		Status:         model.SiteStatusUp,
		HTTPStatus:     &httpStatus,
		ResponseTimeMs: &elapsed,
	}

	monitor, mocks, buffer, broadcaster := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})
	events, unsub := broadcaster.Subscribe()
	defer unsub()

	mocks.sites.EXPECT().GetSiteById(ctx, site.ID).Return(site, nil)
	mocks.checker.EXPECT().Check(ctx, site.URL).Return(upResult)
	mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusUp, nil).Return(errors.New("db error"))

	result, err := monitor.Run(ctx, site.ID, TriggerScheduled)

	require.NoError(t, err)
	assert.Equal(t, model.SiteStatusUp, result.Status)
	assert.Len(t, buffer.Pending(), 1)

	event := <-events
	assert.Equal(t, model.SiteStatusUp, event.Status)
}

func TestSiteMonitor_RunAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Checks every active site", func(t *testing.T) {
		sites := []model.Site{
			{ID: "site-1", Name: "A", URL: "http://a.example.com", Active: true, Status: model.SiteStatusUp},
			{ID: "site-2", Name: "B", URL: "http://b.example.com", Active: true, Status: model.SiteStatusUp},
		}
		httpStatus := 200
		elapsed := int64(10)
		upResult := model.CheckResult{
			Status:         model.SiteStatusUp,
			HTTPStatus:     &httpStatus,
			ResponseTimeMs: &elapsed,
		}

		monitor, mocks, buffer, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

		mocks.sites.EXPECT().GetActiveSites(ctx).Return(sites, nil)
		for _, site := range sites {
			mocks.checker.EXPECT().Check(ctx, site.URL).Return(upResult)
			mocks.sites.EXPECT().UpdateSiteStatus(ctx, site.ID, model.SiteStatusUp, nil).Return(nil)
		}

		checked := monitor.RunAll(ctx, TriggerManual)

		assert.Equal(t, 2, checked)
		assert.Len(t, buffer.Pending(), 2)
	})

	t.Run("Error Repository failure returns zero", func(t *testing.T) {
		monitor, mocks, _, _ := newTestMonitor(t, Config{SSLExpiryWarnDays: 30, AlertCooldown: 15 * time.Minute})

		mocks.sites.EXPECT().GetActiveSites(ctx).Return(nil, errors.New("db error"))

		assert.Equal(t, 0, monitor.RunAll(ctx, TriggerManual))
	})
}
