package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockhandler "sitewatch/internal/monitor/mocks/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddMonitorRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockMonitorHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().CreateSite().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetSites().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetSite().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateSite().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteSite().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().TriggerCheck().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().TriggerAllChecks().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetSiteLogs().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetAlerts().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().MarkAlertRead().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().StreamEvents().Return(emptySuccessHandler).AnyTimes()

	AddMonitorRoutes(r, mockHandler)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Create Site Route",
			method:         http.MethodPost,
			path:           "/sites",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Sites Route",
			method:         http.MethodGet,
			path:           "/sites",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Site Route",
			method:         http.MethodGet,
			path:           "/sites/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Site Route",
			method:         http.MethodPatch,
			path:           "/sites/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Site Route",
			method:         http.MethodDelete,
			path:           "/sites/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Trigger Check Route",
			method:         http.MethodPost,
			path:           "/sites/some-id/check",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Site Logs Route",
			method:         http.MethodGet,
			path:           "/sites/some-id/logs",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Trigger All Checks Route",
			method:         http.MethodPost,
			path:           "/checks",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Alerts Route",
			method:         http.MethodGet,
			path:           "/alerts",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Mark Alert Read Route",
			method:         http.MethodPatch,
			path:           "/alerts/some-id/read",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Stream Events Route",
			method:         http.MethodGet,
			path:           "/events",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
