package response

import "sitewatch/internal/monitor/model"

type CheckResponse struct {
	Status         string            `json:"status"`
	HTTPStatus     *int              `json:"http_status,omitempty"`
	ResponseTimeMs *int64            `json:"response_time_ms,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
	SSL            *SSLCheckResponse `json:"ssl,omitempty"`
}

type SSLCheckResponse struct {
	Valid        bool    `json:"valid"`
	ExpiresAt    *string `json:"expires_at,omitempty"`
	DaysLeft     *int    `json:"days_left,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

type RunAllResponse struct {
	SitesChecked int `json:"sites_checked"`
}

func NewCheckResponse(result model.CheckResult) CheckResponse {
	resp := CheckResponse{
		Status:         result.Status,
		HTTPStatus:     result.HTTPStatus,
		ResponseTimeMs: result.ResponseTimeMs,
		ErrorMessage:   result.ErrorMessage,
	}
	if result.SSL != nil {
		ssl := &SSLCheckResponse{
			Valid:        result.SSL.Valid,
			DaysLeft:     result.SSL.DaysLeft,
			ErrorMessage: result.SSL.ErrorMessage,
		}
		if result.SSL.ExpiresAt != nil {
			formatted := result.SSL.ExpiresAt.Format("2006-01-02")
			ssl.ExpiresAt = &formatted
		}
		resp.SSL = ssl
	}
	return resp
}
