package response

import (
	"time"

	"sitewatch/internal/monitor/model"
)

type AlertResponse struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"site_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
	Delivered bool      `json:"delivered"`
	Read      bool      `json:"read"`
}

func NewAlertResponse(alert model.Alert) AlertResponse {
	return AlertResponse{
		ID:        alert.ID,
		SiteID:    alert.SiteID,
		Type:      alert.Type,
		Message:   alert.Message,
		SentAt:    alert.SentAt,
		Delivered: alert.Delivered,
		Read:      alert.Read,
	}
}
