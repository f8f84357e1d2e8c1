package response

import (
	"time"

	"sitewatch/internal/monitor/model"
)

type Response struct {
	Message string `json:"message"`
}

type SiteResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	CheckInterval int        `json:"check_interval"`
	Active        bool       `json:"active"`
	Status        string     `json:"status"`
	NotifyEmail   string     `json:"notify_email,omitempty"`
	LastAlertAt   *time.Time `json:"last_alert_at,omitempty"`
	SSLValid      *bool      `json:"ssl_valid,omitempty"`
	SSLExpiresAt  *time.Time `json:"ssl_expires_at,omitempty"`
	SSLDaysLeft   *int       `json:"ssl_days_left,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewSiteResponse(site model.Site) SiteResponse {
	return SiteResponse{
		ID:            site.ID,
		Name:          site.Name,
		URL:           site.URL,
		CheckInterval: site.CheckInterval,
		Active:        site.Active,
		Status:        site.Status,
		NotifyEmail:   site.NotifyEmail,
		LastAlertAt:   site.LastAlertAt,
		SSLValid:      site.SSLValid,
		SSLExpiresAt:  site.SSLExpiresAt,
		SSLDaysLeft:   site.SSLDaysLeft,
		CreatedAt:     site.CreatedAt,
		UpdatedAt:     site.UpdatedAt,
	}
}
