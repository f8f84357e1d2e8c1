package model

import "time"

const (
	SiteStatusUp      = "up"
	SiteStatusDown    = "down"
	SiteStatusUnknown = "unknown"
)

type Site struct {
	ID            string `gorm:"default:(-)"`
	Name          string
	URL           string
	CheckInterval int // minutes
	Active        bool
	Status        string
	NotifyEmail   string
	LastAlertAt   *time.Time
	LastEmailAt   *time.Time
	SSLValid      *bool
	SSLExpiresAt  *time.Time
	SSLDaysLeft   *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsHTTPS reports whether the site's target uses the https scheme.
func (s Site) IsHTTPS() bool {
	return len(s.URL) >= 8 && s.URL[:8] == "https://"
}
