package model

import "time"

const (
	AlertTypeDown        = "down"
	AlertTypeUp          = "up"
	AlertTypeManualCheck = "manual_check"
	AlertTypeSSLExpiring = "ssl_expiring"
	AlertTypeSiteAdded   = "site_added"
	AlertTypeSiteRemoved = "site_removed"
)

type Alert struct {
	ID        string
	SiteID    string
	Type      string
	Message   string
	SentAt    time.Time
	Delivered bool
	Read      bool
}
