package model

import "time"

const (
	ChangeTypeRegularCheck = "regular_check"
	ChangeTypeStatusChange = "status_change"
)

// SSLResult is the outcome of one certificate inspection.
type SSLResult struct {
	Valid        bool
	ExpiresAt    *time.Time
	DaysLeft     *int
	ErrorMessage string
}

// CheckResult is the transient outcome of one monitoring cycle. It is not
// persisted directly; the Site Monitor converts it into a LogRecord.
type CheckResult struct {
	Status         string
	HTTPStatus     *int
	ResponseTimeMs *int64
	ErrorMessage   string
	SSL            *SSLResult
}

// LogRecord is an immutable append-only fact about one completed cycle.
type LogRecord struct {
	SiteID         string    `json:"site_id"`
	Status         string    `json:"status"`
	HTTPStatus     *int      `json:"http_status,omitempty"`
	ResponseTimeMs *int64    `json:"response_time_ms,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	ChangeType     string    `json:"change_type"`
	PrevStatus     string    `json:"prev_status"`
	Timestamp      time.Time `json:"timestamp"`
}
