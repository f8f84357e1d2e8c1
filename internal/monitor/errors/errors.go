package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrSiteNotFound          = errors.New("site not found")
	ErrSiteInactive          = errors.New("site is not active")
	ErrSiteNameAlreadyExists = errors.New("site name already exists")
	ErrAlertNotFound         = errors.New("alert not found")
	ErrLogRecordNotFound     = errors.New("log record not found")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
