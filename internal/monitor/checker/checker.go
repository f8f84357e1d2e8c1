package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"sitewatch/internal/monitor/model"
)

type Checker interface {
	Check(ctx context.Context, url string) model.CheckResult
}

type httpChecker struct {
	client    *http.Client
	userAgent string
}

// Check issues a single GET request against url. Transport failures are
// classified into a small taxonomy and reported as a down result; they are
// never retried within the same cycle.
func (c *httpChecker) Check(ctx context.Context, url string) model.CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.CheckResult{
			Status:       model.SiteStatusDown,
			ErrorMessage: fmt.Sprintf("Invalid request: %v", err),
		}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return model.CheckResult{
			Status:       model.SiteStatusDown,
			ErrorMessage: classifyError(err),
		}
	}
	resp.Body.Close()

	elapsed := time.Since(start).Milliseconds()
	statusCode := resp.StatusCode
	result := model.CheckResult{
		HTTPStatus:     &statusCode,
		ResponseTimeMs: &elapsed,
	}
	if statusCode >= 200 && statusCode < 400 {
		result.Status = model.SiteStatusUp
	} else {
		result.Status = model.SiteStatusDown
		result.ErrorMessage = fmt.Sprintf("HTTP error: %d", statusCode)
	}
	return result
}

// classifyError maps a transport error to a human-readable message. Response
// time is intentionally not reported for timed-out requests.
func classifyError(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return "Request timeout"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "Could not resolve host"
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "Connection refused"
	}
	return fmt.Sprintf("Network error: %v", err)
}

func NewChecker(timeout time.Duration, userAgent string) Checker {
	return &httpChecker{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}
