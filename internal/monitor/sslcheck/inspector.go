package sslcheck

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"sitewatch/internal/monitor/model"
)

// Issue classifies the outcome of chain verification against local roots.
type Issue string

const (
	IssueSelfSigned       Issue = "self_signed"
	IssueIncompleteChain  Issue = "incomplete_chain"
	IssueNotYetValid      Issue = "not_yet_valid"
	IssueExpired          Issue = "expired"
	IssueHostnameMismatch Issue = "hostname_mismatch"
	IssueUnknown          Issue = "unknown"
)

// DefaultBenignIssues are verification issues that do not flag a reachable,
// unexpired certificate as invalid. The goal is uptime and expiry monitoring,
// not strict CA validation.
var DefaultBenignIssues = []Issue{IssueSelfSigned, IssueIncompleteChain, IssueNotYetValid}

type Config struct {
	Timeout      time.Duration
	BenignIssues []Issue
}

type Inspector interface {
	Inspect(ctx context.Context, rawURL string) model.SSLResult
}

type tlsInspector struct {
	timeout time.Duration
	benign  map[Issue]bool
	now     func() time.Time
}

// Inspect opens a dedicated TLS connection to the host behind rawURL and
// extracts certificate validity and expiry. Local trust failures are ignored
// during the handshake so that any presented certificate can be examined.
func (i *tlsInspector) Inspect(ctx context.Context, rawURL string) model.SSLResult {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != "https" || u.Hostname() == "" {
		return model.SSLResult{ErrorMessage: "Not a valid https URL"}
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "443"
	}
	addr := net.JoinHostPort(host, port)

	// One bounded retry if the handshake came back without a certificate.
	var state tls.ConnectionState
	for attempt := 0; attempt < 2; attempt++ {
		state, err = i.handshake(ctx, addr, host)
		if err == nil && len(state.PeerCertificates) > 0 {
			break
		}
	}
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return model.SSLResult{ErrorMessage: "Connection timeout"}
		}
		return model.SSLResult{ErrorMessage: fmt.Sprintf("Connection error: %v", err)}
	}
	if len(state.PeerCertificates) == 0 {
		return model.SSLResult{ErrorMessage: "No certificate presented"}
	}

	leaf := state.PeerCertificates[0]
	if leaf.NotAfter.IsZero() {
		// Encrypted connection but no expiry obtainable: accept best-effort.
		return model.SSLResult{Valid: true}
	}

	now := i.now()
	expiry := leaf.NotAfter
	daysLeft := int(expiry.Sub(now).Hours() / 24)
	result := model.SSLResult{
		ExpiresAt: &expiry,
		DaysLeft:  &daysLeft,
	}
	if !now.Before(expiry) {
		result.ErrorMessage = "Certificate expired"
		return result
	}
	issue := i.verify(leaf, state.PeerCertificates[1:], host, now)
	if issue == "" || i.benign[issue] {
		result.Valid = true
		return result
	}
	result.ErrorMessage = fmt.Sprintf("Certificate verification failed: %s", issue)
	return result
}

func (i *tlsInspector) handshake(ctx context.Context, addr string, serverName string) (tls.ConnectionState, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: i.timeout},
		Config: &tls.Config{
			ServerName:         serverName,
			InsecureSkipVerify: true,
		},
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return tls.ConnectionState{}, err
	}
	state := conn.(*tls.Conn).ConnectionState()
	conn.Close()
	return state, nil
}

// verify runs chain verification against the local roots and reduces the
// outcome to an Issue. An empty Issue means the chain verified cleanly.
func (i *tlsInspector) verify(leaf *x509.Certificate, rest []*x509.Certificate, host string, now time.Time) Issue {
	intermediates := x509.NewCertPool()
	for _, cert := range rest {
		intermediates.AddCert(cert)
	}
	_, err := leaf.Verify(x509.VerifyOptions{
		DNSName:       host,
		Intermediates: intermediates,
		CurrentTime:   now,
	})
	if err == nil {
		return ""
	}
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &authErr) {
		if bytes.Equal(leaf.RawIssuer, leaf.RawSubject) {
			return IssueSelfSigned
		}
		return IssueIncompleteChain
	}
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) && invalidErr.Reason == x509.Expired {
		if now.Before(leaf.NotBefore) {
			return IssueNotYetValid
		}
		return IssueExpired
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return IssueHostnameMismatch
	}
	return IssueUnknown
}

func NewInspector(cfg Config) Inspector {
	benignIssues := cfg.BenignIssues
	if benignIssues == nil {
		benignIssues = DefaultBenignIssues
	}
	benign := make(map[Issue]bool, len(benignIssues))
	for _, issue := range benignIssues {
		benign[issue] = true
	}
	return &tlsInspector{
		timeout: cfg.Timeout,
		benign:  benign,
		now:     time.Now,
	}
}
