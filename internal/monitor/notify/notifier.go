package notify

import (
	"fmt"

	"sitewatch/internal/monitor/model"
	"sitewatch/pkg/mail"
)

// Notifier delivers alerts over the notification channel. Delivery is best
// effort: failures are reported to the caller and never retried.
type Notifier interface {
	SendAlert(site model.Site, alert model.Alert) error
}

type mailNotifier struct {
	sender mail.Sender
}

func (n *mailNotifier) SendAlert(site model.Site, alert model.Alert) error {
	if site.NotifyEmail == "" {
		return fmt.Errorf("MailNotifier.SendAlert: site %s has no notification email", site.ID)
	}
	subject := alertSubject(site, alert)
	err := n.sender.SendMail([]string{site.NotifyEmail}, subject, generateHTMLBody(site, alert), alert.Message)
	if err != nil {
		return fmt.Errorf("MailNotifier.SendAlert: %w", err)
	}
	return nil
}

func alertSubject(site model.Site, alert model.Alert) string {
	switch alert.Type {
	case model.AlertTypeDown:
		return fmt.Sprintf("[SiteWatch] %s is DOWN", site.Name)
	case model.AlertTypeUp:
		return fmt.Sprintf("[SiteWatch] %s is back UP", site.Name)
	case model.AlertTypeSSLExpiring:
		return fmt.Sprintf("[SiteWatch] SSL certificate for %s is expiring", site.Name)
	case model.AlertTypeManualCheck:
		return fmt.Sprintf("[SiteWatch] %s is still DOWN", site.Name)
	default:
		return fmt.Sprintf("[SiteWatch] %s", site.Name)
	}
}

func generateHTMLBody(site model.Site, alert model.Alert) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Site:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">URL:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Alert:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Time:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%s</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		site.Name,
		site.URL,
		alert.Message,
		alert.SentAt.Format("2006-01-02 15:04:05 MST"),
	)
}

func NewMailNotifier(sender mail.Sender) Notifier {
	return &mailNotifier{
		sender: sender,
	}
}
