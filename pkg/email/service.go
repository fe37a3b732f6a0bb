package email

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/summitfg/summit-api/pkg/logger"
	"github.com/summitfg/summit-api/pkg/models"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	sendGridKey string
	useSendGrid bool
	log         logger.Logger
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
// A nil log falls back to the default info-level logger.
func NewService(fromEmail, fromName, sendGridAPIKey string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	lg := log.With("component", "email")

	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		lg.Info("Email service initialized with SendGrid")
	} else {
		lg.Warn("Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
		log:         lg,
	}
}

// SendInquiryNotification notifies the team inbox about a new contact-form
// submission. Failures are the caller's to log; an inquiry is never rejected
// because the notification could not be sent.
func (s *Service) SendInquiryNotification(teamInbox string, inquiry models.Inquiry) error {
	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New website inquiry</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</body>
		</html>
	`, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Subject, inquiry.Message)

	plainText := fmt.Sprintf(`New website inquiry

Name: %s
Email: %s
Phone: %s
Subject: %s

%s
`, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Subject, inquiry.Message)

	if s.useSendGrid {
		return s.sendViaSendGrid(teamInbox, "Team", subject, body, plainText)
	}
	return s.logEmailToConsole(teamInbox, subject, plainText)
}

// SendUnassignedLeadsDigest emails the founder a list of recent leads that
// still have no owner.
func (s *Service) SendUnassignedLeadsDigest(founderEmail string, leadNames []string) error {
	if len(leadNames) == 0 {
		return nil
	}

	subject := fmt.Sprintf("%d unassigned leads from the last 24 hours", len(leadNames))

	var items strings.Builder
	for _, name := range leadNames {
		items.WriteString(fmt.Sprintf("<li>%s</li>", name))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Unassigned leads</h2>
			<p>The following leads came in during the last 24 hours and still have no owner:</p>
			<ul>%s</ul>
			<p>They have been re-run through rotation where possible.</p>
		</body>
		</html>
	`, items.String())

	plainText := fmt.Sprintf("Unassigned leads from the last 24 hours:\n\n%s\n", strings.Join(leadNames, "\n"))

	if s.useSendGrid {
		return s.sendViaSendGrid(founderEmail, "Founder", subject, body, plainText)
	}
	return s.logEmailToConsole(founderEmail, subject, plainText)
}

// sendViaSendGrid sends an email through the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	s.log.Info("Email sent", "to", toEmail, "subject", subject)
	return nil
}

// logEmailToConsole logs the email instead of sending it (development mode)
func (s *Service) logEmailToConsole(toEmail, subject, plainText string) error {
	s.log.Info("Console email", "to", toEmail, "subject", subject, "body", plainText)
	return nil
}
