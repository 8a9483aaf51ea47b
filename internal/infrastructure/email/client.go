// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/luckyspin/spinwheel-go/internal/domain/user"
	"github.com/luckyspin/spinwheel-go/internal/infrastructure/email/templates"
	"github.com/luckyspin/spinwheel-go/pkg/config"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendLeadNotification(lead *user.Lead) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
}

// NewService creates a new email service client, returning the Service interface.
// Returns an error when the Resend API key or recipient is not configured;
// callers treat that as "notifications disabled".
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}
	if config.LeadEmailTo == "" {
		return nil, fmt.Errorf("LEAD_EMAIL_TO environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.LeadEmailFrom,
		toEmail:   config.LeadEmailTo,
	}, nil
}

// SendLeadNotification composes and sends the new-lead notification email.
func (c *ResendClient) SendLeadNotification(lead *user.Lead) error {
	content := templates.GetLeadNotificationContent(templates.LeadNotificationProps{
		Email:    lead.Email,
		Phone:    lead.Phone,
		Location: lead.Location,
		Prize:    lead.Prize,
		Device:   lead.Meta.Device,
		Browser:  lead.Meta.Browser,
	})

	content += templates.GetButton(templates.ButtonProps{
		Text:            "Open dashboard",
		URL:             config.PublicBaseURL + "/admin/dashboard",
		BackgroundColor: "#4f46e5",
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "New lead: " + lead.Email,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Spin Wheel <%s>", c.fromEmail),
		To:      []string{c.toEmail},
		Subject: "New lead captured: " + lead.Email,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send lead notification email: %w", err)
	}
	return nil
}
