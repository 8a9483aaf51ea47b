// Package templates provides email template components
package templates

import (
	"bytes"
	"html/template"
	"log"
)

// LeadNotificationProps holds the fields rendered into the lead
// notification email body.
type LeadNotificationProps struct {
	Email    string
	Phone    string
	Location string
	Prize    string
	Device   string
	Browser  string
}

var leadNotificationTemplate = template.Must(template.New("leadNotification").Parse(`
    <h2 style="margin: 0 0 16px;">New lead captured</h2>
    <p style="margin: 0 0 8px;">A visitor just completed the spin wheel form.</p>
    <table role="presentation" border="0" cellpadding="4" cellspacing="0" style="border-collapse: collapse;">
      <tr><td style="font-weight: bold;">Email</td><td>{{.Email}}</td></tr>
      <tr><td style="font-weight: bold;">Phone</td><td>{{.Phone}}</td></tr>
      <tr><td style="font-weight: bold;">Location</td><td>{{.Location}}</td></tr>
      <tr><td style="font-weight: bold;">Prize</td><td>{{.Prize}}</td></tr>
      <tr><td style="font-weight: bold;">Device</td><td>{{.Device}}</td></tr>
      <tr><td style="font-weight: bold;">Browser</td><td>{{.Browser}}</td></tr>
    </table>`))

// GetLeadNotificationContent renders the lead notification body.
func GetLeadNotificationContent(props LeadNotificationProps) string {
	var buf bytes.Buffer
	if err := leadNotificationTemplate.Execute(&buf, props); err != nil {
		log.Printf("ERROR: Failed to execute lead notification template: %v", err)
		return ""
	}
	return buf.String()
}
