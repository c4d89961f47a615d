package email

import (
	"bytes"
	"fmt"
	"go-portfolio-backend/internal/domain"
	"html/template"
	"strings"
	"time"
)

// notificationTemplate is the HTML body of the owner notification email
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a1a2e; margin-top: 10px; white-space: pre-line; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
{{- if .Company}}
            <div class="field">
                <div class="label">Company:</div>
                <div class="value">{{.Company}}</div>
            </div>
{{- end}}
            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">{{.SubjectLabel}}</div>
            </div>
            <div class="field">
                <div class="label">Received:</div>
                <div class="value">{{.ReceivedAt}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the contact form on {{.OwnerWebsite}}.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

// autoReplyTemplate is the HTML body of the confirmation sent back to the submitter
const autoReplyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thanks for getting in touch</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .signature { margin-top: 20px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thanks for reaching out!</h1>
        </div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Thanks for getting in touch through my portfolio. I've received your
            message and will get back to you as soon as I can, usually within one
            or two business days.</p>
            <p>In the meantime, feel free to browse my recent work
            {{- if .OwnerWebsite}} at <a href="{{.OwnerWebsite}}">{{.OwnerWebsite}}</a>{{end}}.</p>
            <div class="signature">
                <p>Best regards,<br>
                <strong>{{.OwnerName}}</strong><br>
                {{.OwnerTitle}}</p>
            </div>
        </div>
        <div class="footer">
            <p>This is an automated confirmation. No need to reply to this email.</p>
        </div>
    </div>
</body>
</html>`

// autoReplyTextTemplate is the fixed plain-text variant of the auto-reply
const autoReplyTextTemplate = "Hi %s,\n\n" +
	"Thanks for getting in touch through my portfolio. I've received your " +
	"message and will get back to you as soon as I can, usually within one " +
	"or two business days.\n\n" +
	"Best regards,\n%s"

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
	autoReplyTmpl    = template.Must(template.New("autoreply").Parse(autoReplyTemplate))
)

type notificationData struct {
	Name         string
	Email        string
	Company      string
	SubjectLabel string
	Message      string
	ReceivedAt   string
	OwnerWebsite string
}

type autoReplyData struct {
	Name         string
	OwnerName    string
	OwnerTitle   string
	OwnerWebsite string
}

// receiptTimeLayout is the human-readable receipt timestamp format
const receiptTimeLayout = "January 2, 2006 at 3:04 PM MST"

// RenderNotification produces the HTML and plain-text bodies of the owner
// notification. Output is deterministic for a fixed receivedAt. The company
// row is omitted entirely when the submitter left it blank.
func RenderNotification(req *domain.ContactRequest, profile domain.OwnerProfile, catalog domain.SubjectCatalog, receivedAt time.Time) (string, string, error) {
	data := notificationData{
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		SubjectLabel: catalog.Label(req.Subject),
		Message:      req.Message,
		ReceivedAt:   receivedAt.Format(receiptTimeLayout),
		OwnerWebsite: profile.Website,
	}

	var html bytes.Buffer
	if err := notificationTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render notification template: %w", err)
	}

	return html.String(), notificationText(data, profile), nil
}

// notificationText is the plain-text twin of the notification HTML,
// terminated with a fixed signature block.
func notificationText(data notificationData, profile domain.OwnerProfile) string {
	var b strings.Builder
	b.WriteString("New contact form submission\n\n")
	fmt.Fprintf(&b, "From: %s (%s)\n", data.Name, data.Email)
	if data.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", data.Company)
	}
	fmt.Fprintf(&b, "Subject: %s\n", data.SubjectLabel)
	fmt.Fprintf(&b, "Received: %s\n", data.ReceivedAt)
	b.WriteString("\n")
	b.WriteString(data.Message)
	b.WriteString("\n\n-- \n")
	fmt.Fprintf(&b, "%s | %s\n", profile.Name, profile.Title)
	if profile.Website != "" {
		b.WriteString(profile.Website)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAutoReply produces the HTML and plain-text bodies of the
// confirmation email sent back to the submitter.
func RenderAutoReply(name string, profile domain.OwnerProfile) (string, string, error) {
	data := autoReplyData{
		Name:         name,
		OwnerName:    profile.Name,
		OwnerTitle:   profile.Title,
		OwnerWebsite: profile.Website,
	}

	var html bytes.Buffer
	if err := autoReplyTmpl.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("failed to render auto-reply template: %w", err)
	}

	text := fmt.Sprintf(autoReplyTextTemplate, name, profile.Name)
	return html.String(), text, nil
}
