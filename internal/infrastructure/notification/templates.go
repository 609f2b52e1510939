package notification

import (
	"fmt"
	"strings"
	"text/template"
)

// Template names used across the application
const (
	TemplateRegistrationReceived  = "registration_received"
	TemplateAdminNewRegistration  = "admin_new_registration"
	TemplateAccountApproved       = "account_approved"
	TemplatePasswordReset         = "password_reset"
	TemplateExpertNewMessage      = "expert_new_message"
)

type emailTemplate struct {
	subject string
	body    *template.Template
}

var templates = map[string]emailTemplate{
	TemplateRegistrationReceived: {
		subject: "Your registration has been received",
		body: template.Must(template.New(TemplateRegistrationReceived).Parse(
			`Hi {{.first_name}},

Thanks for registering. Your account is pending review and you will
receive another email once an administrator has approved it.

Until then you can sign in, but most features stay locked.
`)),
	},
	TemplateAdminNewRegistration: {
		subject: "New member registration pending review",
		body: template.Must(template.New(TemplateAdminNewRegistration).Parse(
			`A new member has registered and is awaiting approval.

Name:  {{.name}}
Email: {{.email}}

Review the account in the admin area.
`)),
	},
	TemplateAccountApproved: {
		subject: "Your account has been approved",
		body: template.Must(template.New(TemplateAccountApproved).Parse(
			`Hi {{.first_name}},

Your account has been approved. You now have full access to the member
directory and can connect with other members.

{{.login_url}}
`)),
	},
	TemplatePasswordReset: {
		subject: "Reset your password",
		body: template.Must(template.New(TemplatePasswordReset).Parse(
			`Hi {{.first_name}},

We received a request to reset your password. Use the link below to
choose a new one. The link expires in {{.ttl}}.

{{.reset_url}}

If you did not request this, you can ignore this email.
`)),
	},
	TemplateExpertNewMessage: {
		subject: "Someone wants to connect with you",
		body: template.Must(template.New(TemplateExpertNewMessage).Parse(
			`Hi {{.expert_name}},

{{.seeker_name}} has sent you a connection request.

Preferred contact method: {{.contact_method}}

Message:
{{.message}}

You can reply directly to this email to get in touch.
`)),
	},
}

// RenderTemplate renders a named template with the given context and
// returns the subject and body.
func RenderTemplate(name string, data map[string]string) (subject string, body string, err error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template: %s", name)
	}

	var sb strings.Builder
	if err := tmpl.body.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return tmpl.subject, sb.String(), nil
}
