package email

// Provider sends outgoing mail. Callers treat delivery as best-effort:
// registration and contact flows log failures and move on.
type Provider interface {
	// Send delivers a single message
	Send(email *Email) error

	// SendWithTemplate renders the named template into HTMLBody and sends
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration
	Validate() error

	// Close releases provider resources
	Close() error
}

// TemplateRenderer renders named templates to HTML bodies.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
