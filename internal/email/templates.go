package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Template names used by the application.
const (
	TemplateWelcomeFaculty     = "welcome_faculty"
	TemplateWelcomeInstitution = "welcome_institution"
	TemplateContactRequest     = "contact_request"
	TemplateVerification       = "verification"
	TemplatePasswordReset      = "password_reset"
)

// TemplateManager is an in-memory TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	tm.registerDefaults()
	return tm
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate parses and stores a template under name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// registerDefaults installs the built-in bodies. Parsing constants cannot
// fail at runtime, so errors here are ignored.
func (tm *TemplateManager) registerDefaults() {
	_ = tm.AddTemplate(TemplateWelcomeFaculty, `
<h2>Welcome to Talentia, {{.Name}}!</h2>
<p>Your faculty account is ready. Complete your profile so institutions can
find you: the more complete your profile, the higher it appears in search.</p>
<p>You control who sees your profile from the privacy settings at any time.</p>`)

	_ = tm.AddTemplate(TemplateWelcomeInstitution, `
<h2>Welcome to Talentia, {{.Name}}!</h2>
<p>Your institution account is ready. Use the faculty search to find
candidates by expertise, language and modality, and contact them directly
from their profile.</p>`)

	_ = tm.AddTemplate(TemplateContactRequest, `
<h2>New contact request</h2>
<p><strong>{{.InstitutionName}}</strong> sent you a request: {{.Subject}}</p>
<p>{{.Message}}</p>
<p>Sign in to Talentia to reply or archive it.</p>`)

	_ = tm.AddTemplate(TemplateVerification, `
<h2>Verify your email</h2>
<p>Use this code to confirm your Talentia account: <strong>{{.Token}}</strong></p>`)

	_ = tm.AddTemplate(TemplatePasswordReset, `
<h2>Password reset</h2>
<p>Use this code to reset your Talentia password: <strong>{{.Token}}</strong></p>
<p>If you did not request a reset, ignore this message.</p>`)
}
