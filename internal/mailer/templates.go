package mailer

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template type constants matching ent/schema/email_template.go enum values.
const (
	TemplateWelcome       = "WELCOME"
	TemplatePasswordReset = "PASSWORD_RESET"
	TemplateTeamInvite    = "TEAM_INVITE"
	TemplateNotification  = "NOTIFICATION"
)

//go:embed templates/defaults.yaml
var defaultTemplatesYAML []byte

// templateContent is one resolved subject/body pair.
type templateContent struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

var defaultTemplates = mustLoadDefaults()

func mustLoadDefaults() map[string]templateContent {
	templates := make(map[string]templateContent)
	if err := yaml.Unmarshal(defaultTemplatesYAML, &templates); err != nil {
		panic(fmt.Sprintf("mailer: parse embedded default templates: %v", err))
	}
	for _, required := range []string{TemplateWelcome, TemplatePasswordReset, TemplateTeamInvite, TemplateNotification} {
		if _, ok := templates[required]; !ok {
			panic(fmt.Sprintf("mailer: embedded defaults missing template %s", required))
		}
	}
	return templates
}

// defaultTemplate returns the built-in subject/body for a template type.
func defaultTemplate(templateType string) (templateContent, error) {
	tpl, ok := defaultTemplates[templateType]
	if !ok {
		return templateContent{}, fmt.Errorf("unknown email template type: %s", templateType)
	}
	return tpl, nil
}
