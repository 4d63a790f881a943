// Package mailer renders and sends branded transactional email over SMTP.
//
// Per-company template rows override the built-in defaults; a disabled
// template turns the send into a successful no-op. Every send is a single
// attempt: failures surface to the caller, which decides whether to count
// or retry.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail/v2"
	"go.uber.org/zap"

	"crewpulse.io/crewpulse/ent"
	entcompany "crewpulse.io/crewpulse/ent/company"
	"crewpulse.io/crewpulse/ent/emailtemplate"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/digest"
	"crewpulse.io/crewpulse/internal/pkg/logger"
)

// SendInput describes one transactional email.
type SendInput struct {
	To           string
	CompanyID    string
	TemplateType string // one of the Template* constants
	Variables    map[string]string
	From         string // optional override of the configured sender
}

// SendResult reports the outcome of a send. Skipped means the company has
// disabled this template category: a deliberate no-op, not a failure.
type SendResult struct {
	Skipped bool
}

// DialFunc performs the SMTP transport call. Swappable for tests.
type DialFunc func(m *mail.Message) error

// Mailer resolves company templates and sends branded email.
type Mailer struct {
	client  *ent.Client
	cfg     config.SMTPConfig
	baseURL string
	dial    DialFunc
}

// NewMailer creates a mailer backed by the configured SMTP transport.
func NewMailer(client *ent.Client, cfg config.SMTPConfig, appCfg config.AppConfig) *Mailer {
	m := &Mailer{
		client:  client,
		cfg:     cfg,
		baseURL: appCfg.BaseURL,
	}
	m.dial = m.smtpDial
	return m
}

// SetDialFunc replaces the transport call. Test hook.
func (m *Mailer) SetDialFunc(fn DialFunc) {
	m.dial = fn
}

// smtpDial sends one message with mandatory STARTTLS on the configured port.
func (m *Mailer) smtpDial(msg *mail.Message) error {
	d := mail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.cfg.Host,
		InsecureSkipVerify: m.cfg.SkipTLSVerify,
	}
	return d.DialAndSend(msg)
}

// Send resolves the company's template for the input's category,
// substitutes variables, renders the branded HTML shell and sends.
// A disabled company template returns {Skipped: true} without touching
// the transport.
func (m *Mailer) Send(ctx context.Context, input SendInput) (SendResult, error) {
	if input.To == "" {
		return SendResult{}, fmt.Errorf("mailer: recipient is required")
	}
	if !m.cfg.Configured() {
		return SendResult{}, fmt.Errorf("mailer: smtp not configured (smtp.host/smtp.from)")
	}

	company, tpl, skipped, err := m.resolveTemplate(ctx, input.CompanyID, input.TemplateType)
	if err != nil {
		return SendResult{}, err
	}
	if skipped {
		logger.Debug("email skipped: template disabled",
			zap.String("company_id", input.CompanyID),
			zap.String("template_type", input.TemplateType),
		)
		return SendResult{Skipped: true}, nil
	}

	subject := SubstituteVars(tpl.Subject, input.Variables)
	body := SubstituteVars(tpl.Body, input.Variables)
	htmlBody := renderHTML(brandingFor(company), subject, body)

	if err := m.send(input.To, input.From, subject, htmlBody); err != nil {
		return SendResult{}, fmt.Errorf("send email to %s: %w", input.To, err)
	}

	logger.Info("email sent",
		zap.String("to", input.To),
		zap.String("template_type", input.TemplateType),
	)
	return SendResult{}, nil
}

// SendDigest sends the multi-section digest email for one user. Errors are
// returned so the digest batch can count them per recipient without
// aborting the run.
func (m *Mailer) SendDigest(ctx context.Context, user *ent.User, d *digest.UserDigest) error {
	if !m.cfg.Configured() {
		return fmt.Errorf("mailer: smtp not configured (smtp.host/smtp.from)")
	}

	company, err := m.client.User.QueryCompany(user).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("load company for user %s: %w", user.ID, err)
	}

	subject := fmt.Sprintf("%s: %s - %s",
		digestTitle(d.Period),
		d.StartDate.Format("Jan 2"),
		d.EndDate.Format("Jan 2, 2006"),
	)
	htmlBody := renderDigestHTML(brandingFor(company), user.FirstName, d, m.baseURL)

	if err := m.send(user.Email, "", subject, htmlBody); err != nil {
		return fmt.Errorf("send digest to %s: %w", user.Email, err)
	}

	logger.Info("digest email sent",
		zap.String("to", user.Email),
		zap.String("period", string(d.Period)),
	)
	return nil
}

func (m *Mailer) send(to, from, subject, htmlBody string) error {
	if from == "" {
		from = m.cfg.From
	}
	msg := mail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dial(msg)
}

// resolveTemplate loads the company's template row for the category.
// Missing row falls back to the embedded defaults; a disabled row reports
// skipped. The company row itself is returned for branding.
func (m *Mailer) resolveTemplate(ctx context.Context, companyID, templateType string) (*ent.Company, templateContent, bool, error) {
	entType, err := toEntTemplateType(templateType)
	if err != nil {
		return nil, templateContent{}, false, err
	}

	var company *ent.Company
	if companyID != "" {
		company, err = m.client.Company.Query().
			Where(entcompany.ID(companyID)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, templateContent{}, false, fmt.Errorf("load company %s: %w", companyID, err)
		}
	}

	if company != nil {
		row, err := m.client.EmailTemplate.Query().
			Where(
				emailtemplate.HasCompanyWith(entcompany.ID(companyID)),
				emailtemplate.TypeEQ(entType),
			).
			Only(ctx)
		switch {
		case err == nil:
			if !row.Enabled {
				return company, templateContent{}, true, nil
			}
			return company, templateContent{Subject: row.Subject, Body: row.Body}, false, nil
		case !ent.IsNotFound(err):
			return nil, templateContent{}, false, fmt.Errorf("load email template: %w", err)
		}
	}

	tpl, err := defaultTemplate(templateType)
	if err != nil {
		return nil, templateContent{}, false, err
	}
	return company, tpl, false, nil
}

func toEntTemplateType(t string) (emailtemplate.Type, error) {
	switch t {
	case TemplateWelcome:
		return emailtemplate.TypeWELCOME, nil
	case TemplatePasswordReset:
		return emailtemplate.TypePASSWORD_RESET, nil
	case TemplateTeamInvite:
		return emailtemplate.TypeTEAM_INVITE, nil
	case TemplateNotification:
		return emailtemplate.TypeNOTIFICATION, nil
	default:
		return "", fmt.Errorf("unknown email template type: %s", t)
	}
}
