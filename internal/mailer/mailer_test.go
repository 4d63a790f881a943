package mailer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	mail "github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/require"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/ent/emailtemplate"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/digest"
	"crewpulse.io/crewpulse/internal/pkg/logger"
	"crewpulse.io/crewpulse/internal/testutil"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestSubstituteVars(t *testing.T) {
	// Every occurrence is replaced.
	got := SubstituteVars("Hi {{name}}, {{name}}!", map[string]string{"name": "Ana"})
	require.Equal(t, "Hi Ana, Ana!", got)

	// Unknown placeholders pass through verbatim.
	got = SubstituteVars("Hello {{unknown}} and {{name}}", map[string]string{"name": "Ana"})
	require.Equal(t, "Hello {{unknown}} and Ana", got)

	// No variables at all: template unchanged.
	require.Equal(t, "{{x}}", SubstituteVars("{{x}}", nil))
}

type capturedMail struct {
	messages []*mail.Message
}

func (c *capturedMail) dial(m *mail.Message) error {
	c.messages = append(c.messages, m)
	return nil
}

func newTestMailer(t *testing.T, prefix string) (*Mailer, *ent.Client, *capturedMail) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	m := NewMailer(client,
		config.SMTPConfig{Host: "smtp.test", Port: 587, From: "CrewPulse <no-reply@crewpulse.test>"},
		config.AppConfig{BaseURL: "https://app.crewpulse.test"},
	)
	captured := &capturedMail{}
	m.SetDialFunc(captured.dial)
	return m, client, captured
}

func mustCreateCompany(t *testing.T, client *ent.Client, id string) *ent.Company {
	t.Helper()
	company, err := client.Company.Create().
		SetID(id).
		SetName("Acme Retail").
		Save(context.Background())
	require.NoError(t, err)
	return company
}

func TestSend_DisabledTemplateSkipsWithoutTransportCall(t *testing.T) {
	t.Parallel()

	m, client, captured := newTestMailer(t, "mailer_disabled")
	mustCreateCompany(t, client, "co-1")

	_, err := client.EmailTemplate.Create().
		SetID("tpl-1").
		SetCompanyID("co-1").
		SetType(emailtemplate.TypeWELCOME).
		SetSubject("Welcome {{name}}").
		SetBody("Hi {{name}}").
		SetEnabled(false).
		Save(context.Background())
	require.NoError(t, err)

	result, err := m.Send(context.Background(), SendInput{
		To:           "ana@acme.test",
		CompanyID:    "co-1",
		TemplateType: TemplateWelcome,
		Variables:    map[string]string{"name": "Ana"},
	})
	require.NoError(t, err)
	require.True(t, result.Skipped)
	require.Empty(t, captured.messages, "disabled template must not touch the transport")
}

func TestSend_CompanyTemplateWithSubstitution(t *testing.T) {
	t.Parallel()

	m, client, captured := newTestMailer(t, "mailer_company_tpl")
	mustCreateCompany(t, client, "co-1")

	_, err := client.EmailTemplate.Create().
		SetID("tpl-1").
		SetCompanyID("co-1").
		SetType(emailtemplate.TypeNOTIFICATION).
		SetSubject("{{notificationTitle}}").
		SetBody("Hi {{name}},\n{{notificationMessage}}").
		Save(context.Background())
	require.NoError(t, err)

	result, err := m.Send(context.Background(), SendInput{
		To:           "ana@acme.test",
		CompanyID:    "co-1",
		TemplateType: TemplateNotification,
		Variables: map[string]string{
			"name":                "Ana",
			"notificationTitle":   "Shift swap approved",
			"notificationMessage": "Ben approved your shift swap request",
		},
	})
	require.NoError(t, err)
	require.False(t, result.Skipped)
	require.Len(t, captured.messages, 1)

	msg := captured.messages[0]
	require.Equal(t, []string{"Shift swap approved"}, msg.GetHeader("Subject"))
	require.Equal(t, []string{"ana@acme.test"}, msg.GetHeader("To"))

	var body strings.Builder
	_, err = msg.WriteTo(&body)
	require.NoError(t, err)
	// Undo quoted-printable soft line breaks before matching.
	raw := strings.ReplaceAll(body.String(), "=\r\n", "")
	require.Contains(t, raw, "Ben approved your shift swap request")
}

func TestSend_MissingCompanyRowFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	m, _, captured := newTestMailer(t, "mailer_defaults")

	result, err := m.Send(context.Background(), SendInput{
		To:           "ana@acme.test",
		CompanyID:    "nope",
		TemplateType: TemplateWelcome,
		Variables:    map[string]string{"name": "Ana", "companyName": "Acme"},
	})
	require.NoError(t, err)
	require.False(t, result.Skipped)
	require.Len(t, captured.messages, 1)
	require.Equal(t, []string{"Welcome to Acme!"}, captured.messages[0].GetHeader("Subject"))
}

func TestSend_UnknownTemplateTypeFails(t *testing.T) {
	t.Parallel()

	m, _, captured := newTestMailer(t, "mailer_unknown")
	_, err := m.Send(context.Background(), SendInput{
		To:           "ana@acme.test",
		TemplateType: "NOT_A_TYPE",
	})
	require.Error(t, err)
	require.Empty(t, captured.messages)
}

func TestRenderHTML_BrandedShell(t *testing.T) {
	b := branding{
		CompanyName:    "Acme Retail",
		PrimaryColor:   "#112233",
		SecondaryColor: "#445566",
		LogoURL:        "https://cdn.acme.test/logo.png",
		FooterMessage:  "See you at the store.",
	}
	html := renderHTML(b, "Welcome!", "Line one\nLine two")

	require.Contains(t, html, "linear-gradient(135deg,#112233,#445566)")
	require.Contains(t, html, `<img src="https://cdn.acme.test/logo.png"`)
	require.Contains(t, html, "<p style=\"margin:0 0 12px;\">Line one</p>")
	require.Contains(t, html, "<p style=\"margin:0 0 12px;\">Line two</p>")
	require.Contains(t, html, "See you at the store.")
	require.Contains(t, html, fmt.Sprintf("&copy; %d", time.Now().Year()))
}

func TestRenderHTML_DefaultBranding(t *testing.T) {
	html := renderHTML(brandingFor(nil), "Hello", "Body")
	require.Contains(t, html, defaultPrimaryColor)
	require.Contains(t, html, defaultSecondaryColor)
	require.NotContains(t, html, "<img")
}

func TestRenderDigestHTML_Sections(t *testing.T) {
	d := &digest.UserDigest{
		UserID:    "user-1",
		Period:    digest.PeriodWeekly,
		StartDate: time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 22, 23, 59, 59, 0, time.UTC),
		Summary: digest.Summary{
			TasksCreated:     7,
			TasksCompleted:   4,
			MessagesReceived: 12,
			MessagesUnread:   3,
			ShiftsScheduled:  5,
		},
		Tasks: []*ent.Task{
			{ID: "t1", Title: "Restock shelves"},
			{ID: "t2", Title: "Close register"},
			{ID: "t3", Title: "Inventory"},
			{ID: "t4", Title: "Train new hire"},
			{ID: "t5", Title: "Order supplies"},
			{ID: "t6", Title: "Should not appear"},
		},
	}

	html := renderDigestHTML(brandingFor(nil), "Ana", d, "https://app.crewpulse.test/")

	require.Contains(t, html, "Your weekly digest")
	require.Contains(t, html, "3 unread message(s)")
	require.Contains(t, html, "Restock shelves")
	require.Contains(t, html, "Order supplies")
	require.NotContains(t, html, "Should not appear", "recent-task list is capped at 5")
	require.Contains(t, html, `href="https://app.crewpulse.test/dashboard"`)
}
