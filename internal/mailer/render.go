package mailer

import (
	"fmt"
	"html"
	"strings"
	"time"

	"crewpulse.io/crewpulse/ent"
	"crewpulse.io/crewpulse/internal/digest"
)

// Default brand colors used when a company has not customized its branding.
const (
	defaultPrimaryColor   = "#3b82f6"
	defaultSecondaryColor = "#8b5cf6"
	defaultFooterMessage  = "You are receiving this email because you have an account with CrewPulse."
)

// SubstituteVars replaces every occurrence of each {{key}} placeholder with
// its value. Placeholders with no matching variable are left verbatim.
func SubstituteVars(template string, variables map[string]string) string {
	result := template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

// branding is the subset of company fields the HTML shell uses.
type branding struct {
	CompanyName    string
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
	FooterMessage  string
}

func brandingFor(company *ent.Company) branding {
	b := branding{
		CompanyName:    "CrewPulse",
		PrimaryColor:   defaultPrimaryColor,
		SecondaryColor: defaultSecondaryColor,
		FooterMessage:  defaultFooterMessage,
	}
	if company == nil {
		return b
	}
	b.CompanyName = company.Name
	if company.PrimaryColor != "" {
		b.PrimaryColor = company.PrimaryColor
	}
	if company.SecondaryColor != "" {
		b.SecondaryColor = company.SecondaryColor
	}
	b.LogoURL = company.LogoURL
	if company.FooterMessage != "" {
		b.FooterMessage = company.FooterMessage
	}
	return b
}

// renderHTML wraps a plain-text body in the branded shell: gradient header,
// optional logo, one paragraph per body line, footer with copyright year.
func renderHTML(b branding, subject, body string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"></head>`)
	sb.WriteString(`<body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;">`)
	sb.WriteString(`<div style="max-width:600px;margin:0 auto;background:#ffffff;">`)

	// Gradient header.
	fmt.Fprintf(&sb,
		`<div style="background:linear-gradient(135deg,%s,%s);padding:32px 24px;text-align:center;">`,
		b.PrimaryColor, b.SecondaryColor)
	if b.LogoURL != "" {
		fmt.Fprintf(&sb,
			`<img src="%s" alt="%s" style="max-height:48px;margin-bottom:12px;"/>`,
			html.EscapeString(b.LogoURL), html.EscapeString(b.CompanyName))
	}
	fmt.Fprintf(&sb, `<h1 style="color:#ffffff;margin:0;font-size:22px;">%s</h1>`,
		html.EscapeString(subject))
	sb.WriteString(`</div>`)

	// Body: one paragraph per newline-delimited line.
	sb.WriteString(`<div style="padding:24px;color:#111827;font-size:15px;line-height:1.6;">`)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&sb, `<p style="margin:0 0 12px;">%s</p>`, html.EscapeString(line))
	}
	sb.WriteString(`</div>`)

	writeFooter(&sb, b)
	sb.WriteString(`</div></body></html>`)
	return sb.String()
}

func writeFooter(sb *strings.Builder, b branding) {
	sb.WriteString(`<div style="padding:16px 24px;background:#f9fafb;border-top:1px solid #e5e7eb;text-align:center;color:#6b7280;font-size:12px;">`)
	fmt.Fprintf(sb, `<p style="margin:0 0 4px;">%s</p>`, html.EscapeString(b.FooterMessage))
	fmt.Fprintf(sb, `<p style="margin:0;">&copy; %d %s</p>`, time.Now().Year(), html.EscapeString(b.CompanyName))
	sb.WriteString(`</div>`)
}

// renderDigestHTML builds the richer multi-section digest email: stat
// tiles, an unread-messages callout, up to five recent tasks, and a CTA
// button back into the app.
func renderDigestHTML(b branding, firstName string, d *digest.UserDigest, baseURL string) string {
	var sb strings.Builder

	title := digestTitle(d.Period)

	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"></head>`)
	sb.WriteString(`<body style="margin:0;padding:0;background:#f3f4f6;font-family:Arial,Helvetica,sans-serif;">`)
	sb.WriteString(`<div style="max-width:600px;margin:0 auto;background:#ffffff;">`)

	fmt.Fprintf(&sb,
		`<div style="background:linear-gradient(135deg,%s,%s);padding:32px 24px;text-align:center;">`,
		b.PrimaryColor, b.SecondaryColor)
	fmt.Fprintf(&sb, `<h1 style="color:#ffffff;margin:0;font-size:22px;">%s</h1>`, html.EscapeString(title))
	fmt.Fprintf(&sb, `<p style="color:#e0e7ff;margin:8px 0 0;font-size:13px;">%s &ndash; %s</p>`,
		d.StartDate.Format("Jan 2, 2006"), d.EndDate.Format("Jan 2, 2006"))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div style="padding:24px;color:#111827;">`)
	fmt.Fprintf(&sb, `<p style="font-size:15px;">Hi %s, here is what happened:</p>`, html.EscapeString(firstName))

	// Stat tiles.
	sb.WriteString(`<table width="100%" cellpadding="0" cellspacing="0" style="margin:16px 0;"><tr>`)
	writeStatTile(&sb, d.Summary.TasksCreated, "Tasks", b.PrimaryColor)
	writeStatTile(&sb, d.Summary.TasksCompleted, "Completed", "#10b981")
	writeStatTile(&sb, d.Summary.MessagesReceived, "Messages", b.SecondaryColor)
	writeStatTile(&sb, d.Summary.ShiftsScheduled, "Shifts", "#f59e0b")
	sb.WriteString(`</tr></table>`)

	// Unread callout.
	if d.Summary.MessagesUnread > 0 {
		fmt.Fprintf(&sb,
			`<div style="background:#eff6ff;border-left:4px solid %s;padding:12px 16px;margin:16px 0;font-size:14px;">You have <strong>%d unread message(s)</strong> waiting for you.</div>`,
			b.PrimaryColor, d.Summary.MessagesUnread)
	}

	// Recent tasks, capped at five.
	if len(d.Tasks) > 0 {
		sb.WriteString(`<h2 style="font-size:16px;margin:20px 0 8px;">Recent tasks</h2><ul style="margin:0;padding-left:20px;font-size:14px;color:#374151;">`)
		limit := len(d.Tasks)
		if limit > 5 {
			limit = 5
		}
		for _, task := range d.Tasks[:limit] {
			fmt.Fprintf(&sb, `<li style="margin-bottom:6px;">%s <span style="color:#9ca3af;">(%s)</span></li>`,
				html.EscapeString(task.Title), html.EscapeString(string(task.Status)))
		}
		sb.WriteString(`</ul>`)
	}

	// CTA.
	fmt.Fprintf(&sb,
		`<div style="text-align:center;margin:28px 0 8px;"><a href="%s/dashboard" style="background:%s;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;font-size:14px;display:inline-block;">Open CrewPulse</a></div>`,
		strings.TrimRight(baseURL, "/"), b.PrimaryColor)

	sb.WriteString(`</div>`)
	writeFooter(&sb, b)
	sb.WriteString(`</div></body></html>`)
	return sb.String()
}

func writeStatTile(sb *strings.Builder, value int, label, color string) {
	fmt.Fprintf(sb,
		`<td align="center" style="padding:8px;"><div style="background:#f9fafb;border-radius:8px;padding:14px 6px;"><div style="font-size:22px;font-weight:bold;color:%s;">%d</div><div style="font-size:12px;color:#6b7280;">%s</div></div></td>`,
		color, value, label)
}

func digestTitle(period digest.Period) string {
	switch period {
	case digest.PeriodDaily:
		return "Your daily digest"
	case digest.PeriodWeekly:
		return "Your weekly digest"
	case digest.PeriodMonthly:
		return "Your monthly digest"
	default:
		return "Your activity digest"
	}
}
