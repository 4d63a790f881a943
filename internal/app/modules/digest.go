package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/digest"
	"crewpulse.io/crewpulse/internal/jobs"
	"crewpulse.io/crewpulse/internal/mailer"
)

// DigestModule wires digest aggregation and the email channel.
type DigestModule struct {
	infra  *Infrastructure
	Mailer *mailer.Mailer
	Runner *digest.Runner
}

// NewDigestModule creates the digest module with explicit constructor wiring.
func NewDigestModule(infra *Infrastructure) *DigestModule {
	m := mailer.NewMailer(infra.EntClient, infra.Config.SMTP, infra.Config.App)
	runner := digest.NewRunner(infra.EntClient, digest.NewAggregator(infra.EntClient), m)

	return &DigestModule{
		infra:  infra,
		Mailer: m,
		Runner: runner,
	}
}

func (m *DigestModule) Name() string { return "digest" }

func (m *DigestModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Digests = m.Runner
}

func (m *DigestModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil {
		return
	}
	river.AddWorker(workers, jobs.NewDigestTickWorker(m.Runner))
}

func (m *DigestModule) Shutdown(context.Context) error { return nil }
