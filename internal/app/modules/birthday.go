package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/birthday"
	"crewpulse.io/crewpulse/internal/jobs"
	"crewpulse.io/crewpulse/internal/notification"
)

// BirthdayModule wires the daily birthday batch on top of the in-app writer.
type BirthdayModule struct {
	infra  *Infrastructure
	Runner *birthday.Runner
}

// NewBirthdayModule creates the birthday module. It reuses the notification
// module's inbox writer so birthday rows go through the same validation path
// as every other feed entry.
func NewBirthdayModule(infra *Infrastructure, sender notification.Sender) *BirthdayModule {
	return &BirthdayModule{
		infra:  infra,
		Runner: birthday.NewRunner(infra.EntClient, sender),
	}
}

func (m *BirthdayModule) Name() string { return "birthday" }

func (m *BirthdayModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Birthdays = m.Runner
}

func (m *BirthdayModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil {
		return
	}
	river.AddWorker(workers, jobs.NewBirthdayTickWorker(m.Runner))
}

func (m *BirthdayModule) Shutdown(context.Context) error { return nil }
