package modules

import (
	"context"

	"github.com/riverqueue/river"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/jobs"
	"crewpulse.io/crewpulse/internal/notification"
	"crewpulse.io/crewpulse/internal/push"
)

// NotificationModule wires the feed pipeline: channel gate, in-app writer,
// web push dispatcher, and the trigger handlers subscribed to the domain
// event dispatcher.
type NotificationModule struct {
	infra    *Infrastructure
	Gate     *notification.Gate
	Sender   notification.Sender
	Push     *push.Dispatcher
	Triggers *notification.Triggers
}

// NewNotificationModule creates the notification module and registers its
// event handlers on the shared dispatcher.
func NewNotificationModule(infra *Infrastructure) *NotificationModule {
	gate := notification.NewGate(infra.EntClient)
	sender := notification.NewInboxSender(infra.EntClient)
	pushDispatcher := push.NewDispatcher(infra.EntClient, infra.Pools, gate, infra.Config.Push)
	triggers := notification.NewTriggers(sender, pushDispatcher)

	notification.RegisterHandlers(infra.Events, triggers)

	return &NotificationModule{
		infra:    infra,
		Gate:     gate,
		Sender:   sender,
		Push:     pushDispatcher,
		Triggers: triggers,
	}
}

func (m *NotificationModule) Name() string { return "notification" }

func (m *NotificationModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.PushCfg = m.infra.Config.Push
}

func (m *NotificationModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(
		m.infra.EntClient,
		m.infra.Config.Digest.NotificationRetention,
	))
}

func (m *NotificationModule) Shutdown(context.Context) error { return nil }
