// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"crewpulse.io/crewpulse/internal/api/handlers"
	"crewpulse.io/crewpulse/internal/app/modules"
	"crewpulse.io/crewpulse/internal/config"
	"crewpulse.io/crewpulse/internal/domain"
	"crewpulse.io/crewpulse/internal/infrastructure"
	"crewpulse.io/crewpulse/internal/jobs"
	"crewpulse.io/crewpulse/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Events  *domain.EventDispatcher
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	notificationModule := modules.NewNotificationModule(infra)
	allModules := []modules.Module{
		notificationModule,
		modules.NewDigestModule(infra),
		modules.NewBirthdayModule(infra, notificationModule.Sender),
	}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	registerPeriodicJobs(infra)

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Events:  infra.Events,
		Modules: allModules,
	}, nil
}

// registerPeriodicJobs schedules the recurring batches. Each job's unique
// options make external cron invocations and the internal scheduler safe to
// run side by side.
func registerPeriodicJobs(infra *modules.Infrastructure) {
	if infra.RiverClient == nil {
		return
	}
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(time.Minute),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.DigestTickArgs{}, nil
			},
			nil,
		),
	)
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.BirthdayTickArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	// Retention cleanup: run daily and once on startup to avoid long-lived
	// inbox bloat.
	infra.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
}
