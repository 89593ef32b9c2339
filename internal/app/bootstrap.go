// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"sky-herald.io/herald/internal/api/handlers"
	"sky-herald.io/herald/internal/app/modules"
	"sky-herald.io/herald/internal/config"
	"sky-herald.io/herald/internal/infrastructure"
	"sky-herald.io/herald/internal/jobs"
	"sky-herald.io/herald/internal/pkg/worker"
)

// Application holds composed application dependencies. The portal router
// serves the inbox API; the ingest router is the internal listener the
// portal backend posts events to.
type Application struct {
	Config       *config.Config
	PortalRouter *gin.Engine
	IngestRouter *gin.Engine
	DB           *infrastructure.DatabaseClients
	Pools        *worker.Pools
	Modules      []modules.Module

	notifier *modules.NotifierModule
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	notifier, err := modules.NewNotifierModule(ctx, infra)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init notifier module: %w", err)
	}
	allModules := []modules.Module{notifier}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	// Retention cleanup runs daily and once on startup to keep the inbox
	// from accumulating stale viewed records.
	periodic := []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
	if err := infra.InitRiver(workers, periodic); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:       cfg,
		PortalRouter: newPortalRouter(cfg, server),
		IngestRouter: newIngestRouter(server),
		DB:           infra.DB,
		Pools:        infra.Pools,
		Modules:      allModules,
		notifier:     notifier,
	}, nil
}
