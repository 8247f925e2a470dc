// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/service"
	"github.com/sammirack/admin-sync/internal/workers"
	"github.com/sammirack/admin-sync/models"
)

// App is the top-level client application. It owns the process lifecycle:
// startup reconciliation, the periodic sync worker and shutdown of the save
// scheduler.
type App struct {
	services *service.ClientServices
	channel  broadcast.Channel
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewApp assembles the client application from already-wired dependencies.
func NewApp(services *service.ClientServices, channel broadcast.Channel, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}
	if channel == nil {
		return nil, fmt.Errorf("broadcast channel is required")
	}

	return &App{
		services: services,
		channel:  channel,
		workers:  workersCfg,
		logger:   log,
	}, nil
}

// Run starts the client and blocks until the process receives an interrupt
// or termination signal.
//
// Startup order matters: legacy rows are reconciled before the first full
// sync so documents saved by older builds reach the remote store, and the
// periodic sync worker starts only after the initial sync attempt. Sync
// failures at startup are logged, not fatal, since the client remains usable
// on local data alone.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.services.SyncService.ReconcileLocal(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("legacy document reconciliation failed")
	}
	if err := a.services.SyncService.FullSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed")
	}

	unsubscribe := a.channel.Subscribe(func(msg models.Message) {
		if msg.Type != models.ForceReload {
			return
		}
		if err := a.services.SyncService.FullSync(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("forced resync failed")
		}
	})
	defer unsubscribe()

	workers.NewWorkers(newSyncWorker(a.services.SyncJob, a.workers.SyncInterval)).Run(ctx)
	defer a.services.SyncJob.Stop()
	defer a.services.Scheduler.Stop()

	a.logger.Info().Msg("client started")
	<-ctx.Done()
	a.logger.Info().Msg("client shutting down")

	return nil
}

// syncWorker adapts the periodic sync job to the [workers.Worker] contract.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func newSyncWorker(job service.ClientSyncJob, interval time.Duration) *syncWorker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}
