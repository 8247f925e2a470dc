package service

import (
	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/config"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/store"
)

type ClientServices struct {
	MergeService    *MergeService
	SyncService     ClientSyncService
	DocumentService ClientDocumentService
	Scheduler       SaveScheduler
	SyncJob         ClientSyncJob
}

// NewClientServices wires the service layer: the sync service feeds the save
// scheduler as its push callback, and the document service routes every
// mutation through the scheduler.
func NewClientServices(
	cfg config.ClientScheduler,
	storages *store.ClientStorages,
	remote adapter.RemoteClient,
	identity adapter.IdentityProvider,
	channel broadcast.Channel,
	logger *logger.Logger,
) *ClientServices {
	clock := NewClock()
	mergeSvc := NewMergeService()

	syncSvc := NewClientSyncService(
		storages.Cache, remote, identity, mergeSvc, channel, clock,
		cfg.TimestampedInventory, logger,
	)
	scheduler := NewSaveScheduler(cfg, syncSvc.Push, clock, channel, logger)
	docSvc := NewClientDocumentService(
		storages.Cache, remote, identity, scheduler, syncSvc, channel, clock, logger,
	)

	return &ClientServices{
		MergeService:    mergeSvc,
		SyncService:     syncSvc,
		DocumentService: docSvc,
		Scheduler:       scheduler,
		SyncJob:         NewClientSyncJob(syncSvc),
	}
}
