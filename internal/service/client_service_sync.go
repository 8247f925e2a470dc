// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/store"
	"github.com/sammirack/admin-sync/models"
)

// clientSyncService implements [ClientSyncService]. It owns the last-known
// server price snapshot used for per-entry diff pushes and the dirty-key
// bookkeeping for the inventory merge; the document diff always runs against
// a fresh pre-push pull instead of a remembered snapshot.
type clientSyncService struct {
	cache    store.LocalCache
	remote   adapter.RemoteClient
	identity adapter.IdentityProvider
	merge    *MergeService
	channel  broadcast.Channel
	clock    Clock
	logger   *logger.Logger

	timestampedInventory bool

	mu              sync.Mutex
	lastServerPrcs  models.PriceMap
	dirtyInventory  map[string]struct{}
	lastHistoryPush models.PriceHistory
}

func NewClientSyncService(
	cache store.LocalCache,
	remote adapter.RemoteClient,
	identity adapter.IdentityProvider,
	merge *MergeService,
	channel broadcast.Channel,
	clock Clock,
	timestampedInventory bool,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		cache:                cache,
		remote:               remote,
		identity:             identity,
		merge:                merge,
		channel:              channel,
		clock:                clock,
		timestampedInventory: timestampedInventory,
		logger:               logger,
		dirtyInventory:       make(map[string]struct{}),
	}
}

// NoteInventoryChange implements [ClientSyncService].
func (s *clientSyncService) NoteInventoryChange(partID string) {
	s.mu.Lock()
	s.dirtyInventory[partID] = struct{}{}
	s.mu.Unlock()
}

// FullSync implements [ClientSyncService]. Each dataset pulls, merges, and
// persists independently: a failed pull substitutes an empty server snapshot
// for that dataset only, which leaves the local copy intact after the merge.
// For the server-authoritative datasets (inventory, price history, activity)
// a failed pull skips the local write instead, since "empty server wins"
// would erase local data.
func (s *clientSyncService) FullSync(ctx context.Context) error {
	log := s.logger
	log.Debug().Msg("full sync started")

	s.syncInventory(ctx)
	s.syncPrices(ctx)
	s.syncPriceHistory(ctx)
	s.syncDocuments(ctx)
	s.syncActivity(ctx)

	log.Debug().Msg("full sync finished")
	return nil
}

func (s *clientSyncService) syncInventory(ctx context.Context) {
	serverInv, err := s.remote.PullInventory(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("inventory pull failed, keeping local copy")
		return
	}

	localInv, err := s.cache.GetInventory(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("local inventory unreadable, treating as empty")
		localInv = models.Inventory{}
	}

	var dirty map[string]struct{}
	if s.timestampedInventory {
		s.mu.Lock()
		dirty = make(map[string]struct{}, len(s.dirtyInventory))
		for k := range s.dirtyInventory {
			dirty[k] = struct{}{}
		}
		s.mu.Unlock()
	}

	merged := s.merge.MergeInventory(serverInv, localInv, dirty)
	if err := s.cache.SetInventory(ctx, merged); err != nil {
		s.logger.Err(err).Msg("failed to persist merged inventory")
		return
	}

	s.broadcastUpdate(models.InventoryUpdated, merged)
}

func (s *clientSyncService) syncPrices(ctx context.Context) {
	serverPrices, err := s.remote.PullPrices(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("price pull failed, substituting empty snapshot")
		serverPrices = models.PriceMap{}
	} else {
		s.mu.Lock()
		s.lastServerPrcs = serverPrices
		s.mu.Unlock()
	}

	localPrices, err := s.cache.GetPrices(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("local prices unreadable, treating as empty")
		localPrices = models.PriceMap{}
	}

	merged := s.merge.MergePrices(serverPrices, localPrices)
	if err := s.cache.SetPrices(ctx, merged); err != nil {
		s.logger.Err(err).Msg("failed to persist merged prices")
		return
	}

	s.broadcastUpdate(models.PricesUpdated, merged)
}

func (s *clientSyncService) syncPriceHistory(ctx context.Context) {
	history, err := s.remote.PullPriceHistory(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("price history pull failed, keeping local copy")
		return
	}
	if len(history) == 0 {
		return
	}

	// server copy wins, no per-key merge
	if err := s.cache.SetPriceHistory(ctx, history); err != nil {
		s.logger.Err(err).Msg("failed to persist price history")
	}
}

func (s *clientSyncService) syncDocuments(ctx context.Context) {
	serverDocs, err := s.remote.PullDocuments(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("document pull failed, substituting empty snapshot")
		serverDocs = models.DocumentMap{}
	}

	localDocs, err := s.cache.GetDocuments(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("local documents unreadable, treating as empty")
		localDocs = models.DocumentMap{}
	}

	merged := s.merge.MergeDocuments(serverDocs, localDocs)
	if err := s.cache.SetDocuments(ctx, merged); err != nil {
		s.logger.Err(err).Msg("failed to persist merged documents")
		return
	}

	s.mirrorLegacyRows(ctx, merged)
	s.broadcastUpdate(models.DocumentsUpdated, merged)
}

// mirrorLegacyRows keeps the per-document rows aligned with the merged
// snapshot. Tombstoned documents keep their row: removing it would erase the
// evidence the merge needs to keep the document dead.
func (s *clientSyncService) mirrorLegacyRows(ctx context.Context, docs models.DocumentMap) {
	for key, doc := range docs {
		if err := s.cache.SetLegacyDocument(ctx, key, doc); err != nil {
			s.logger.Warn().Err(err).Str("doc_key", key).Msg("failed to mirror document row")
		}
	}
}

func (s *clientSyncService) syncActivity(ctx context.Context) {
	serverLog, err := s.remote.PullActivity(ctx, models.ActivityLogLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("activity pull failed, keeping local copy")
		return
	}

	// server log overwrites local wholesale; own entries are appended
	// remotely during push
	if len(serverLog) > models.ActivityLogLimit {
		serverLog = serverLog[:models.ActivityLogLimit]
	}
	if err := s.cache.SetActivity(ctx, serverLog); err != nil {
		s.logger.Err(err).Msg("failed to persist activity log")
	}
}

// Push implements [ClientSyncService]. The document push is diff-based: a
// document travels only if it is absent from the last-known server snapshot,
// its UpdatedAt is strictly newer, or its Deleted flag differs. A permanent
// rejection drops the entry and lets siblings continue; rate-limit and
// transient errors abort the push so the scheduler can apply its policy.
func (s *clientSyncService) Push(ctx context.Context) error {
	// merge-before-write: re-pull server documents so the push never
	// overwrites changes made by another client since the last sync
	serverDocs, err := s.remote.PullDocuments(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("pre-push document pull failed")
		return err
	}

	localDocs, err := s.cache.GetDocuments(ctx)
	if err != nil {
		localDocs = models.DocumentMap{}
	}

	merged := s.merge.MergeDocuments(serverDocs, localDocs)
	if err := s.cache.SetDocuments(ctx, merged); err != nil {
		s.logger.Err(err).Msg("failed to persist pre-push merge")
	}

	changed := diffDocuments(serverDocs, merged)
	for _, key := range changed {
		if err := s.remote.PushDocument(ctx, key, merged[key]); err != nil {
			if adapter.IsPermanent(err) {
				s.logger.Error().Err(err).Str("doc_key", key).Msg("document rejected, dropping from batch")
				continue
			}
			return err
		}
	}

	s.mu.Lock()
	lastPrices := s.lastServerPrcs
	s.mu.Unlock()

	// inventory travels in full; dirty-key protection is released only once
	// the map demonstrably reached the server
	inv, err := s.cache.GetInventory(ctx)
	if err == nil {
		if err := s.remote.PushInventory(ctx, inv); err != nil {
			if !adapter.IsPermanent(err) {
				return err
			}
			s.logger.Error().Err(err).Msg("inventory push rejected")
		} else {
			s.mu.Lock()
			s.dirtyInventory = make(map[string]struct{})
			s.mu.Unlock()
		}
	}

	// prices travel per changed entry
	prices, err := s.cache.GetPrices(ctx)
	if err == nil {
		for partID, entry := range prices {
			serverEntry, ok := lastPrices[partID]
			if ok && !entry.Timestamp.After(serverEntry.Timestamp) {
				continue
			}
			if err := s.remote.PushPriceEntry(ctx, partID, entry); err != nil {
				if adapter.IsPermanent(err) {
					s.logger.Error().Err(err).Str("part_id", partID).Msg("price entry rejected, dropping from batch")
					continue
				}
				return err
			}
		}
		s.mu.Lock()
		s.lastServerPrcs = prices
		s.mu.Unlock()
	}

	s.pushPriceHistory(ctx)
	s.appendSyncActivity(ctx, len(merged))

	return nil
}

func (s *clientSyncService) pushPriceHistory(ctx context.Context) {
	history, err := s.cache.GetPriceHistory(ctx)
	if err != nil || len(history) == 0 {
		return
	}

	s.mu.Lock()
	unchanged := string(history) == string(s.lastHistoryPush)
	s.mu.Unlock()
	if unchanged {
		return
	}

	if err := s.remote.PushPriceHistory(ctx, history); err != nil {
		s.logger.Warn().Err(err).Msg("price history push failed")
		return
	}

	s.mu.Lock()
	s.lastHistoryPush = history
	s.mu.Unlock()
}

// appendSyncActivity records one activity entry for the executed push, both
// remotely and in the bounded local log.
func (s *clientSyncService) appendSyncActivity(ctx context.Context, docCount int) {
	entry := models.ActivityEntry{
		Timestamp:     s.clock.Now(),
		Action:        "data_sync",
		ClientIP:      s.identity.Identity(ctx),
		DataTypes:     []string{"inventory", "prices", "history", "documents"},
		DocumentCount: docCount,
	}

	if err := s.remote.AppendActivity(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Msg("activity append failed")
	}

	local, err := s.cache.GetActivity(ctx)
	if err != nil {
		local = models.ActivityLog{}
	}
	if err := s.cache.SetActivity(ctx, local.Prepend(entry)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist local activity entry")
	}
}

// ReconcileLocal implements [ClientSyncService]. Documents that predate the
// sync engine live only in the legacy rows and carry no creator or sync
// stamp; they are stamped, folded into the dataset blob, and uploaded once.
func (s *clientSyncService) ReconcileLocal(ctx context.Context) error {
	legacy, err := s.cache.ListLegacyDocuments(ctx)
	if err != nil {
		return err
	}

	docs, err := s.cache.GetDocuments(ctx)
	if err != nil {
		docs = models.DocumentMap{}
	}

	identity := ""
	now := s.clock.Now()
	reconciled := 0

	for key, doc := range legacy {
		if !doc.SyncedAt.IsZero() && doc.CreatedBy != "" {
			continue
		}

		if identity == "" {
			identity = s.identity.Identity(ctx)
		}
		if doc.CreatedBy == "" {
			doc.CreatedBy = identity
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = now
		}
		doc.SyncedAt = now

		if err := s.cache.SetLegacyDocument(ctx, key, doc); err != nil {
			s.logger.Warn().Err(err).Str("doc_key", key).Msg("failed to stamp legacy document")
			continue
		}
		docs[key] = doc

		if err := s.remote.PushDocument(ctx, key, doc); err != nil {
			s.logger.Warn().Err(err).Str("doc_key", key).Msg("failed to upload legacy document")
		}
		reconciled++
	}

	if reconciled > 0 {
		if err := s.cache.SetDocuments(ctx, docs); err != nil {
			return err
		}
		s.logger.Info().Int("documents", reconciled).Msg("reconciled unsynchronised local documents")
	}

	return nil
}

// diffDocuments returns the keys whose merged copy must travel to the remote
// store, in deterministic order.
func diffDocuments(server, merged models.DocumentMap) []string {
	changed := make([]string, 0)
	for key, doc := range merged {
		serverDoc, ok := server[key]
		switch {
		case !ok:
			changed = append(changed, key)
		case doc.UpdatedAt.After(serverDoc.UpdatedAt):
			changed = append(changed, key)
		case doc.Deleted != serverDoc.Deleted:
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}

func (s *clientSyncService) broadcastUpdate(msgType models.MessageType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Err(err).Str("type", string(msgType)).Msg("failed to encode broadcast payload")
		return
	}
	s.channel.Publish(models.Message{
		Type:      msgType,
		Data:      data,
		Timestamp: s.clock.Now(),
	})
}
