// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/sammirack/admin-sync/internal/adapter"
	"github.com/sammirack/admin-sync/internal/broadcast"
	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/store"
	"github.com/sammirack/admin-sync/models"
)

// documentService implements [ClientDocumentService]. Mutations are applied
// to the local cache synchronously and in call order; the push to the remote
// store happens later through the save scheduler.
type documentService struct {
	cache     store.LocalCache
	remote    adapter.RemoteClient
	identity  adapter.IdentityProvider
	scheduler SaveScheduler
	sync      ClientSyncService
	channel   broadcast.Channel
	clock     Clock
	logger    *logger.Logger
}

func NewClientDocumentService(
	cache store.LocalCache,
	remote adapter.RemoteClient,
	identity adapter.IdentityProvider,
	scheduler SaveScheduler,
	sync ClientSyncService,
	channel broadcast.Channel,
	clock Clock,
	logger *logger.Logger,
) ClientDocumentService {
	return &documentService{
		cache:     cache,
		remote:    remote,
		identity:  identity,
		scheduler: scheduler,
		sync:      sync,
		channel:   channel,
		clock:     clock,
		logger:    logger,
	}
}

// Save implements [ClientDocumentService].
func (d *documentService) Save(ctx context.Context, doc models.Document) (models.Document, error) {
	if !doc.Type.Valid() {
		return models.Document{}, ErrInvalidDocumentType
	}
	if doc.ID == "" {
		return models.Document{}, ErrEmptyDocumentID
	}

	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return models.Document{}, err
	}

	now := d.clock.Now()
	key := doc.Key()

	existing, exists := docs[key]
	if exists {
		// preserve creation metadata across updates
		doc.CreatedAt = existing.CreatedAt
		doc.CreatedBy = existing.CreatedBy
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.CreatedBy == "" {
		doc.CreatedBy = d.identity.Identity(ctx)
	}
	doc.UpdatedAt = now
	doc.SyncedAt = now

	docs[key] = doc
	if err := d.writeDocuments(ctx, key, doc, docs); err != nil {
		return models.Document{}, err
	}

	d.broadcastDocuments(docs)
	d.scheduler.RequestSave()

	return doc, nil
}

// Delete implements [ClientDocumentService]. The record stays in the local
// cache as a tombstone; removing it would let the next pull revive the
// document with the server's stale active copy.
func (d *documentService) Delete(ctx context.Context, docType models.DocumentType, id string) error {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return err
	}

	key := models.DocKey(docType, id)
	doc, ok := docs[key]
	if !ok {
		return ErrDocumentNotFound
	}

	now := d.clock.Now()
	doc.Deleted = true
	doc.DeletedAt = now
	doc.DeletedBy = d.identity.Identity(ctx)
	doc.UpdatedAt = now

	docs[key] = doc
	if err := d.writeDocuments(ctx, key, doc, docs); err != nil {
		return err
	}

	d.logger.Info().Str("doc_key", key).Str("deleted_by", doc.DeletedBy).Msg("document soft-deleted")
	d.broadcastDocuments(docs)
	d.scheduler.RequestSave()

	return nil
}

// Restore implements [ClientDocumentService]. The retained restore timestamp
// lets this copy win a later merge against the remote tombstone.
func (d *documentService) Restore(ctx context.Context, docType models.DocumentType, id string) error {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return err
	}

	key := models.DocKey(docType, id)
	doc, ok := docs[key]
	if !ok {
		return ErrDocumentNotFound
	}
	if !doc.Deleted {
		return ErrDocumentNotDeleted
	}

	now := d.clock.Now()
	doc.Deleted = false
	doc.DeletedAt = time.Time{}
	doc.DeletedBy = ""
	doc.RestoredAt = now
	doc.RestoredBy = d.identity.Identity(ctx)
	doc.UpdatedAt = now

	docs[key] = doc
	if err := d.writeDocuments(ctx, key, doc, docs); err != nil {
		return err
	}

	d.logger.Info().Str("doc_key", key).Str("restored_by", doc.RestoredBy).Msg("document restored")
	d.broadcastDocuments(docs)
	d.scheduler.RequestSave()

	return nil
}

// PermanentDelete implements [ClientDocumentService]. Unlike soft delete
// this erases immediately, remote store included: no tombstone remains and
// the key may start a fresh lifecycle afterwards.
func (d *documentService) PermanentDelete(ctx context.Context, docType models.DocumentType, id string) error {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return err
	}

	key := models.DocKey(docType, id)
	if _, ok := docs[key]; !ok {
		return ErrDocumentNotFound
	}

	delete(docs, key)
	if err := d.cache.SetDocuments(ctx, docs); err != nil {
		return err
	}
	if err := d.cache.DeleteLegacyDocument(ctx, key); err != nil {
		d.logger.Warn().Err(err).Str("doc_key", key).Msg("failed to remove document row")
	}

	if err := d.remote.DeleteDocument(ctx, key); err != nil {
		d.logger.Err(err).Str("doc_key", key).Msg("remote erase failed")
		return err
	}

	d.logger.Info().Str("doc_key", key).Msg("document permanently erased")
	d.broadcastDocuments(docs)

	return nil
}

// Get implements [ClientDocumentService].
func (d *documentService) Get(ctx context.Context, docType models.DocumentType, id string) (models.Document, error) {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return models.Document{}, err
	}

	doc, ok := docs[models.DocKey(docType, id)]
	if !ok {
		return models.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

// List implements [ClientDocumentService]. Documents come back sorted by
// key for a stable listing.
func (d *documentService) List(ctx context.Context, includeDeleted bool) ([]models.Document, error) {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Deleted && !includeDeleted {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out, nil
}

// ListDeleted implements [ClientDocumentService].
func (d *documentService) ListDeleted(ctx context.Context) ([]models.Document, error) {
	docs, err := d.cache.GetDocuments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Document, 0)
	for _, doc := range docs {
		if doc.Deleted {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out, nil
}

// SaveInventory implements [ClientDocumentService].
func (d *documentService) SaveInventory(ctx context.Context, partID string, quantity int64) error {
	inv, err := d.cache.GetInventory(ctx)
	if err != nil {
		return err
	}
	if inv == nil {
		inv = models.Inventory{}
	}

	inv[partID] = quantity
	if err := d.cache.SetInventory(ctx, inv); err != nil {
		return err
	}

	d.sync.NoteInventoryChange(partID)
	d.broadcast(models.InventoryUpdated, models.Inventory{partID: quantity})
	d.scheduler.RequestSave()

	return nil
}

// SaveAdminPrice implements [ClientDocumentService]. A zero or negative
// price removes the override entirely.
func (d *documentService) SaveAdminPrice(ctx context.Context, partID string, price int64, partInfo json.RawMessage) error {
	prices, err := d.cache.GetPrices(ctx)
	if err != nil {
		return err
	}
	if prices == nil {
		prices = models.PriceMap{}
	}

	if price <= 0 {
		delete(prices, partID)
	} else {
		prices[partID] = models.PriceEntry{
			Price:     price,
			Timestamp: d.clock.Now(),
			Account:   d.identity.Identity(ctx),
			PartInfo:  partInfo,
		}
	}

	if err := d.cache.SetPrices(ctx, prices); err != nil {
		return err
	}

	d.broadcast(models.PricesUpdated, prices)
	d.scheduler.RequestSave()

	return nil
}

// writeDocuments persists the dataset blob and the per-document mirror row.
func (d *documentService) writeDocuments(ctx context.Context, key string, doc models.Document, docs models.DocumentMap) error {
	if err := d.cache.SetDocuments(ctx, docs); err != nil {
		return err
	}
	if err := d.cache.SetLegacyDocument(ctx, key, doc); err != nil {
		d.logger.Warn().Err(err).Str("doc_key", key).Msg("failed to mirror document row")
	}
	return nil
}

func (d *documentService) broadcastDocuments(docs models.DocumentMap) {
	d.broadcast(models.DocumentsUpdated, docs)
}

func (d *documentService) broadcast(msgType models.MessageType, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Err(err).Str("type", string(msgType)).Msg("failed to encode broadcast payload")
		return
	}
	d.channel.Publish(models.Message{
		Type:      msgType,
		Data:      data,
		Timestamp: d.clock.Now(),
	})
}
