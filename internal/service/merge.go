package service

import (
	"github.com/sammirack/admin-sync/models"
)

// MergeService combines a server snapshot and a local snapshot of the same
// dataset into one converged snapshot. All methods are pure: identical inputs
// produce identical output regardless of which side computed the merge, which
// is what lets every context converge on the same state after a broadcast.
type MergeService struct{}

func NewMergeService() *MergeService {
	return &MergeService{}
}

// MergeDocuments merges two document snapshots key by key. Keys present on
// only one side are taken unconditionally. For keys present on both sides:
//
//  1. If either copy is a tombstone, the tombstone wins unless the other
//     copy carries a restore timestamp later than the tombstone's delete
//     time. A stale "still active" copy never revives a deleted document,
//     no matter how recent its update timestamp.
//  2. Otherwise ordinary last-writer-wins on the modification time
//     (updatedAt, falling back to createdAt). The later copy wins in full,
//     never field by field.
func (m *MergeService) MergeDocuments(server, local models.DocumentMap) models.DocumentMap {
	merged := make(models.DocumentMap, len(server)+len(local))

	for key, serverDoc := range server {
		localDoc, ok := local[key]
		if !ok {
			merged[key] = serverDoc
			continue
		}
		merged[key] = mergeDocumentPair(serverDoc, localDoc)
	}

	for key, localDoc := range local {
		if _, ok := server[key]; !ok {
			merged[key] = localDoc
		}
	}

	return merged
}

func mergeDocumentPair(server, local models.Document) models.Document {
	switch {
	case server.Deleted && local.Deleted:
		if local.DeleteTime().After(server.DeleteTime()) {
			return local
		}
		return server

	case server.Deleted:
		if local.RestoredAt.After(server.DeleteTime()) {
			return local
		}
		return server

	case local.Deleted:
		if server.RestoredAt.After(local.DeleteTime()) {
			return server
		}
		return local

	default:
		if local.ModifiedAt().After(server.ModifiedAt()) {
			return local
		}
		return server
	}
}

// MergeInventory takes the server map as the base: inventory entries carry no
// per-key timestamp, so the remote copy is authoritative per refresh cycle.
// Keys listed in dirty were mutated locally since the last pull and keep
// their local value (or removal) instead. Callers that do not track dirty
// keys pass nil and get a plain server snapshot back.
func (m *MergeService) MergeInventory(server, local models.Inventory, dirty map[string]struct{}) models.Inventory {
	merged := server.Clone()
	if merged == nil {
		merged = models.Inventory{}
	}

	for partID := range dirty {
		if qty, ok := local[partID]; ok {
			merged[partID] = qty
		} else {
			delete(merged, partID)
		}
	}

	return merged
}

// MergePrices merges per part: each entry carries its own timestamp, so the
// later entry wins independently of every other key. One-sided keys are kept.
func (m *MergeService) MergePrices(server, local models.PriceMap) models.PriceMap {
	merged := make(models.PriceMap, len(server)+len(local))
	for partID, entry := range server {
		merged[partID] = entry
	}

	for partID, localEntry := range local {
		serverEntry, ok := merged[partID]
		if !ok || localEntry.Timestamp.After(serverEntry.Timestamp) {
			merged[partID] = localEntry
		}
	}

	return merged
}
