package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentType identifies which kind of business document a record holds.
// IDs are never reused across types, so (type, id) is a stable composite key.
type DocumentType string

const (
	// Estimate is a customer-facing price estimate.
	Estimate DocumentType = "estimate"

	// Purchase is a purchase order sent to a supplier.
	Purchase DocumentType = "purchase"

	// Delivery is a delivery note accompanying shipped goods.
	Delivery DocumentType = "delivery"
)

// Valid reports whether t is one of the three known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case Estimate, Purchase, Delivery:
		return true
	}
	return false
}

// Document is a single synchronized business document. The business payload
// (line items, totals, customer info) is opaque to the sync engine and is
// carried through Payload untouched; all remaining fields are engine-managed
// metadata used for conflict resolution and the soft-delete lifecycle.
type Document struct {
	// ID is unique within a document type.
	ID string `json:"id"`

	// Type is one of estimate, purchase, delivery.
	Type DocumentType `json:"type"`

	// Payload is the business content. The engine never inspects it.
	Payload json.RawMessage `json:"payload,omitempty"`

	// CreatedAt is stamped on first local save.
	CreatedAt time.Time `json:"createdAt,omitempty"`

	// UpdatedAt is stamped on every save and drives last-writer-wins merge.
	UpdatedAt time.Time `json:"updatedAt,omitempty"`

	// CreatedBy is the actor identity ("username@ip") of the creator.
	CreatedBy string `json:"createdBy,omitempty"`

	// SyncedAt is the moment this copy was last handed to the sync engine.
	SyncedAt time.Time `json:"syncedAt,omitempty"`

	// Deleted marks the record as a tombstone. Tombstones are retained
	// until an explicit permanent erase; merge never drops them silently.
	Deleted bool `json:"deleted,omitempty"`

	// DeletedAt / DeletedBy are stamped on soft delete.
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy string    `json:"deletedBy,omitempty"`

	// RestoredAt / RestoredBy survive a restore so that a later pull of a
	// stale remote tombstone can be out-voted during merge.
	RestoredAt time.Time `json:"restoredAt,omitempty"`
	RestoredBy string    `json:"restoredBy,omitempty"`
}

// DocumentMap is the synchronized document dataset keyed by DocKey.
type DocumentMap map[string]Document

// DocKey builds the serialized composite key "{type}_{id}".
func DocKey(t DocumentType, id string) string {
	return fmt.Sprintf("%s_%s", t, id)
}

// Key returns the document's serialized composite key.
func (d Document) Key() string {
	return DocKey(d.Type, d.ID)
}

// ModifiedAt returns the timestamp used for last-writer-wins comparison:
// UpdatedAt, falling back to CreatedAt when UpdatedAt was never stamped.
func (d Document) ModifiedAt() time.Time {
	if !d.UpdatedAt.IsZero() {
		return d.UpdatedAt
	}
	return d.CreatedAt
}

// DeleteTime returns the timestamp a tombstone competes with during merge:
// DeletedAt, falling back to UpdatedAt for tombstones written by older
// clients that never stamped DeletedAt.
func (d Document) DeleteTime() time.Time {
	if !d.DeletedAt.IsZero() {
		return d.DeletedAt
	}
	return d.UpdatedAt
}
