package models

import (
	"encoding/json"
	"time"
)

// PriceEntry is one admin-overridden part price. Unlike inventory entries,
// every price carries its own timestamp, so the map can be merged per key
// with last-writer-wins independent of sibling entries.
type PriceEntry struct {
	// Price is the overridden unit price.
	Price int64 `json:"price"`

	// Timestamp is when the override was written; later wins during merge.
	Timestamp time.Time `json:"timestamp"`

	// Account is the admin account that wrote the override.
	Account string `json:"account"`

	// PartInfo is an opaque description of the part (name, size, options).
	PartInfo json.RawMessage `json:"partInfo,omitempty"`
}

// PriceMap is the admin price dataset keyed by part identifier.
type PriceMap map[string]PriceEntry

// PriceHistory is the fifth synchronized dataset. It is opaque to the
// engine: pulled, cached, and pushed as a whole blob with the server copy
// authoritative, never merged per key.
type PriceHistory json.RawMessage
