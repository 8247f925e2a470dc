package models

import (
	"encoding/json"
	"time"
)

// MessageType identifies a cross-context broadcast message.
type MessageType string

const (
	// InventoryUpdated announces a new merged inventory snapshot.
	InventoryUpdated MessageType = "inventory-updated"

	// PricesUpdated announces a new merged admin price snapshot.
	PricesUpdated MessageType = "prices-updated"

	// DocumentsUpdated announces a new merged document snapshot.
	DocumentsUpdated MessageType = "documents-updated"

	// ForceReload asks every context to run a full resync immediately.
	ForceReload MessageType = "force-reload"

	// SaveCooldown announces that outbound saves are suppressed after a
	// rate-limit signal; Data holds a CooldownNotice.
	SaveCooldown MessageType = "save-cooldown"
)

// Message is the unit exchanged between execution contexts of the same
// installation and delivered to in-process subscribers (UI). A context must
// ignore messages whose Source equals its own instance ID to avoid
// feedback loops.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Source    string          `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
}

// CooldownNotice is the payload of a SaveCooldown message.
type CooldownNotice struct {
	// WaitSeconds is how long saves stay suppressed, rounded up.
	WaitSeconds int `json:"waitSeconds"`

	// UnblockTime is the moment the cooldown window ends.
	UnblockTime time.Time `json:"unblockTime"`
}
