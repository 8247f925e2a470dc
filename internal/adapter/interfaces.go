// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the remote key-value store that holds the shared datasets.
//
// The primary abstraction is [RemoteClient], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteClient]); the store exposes plain
// get-all/update/save/delete resources and performs no merge logic of its
// own, so every call here is idempotent and side-effect-scoped to one
// dataset.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRateLimited] for 429/503).
package adapter

import (
	"context"

	"github.com/sammirack/admin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_client_mock.go -package=mock

// RemoteClient defines transport-agnostic communication with the remote
// store. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
//
// Pull failures must be tolerated by callers: the engine degrades to the
// cached copy of the failing dataset and carries on with the others.
type RemoteClient interface {
	// PullInventory fetches the full inventory dataset.
	PullInventory(ctx context.Context) (models.Inventory, error)

	// PullPrices fetches the full admin price dataset.
	PullPrices(ctx context.Context) (models.PriceMap, error)

	// PullPriceHistory fetches the opaque price history blob.
	PullPriceHistory(ctx context.Context) (models.PriceHistory, error)

	// PullDocuments fetches the full document dataset, tombstones included.
	PullDocuments(ctx context.Context) (models.DocumentMap, error)

	// PullActivity fetches the newest limit entries of the shared activity
	// log, newest first.
	PullActivity(ctx context.Context, limit int) (models.ActivityLog, error)

	// PushInventory replaces the remote inventory map.
	PushInventory(ctx context.Context, inv models.Inventory) error

	// PushPriceEntry writes a single admin price override. One entry per
	// call so that a failing entry does not abort sibling pushes.
	PushPriceEntry(ctx context.Context, partID string, entry models.PriceEntry) error

	// PushPriceHistory replaces the opaque price history blob.
	PushPriceHistory(ctx context.Context, history models.PriceHistory) error

	// PushDocument saves one document (or tombstone) under its composite
	// key. Soft deletes travel through here as saves with Deleted set; only
	// the hard erase path uses DeleteDocument.
	PushDocument(ctx context.Context, key string, doc models.Document) error

	// DeleteDocument permanently removes the key from the remote store.
	DeleteDocument(ctx context.Context, key string) error

	// AppendActivity appends one entry to the shared activity log.
	AppendActivity(ctx context.Context, entry models.ActivityEntry) error
}

// IdentityProvider resolves the actor identity stamped into document
// metadata and activity entries, in the form "username@clientIP". The IP
// part comes from a best-effort external lookup; when it is unavailable the
// provider substitutes "unknown" rather than failing.
type IdentityProvider interface {
	Identity(ctx context.Context) string
}
