package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sammirack/admin-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SaveScheduler converts a burst of local mutations into a bounded rate of
// outbound pushes. It debounces rapid mutation bursts into a single save,
// enforces a minimum spacing between executed saves, retries transient
// failures, and enters an exponentially growing cooldown window when the
// remote signals a rate limit.
type SaveScheduler interface {
	// RequestSave notes that local state changed and a push is needed.
	// Calls arriving within the debounce window coalesce into one save;
	// calls arriving during a cooldown are queued to fire exactly when the
	// cooldown ends.
	RequestSave()

	// Stop cancels any armed timers. A stopped scheduler ignores further
	// RequestSave calls.
	Stop()
}

// ClientSyncService synchronises the local cache with the remote store.
type ClientSyncService interface {
	// FullSync pulls every dataset from the remote store, merges each one
	// against the local cache, persists the converged snapshots, and
	// broadcasts per-dataset update messages. A pull failure for one
	// dataset never aborts the others.
	FullSync(ctx context.Context) error

	// Push uploads local changes: documents that differ from the last-known
	// server snapshot, the full inventory map, price entries newer than the
	// server's, the price history blob, and one activity log entry
	// describing the push. Invoked by the save scheduler.
	Push(ctx context.Context) error

	// ReconcileLocal uploads documents that exist locally but were never
	// synchronised (no creator or sync stamp), stamping them on the way.
	// Runs once at startup.
	ReconcileLocal(ctx context.Context) error

	// NoteInventoryChange records that partID was mutated locally since the
	// last pull, protecting the entry during the next inventory merge when
	// timestamped inventory protection is enabled.
	NoteInventoryChange(partID string)
}

// ClientDocumentService manages the document lifecycle and the inventory and
// price mutations of the local installation. Every mutation is optimistic:
// the local cache and the broadcast reflect it immediately, and the save
// scheduler pushes it to the remote store later.
type ClientDocumentService interface {
	// Save creates or updates a document. The first save stamps CreatedAt
	// and CreatedBy; every save stamps UpdatedAt. Returns the stored copy.
	Save(ctx context.Context, doc models.Document) (models.Document, error)

	// Get returns the document for the given type and id, tombstoned or not.
	Get(ctx context.Context, docType models.DocumentType, id string) (models.Document, error)

	// List returns all active documents, optionally including tombstones.
	List(ctx context.Context, includeDeleted bool) ([]models.Document, error)

	// ListDeleted returns only the soft-deleted documents.
	ListDeleted(ctx context.Context) ([]models.Document, error)

	// Delete soft-deletes a document: the record is kept as a tombstone so
	// that a later pull cannot revive it.
	Delete(ctx context.Context, docType models.DocumentType, id string) error

	// Restore clears a tombstone and stamps the restore time, letting the
	// restored copy win a future merge against the remote tombstone.
	Restore(ctx context.Context, docType models.DocumentType, id string) error

	// PermanentDelete erases the document from the local cache and the
	// remote store. No tombstone remains; the key may be recreated.
	PermanentDelete(ctx context.Context, docType models.DocumentType, id string) error

	// SaveInventory sets the quantity for a part.
	SaveInventory(ctx context.Context, partID string, quantity int64) error

	// SaveAdminPrice sets the admin price for a part. A zero or negative
	// price removes the entry.
	SaveAdminPrice(ctx context.Context, partID string, price int64, partInfo json.RawMessage) error
}

// ClientSyncJob is the background worker that runs FullSync periodically.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
