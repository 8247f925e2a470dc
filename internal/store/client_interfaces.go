package store

import (
	"context"

	"github.com/sammirack/admin-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Dataset names used as primary keys in the local cache. They match the
// storage keys the web clients historically used, so a cache produced by an
// older client remains readable.
const (
	DatasetInventory    = "inventory_data"
	DatasetPrices       = "admin_edit_prices"
	DatasetPriceHistory = "admin_price_history"
	DatasetActivity     = "admin_activity_log"
	DatasetDocuments    = "synced_documents"
)

// LocalCache is the low-level local cache repository. Each dataset is stored
// as a single JSON payload addressed by name; documents are additionally
// mirrored into per-document rows keyed by their composite "{type}_{id}" key
// for compatibility with legacy single-document lookups.
type LocalCache interface {
	GetInventory(ctx context.Context) (models.Inventory, error)
	SetInventory(ctx context.Context, inv models.Inventory) error

	GetPrices(ctx context.Context) (models.PriceMap, error)
	SetPrices(ctx context.Context, prices models.PriceMap) error

	GetPriceHistory(ctx context.Context) (models.PriceHistory, error)
	SetPriceHistory(ctx context.Context, history models.PriceHistory) error

	GetDocuments(ctx context.Context) (models.DocumentMap, error)
	SetDocuments(ctx context.Context, docs models.DocumentMap) error

	GetActivity(ctx context.Context) (models.ActivityLog, error)
	SetActivity(ctx context.Context, log models.ActivityLog) error

	GetLegacyDocument(ctx context.Context, key string) (models.Document, error)
	SetLegacyDocument(ctx context.Context, key string, doc models.Document) error
	DeleteLegacyDocument(ctx context.Context, key string) error
	ListLegacyDocuments(ctx context.Context) (models.DocumentMap, error)
}
