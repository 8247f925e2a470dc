package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammirack/admin-sync/models"
)

func ts(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func activeDoc(id string, updated int64) models.Document {
	return models.Document{
		ID:        id,
		Type:      models.Estimate,
		CreatedAt: ts(1),
		UpdatedAt: ts(updated),
	}
}

func tombstone(id string, deleted int64) models.Document {
	return models.Document{
		ID:        id,
		Type:      models.Estimate,
		CreatedAt: ts(1),
		UpdatedAt: ts(deleted),
		Deleted:   true,
		DeletedAt: ts(deleted),
		DeletedBy: "admin@198.51.100.4",
	}
}

// ── document merge rules ──

func TestMergeDocuments_LastWriterWins(t *testing.T) {
	m := NewMergeService()

	server := models.DocumentMap{"estimate_1": activeDoc("1", 100)}
	local := models.DocumentMap{"estimate_1": activeDoc("1", 200)}

	merged := m.MergeDocuments(server, local)

	require.Len(t, merged, 1)
	assert.Equal(t, ts(200), merged["estimate_1"].UpdatedAt)
}

func TestMergeDocuments_FallsBackToCreatedAt(t *testing.T) {
	m := NewMergeService()

	older := models.Document{ID: "1", Type: models.Estimate, CreatedAt: ts(50)}
	newer := models.Document{ID: "1", Type: models.Estimate, CreatedAt: ts(150)}

	merged := m.MergeDocuments(
		models.DocumentMap{"estimate_1": older},
		models.DocumentMap{"estimate_1": newer},
	)

	assert.Equal(t, ts(150), merged["estimate_1"].CreatedAt)
}

func TestMergeDocuments_OneSidedKeysKept(t *testing.T) {
	m := NewMergeService()

	server := models.DocumentMap{"estimate_1": activeDoc("1", 10)}
	local := models.DocumentMap{"estimate_2": activeDoc("2", 20)}

	merged := m.MergeDocuments(server, local)

	require.Len(t, merged, 2)
	assert.Contains(t, merged, "estimate_1")
	assert.Contains(t, merged, "estimate_2")
}

func TestMergeDocuments_TombstonePrecedence(t *testing.T) {
	// A locally-stale active copy must not revive a deleted document even
	// when its update timestamp is numerically later than the delete time.
	m := NewMergeService()

	server := models.DocumentMap{"estimate_1": tombstone("1", 100)}
	local := models.DocumentMap{"estimate_1": activeDoc("1", 500)}

	merged := m.MergeDocuments(server, local)

	require.True(t, merged["estimate_1"].Deleted)
	assert.Equal(t, ts(100), merged["estimate_1"].DeletedAt)
}

func TestMergeDocuments_RestoreOverridesTombstone(t *testing.T) {
	m := NewMergeService()

	restored := activeDoc("1", 200)
	restored.RestoredAt = ts(200)
	restored.RestoredBy = "admin@198.51.100.4"

	server := models.DocumentMap{"estimate_1": tombstone("1", 150)}
	local := models.DocumentMap{"estimate_1": restored}

	merged := m.MergeDocuments(server, local)

	require.False(t, merged["estimate_1"].Deleted)
	assert.Equal(t, ts(200), merged["estimate_1"].RestoredAt)
}

func TestMergeDocuments_RestoreOlderThanDeleteLoses(t *testing.T) {
	m := NewMergeService()

	restored := activeDoc("1", 120)
	restored.RestoredAt = ts(120)

	server := models.DocumentMap{"estimate_1": tombstone("1", 150)}
	local := models.DocumentMap{"estimate_1": restored}

	merged := m.MergeDocuments(server, local)

	assert.True(t, merged["estimate_1"].Deleted)
}

func TestMergeDocuments_TombstoneWithoutDeletedAtUsesUpdatedAt(t *testing.T) {
	m := NewMergeService()

	stone := models.Document{ID: "1", Type: models.Estimate, UpdatedAt: ts(150), Deleted: true}
	restored := activeDoc("1", 200)
	restored.RestoredAt = ts(200)

	merged := m.MergeDocuments(
		models.DocumentMap{"estimate_1": stone},
		models.DocumentMap{"estimate_1": restored},
	)

	assert.False(t, merged["estimate_1"].Deleted)
}

func TestMergeDocuments_BothTombstonedLaterDeleteWins(t *testing.T) {
	m := NewMergeService()

	merged := m.MergeDocuments(
		models.DocumentMap{"estimate_1": tombstone("1", 100)},
		models.DocumentMap{"estimate_1": tombstone("1", 300)},
	)

	assert.Equal(t, ts(300), merged["estimate_1"].DeletedAt)
}

// ── determinism properties ──

func TestMergeDocuments_Commutative(t *testing.T) {
	m := NewMergeService()

	restored := activeDoc("3", 400)
	restored.RestoredAt = ts(400)

	a := models.DocumentMap{
		"estimate_1": activeDoc("1", 100),
		"estimate_2": tombstone("2", 250),
		"estimate_3": restored,
		"estimate_4": activeDoc("4", 10),
	}
	b := models.DocumentMap{
		"estimate_1": activeDoc("1", 300),
		"estimate_2": activeDoc("2", 500),
		"estimate_3": tombstone("3", 350),
		"estimate_5": tombstone("5", 40),
	}

	assert.Equal(t, m.MergeDocuments(a, b), m.MergeDocuments(b, a))
}

func TestMergeDocuments_Idempotent(t *testing.T) {
	m := NewMergeService()

	a := models.DocumentMap{
		"estimate_1": activeDoc("1", 100),
		"estimate_2": tombstone("2", 250),
	}
	b := models.DocumentMap{
		"estimate_1": activeDoc("1", 300),
		"estimate_3": activeDoc("3", 50),
	}

	once := m.MergeDocuments(a, b)
	twice := m.MergeDocuments(once, b)

	assert.Equal(t, once, twice)
}

func TestMergePrices_Idempotent(t *testing.T) {
	m := NewMergeService()

	a := models.PriceMap{
		"p1": {Price: 100, Timestamp: ts(10)},
		"p2": {Price: 200, Timestamp: ts(20)},
	}
	b := models.PriceMap{
		"p1": {Price: 150, Timestamp: ts(30)},
		"p3": {Price: 300, Timestamp: ts(5)},
	}

	once := m.MergePrices(a, b)
	twice := m.MergePrices(once, b)

	assert.Equal(t, once, twice)
}

// ── lifecycle scenarios ──

func TestMergeDocuments_LocalDeleteSurvivesStalePull(t *testing.T) {
	// Local deletes at t=100; a pull carrying the server's still-active copy
	// from t=90 arrives afterwards. The merge keeps the tombstone.
	m := NewMergeService()

	server := models.DocumentMap{"estimate_5": activeDoc("5", 90)}
	local := models.DocumentMap{"estimate_5": tombstone("5", 100)}

	merged := m.MergeDocuments(server, local)

	assert.True(t, merged["estimate_5"].Deleted)
}

func TestMergeDocuments_ConcurrentSavesConverge(t *testing.T) {
	// Two contexts save the same document independently; after both merge,
	// both converge on the later copy no matter the merge direction.
	m := NewMergeService()

	tabA := models.DocumentMap{"delivery_3": activeDoc("3", 10)}
	tabB := models.DocumentMap{"delivery_3": activeDoc("3", 20)}

	onA := m.MergeDocuments(tabB, tabA)
	onB := m.MergeDocuments(tabA, tabB)

	assert.Equal(t, onA, onB)
	assert.Equal(t, ts(20), onA["delivery_3"].UpdatedAt)
}

// ── inventory merge ──

func TestMergeInventory(t *testing.T) {
	m := NewMergeService()

	tests := []struct {
		name   string
		server models.Inventory
		local  models.Inventory
		dirty  map[string]struct{}
		want   models.Inventory
	}{
		{
			name:   "server map wins wholesale without dirty keys",
			server: models.Inventory{"p1": 5, "p2": 7},
			local:  models.Inventory{"p1": 99, "p3": 1},
			want:   models.Inventory{"p1": 5, "p2": 7},
		},
		{
			name:   "dirty keys keep local value",
			server: models.Inventory{"p1": 5, "p2": 7},
			local:  models.Inventory{"p1": 99},
			dirty:  map[string]struct{}{"p1": {}},
			want:   models.Inventory{"p1": 99, "p2": 7},
		},
		{
			name:   "dirty key removed locally is dropped",
			server: models.Inventory{"p1": 5, "p2": 7},
			local:  models.Inventory{},
			dirty:  map[string]struct{}{"p2": {}},
			want:   models.Inventory{"p1": 5},
		},
		{
			name:  "nil server yields empty map",
			local: models.Inventory{"p1": 3},
			want:  models.Inventory{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MergeInventory(tt.server, tt.local, tt.dirty)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── price merge ──

func TestMergePrices(t *testing.T) {
	m := NewMergeService()

	tests := []struct {
		name   string
		server models.PriceMap
		local  models.PriceMap
		want   models.PriceMap
	}{
		{
			name:   "later entry wins per key",
			server: models.PriceMap{"p1": {Price: 100, Timestamp: ts(10)}},
			local:  models.PriceMap{"p1": {Price: 150, Timestamp: ts(20)}},
			want:   models.PriceMap{"p1": {Price: 150, Timestamp: ts(20)}},
		},
		{
			name:   "earlier local entry loses",
			server: models.PriceMap{"p1": {Price: 100, Timestamp: ts(30)}},
			local:  models.PriceMap{"p1": {Price: 150, Timestamp: ts(20)}},
			want:   models.PriceMap{"p1": {Price: 100, Timestamp: ts(30)}},
		},
		{
			name:   "keys merge independently",
			server: models.PriceMap{"p1": {Price: 100, Timestamp: ts(10)}},
			local:  models.PriceMap{"p2": {Price: 200, Timestamp: ts(5)}},
			want: models.PriceMap{
				"p1": {Price: 100, Timestamp: ts(10)},
				"p2": {Price: 200, Timestamp: ts(5)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MergePrices(tt.server, tt.local)
			assert.Equal(t, tt.want, got)
		})
	}
}
