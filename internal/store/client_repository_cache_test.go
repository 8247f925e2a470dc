package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/models"
)

const (
	selectDatasetSQL  = `SELECT payload FROM datasets WHERE name = ?`
	upsertDatasetSQL  = `INSERT INTO datasets (name,payload,updated_at) VALUES (?,?,?) ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	selectDocumentSQL = `SELECT payload FROM legacy_documents WHERE doc_key = ?`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestCache(t *testing.T, db *sql.DB) LocalCache {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewLocalCacheRepository(storeDB, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── dataset reads ──

func TestGetInventory(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      models.Inventory
		wantErr   error
	}{
		{
			name: "success: payload decoded into inventory map",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
					WithArgs(DatasetInventory).
					WillReturnRows(sqlmock.NewRows([]string{"payload"}).
						AddRow([]byte(`{"part-1":5,"part-2":12}`)))
			},
			want: models.Inventory{"part-1": 5, "part-2": 12},
		},
		{
			name: "success: missing dataset row yields empty map",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
					WithArgs(DatasetInventory).
					WillReturnError(sql.ErrNoRows)
			},
			want: models.Inventory{},
		},
		{
			// corrupt cache payloads degrade to an empty dataset, they are
			// never fatal to the sync cycle
			name: "success: malformed payload yields empty map",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
					WithArgs(DatasetInventory).
					WillReturnRows(sqlmock.NewRows([]string{"payload"}).
						AddRow([]byte(`not json`)))
			},
			want: models.Inventory{},
		},
		{
			name: "error: query failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
					WithArgs(DatasetInventory).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			cache := newTestCache(t, db)
			tt.setupMock(mock)

			got, err := cache.GetInventory(testContext())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetDocuments_TombstoneSurvivesRoundTrip(t *testing.T) {
	db, mock := newTestDB(t)
	cache := newTestCache(t, db)

	deletedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	docs := models.DocumentMap{
		"estimate_a1": {
			ID:        "a1",
			Type:      models.Estimate,
			Deleted:   true,
			DeletedAt: deletedAt,
			DeletedBy: "admin@203.0.113.7",
		},
	}
	payload, err := json.Marshal(docs)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
		WithArgs(DatasetDocuments).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := cache.GetDocuments(testContext())
	require.NoError(t, err)
	require.Contains(t, got, "estimate_a1")
	assert.True(t, got["estimate_a1"].Deleted)
	assert.Equal(t, deletedAt, got["estimate_a1"].DeletedAt)
	assert.Equal(t, "admin@203.0.113.7", got["estimate_a1"].DeletedBy)
}

func TestGetPriceHistory_MissingRowIsNil(t *testing.T) {
	db, mock := newTestDB(t)
	cache := newTestCache(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectDatasetSQL)).
		WithArgs(DatasetPriceHistory).
		WillReturnError(sql.ErrNoRows)

	got, err := cache.GetPriceHistory(testContext())
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ── dataset writes ──

func TestSetInventory(t *testing.T) {
	tests := []struct {
		name      string
		inv       models.Inventory
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "success: upsert executed with dataset name",
			inv:  models.Inventory{"part-1": 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(upsertDatasetSQL)).
					WithArgs(DatasetInventory, `{"part-1":3}`, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "error: exec failure wrapped as statement error",
			inv:  models.Inventory{"part-1": 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(upsertDatasetSQL)).
					WithArgs(DatasetInventory, `{"part-1":3}`, sqlmock.AnyArg()).
					WillReturnError(errors.New("database is locked"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			cache := newTestCache(t, db)
			tt.setupMock(mock)

			err := cache.SetInventory(testContext(), tt.inv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetPriceHistory_EmptyBlobStoredAsEmptyObject(t *testing.T) {
	db, mock := newTestDB(t)
	cache := newTestCache(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertDatasetSQL)).
		WithArgs(DatasetPriceHistory, `{}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cache.SetPriceHistory(testContext(), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── legacy document rows ──

func TestGetLegacyDocument(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		key       string
		setupMock func(mock sqlmock.Sqlmock)
		want      models.Document
		wantErr   error
	}{
		{
			name: "success: document decoded from payload",
			key:  "purchase_p42",
			setupMock: func(mock sqlmock.Sqlmock) {
				doc := models.Document{ID: "p42", Type: models.Purchase, CreatedAt: createdAt}
				payload, _ := json.Marshal(doc)
				mock.ExpectQuery(regexp.QuoteMeta(selectDocumentSQL)).
					WithArgs("purchase_p42").
					WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))
			},
			want: models.Document{ID: "p42", Type: models.Purchase, CreatedAt: createdAt},
		},
		{
			name: "error: missing row",
			key:  "estimate_nope",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectDocumentSQL)).
					WithArgs("estimate_nope").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrDocumentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			cache := newTestCache(t, db)
			tt.setupMock(mock)

			got, err := cache.GetLegacyDocument(testContext(), tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeleteLegacyDocument(t *testing.T) {
	db, mock := newTestDB(t)
	cache := newTestCache(t, db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM legacy_documents WHERE doc_key = ?`)).
		WithArgs("delivery_d7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := cache.DeleteLegacyDocument(testContext(), "delivery_d7")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLegacyDocuments_SkipsMalformedRows(t *testing.T) {
	db, mock := newTestDB(t)
	cache := newTestCache(t, db)

	good := models.Document{ID: "e1", Type: models.Estimate}
	goodPayload, err := json.Marshal(good)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT doc_key, payload FROM legacy_documents ORDER BY doc_key`)).
		WillReturnRows(sqlmock.NewRows([]string{"doc_key", "payload"}).
			AddRow("estimate_broken", []byte(`{{{`)).
			AddRow("estimate_e1", goodPayload))

	docs, err := cache.ListLegacyDocuments(testContext())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, good.ID, docs["estimate_e1"].ID)
}
