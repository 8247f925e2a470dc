package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/models"
)

type localCacheRepository struct {
	*DB
	logger *logger.Logger
	qb     sq.StatementBuilderType
}

func NewLocalCacheRepository(db *DB, logger *logger.Logger) LocalCache {
	return &localCacheRepository{
		DB:     db,
		logger: logger,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// getDataset reads a single dataset row and decodes its JSON payload into
// dest. A missing row returns ErrDatasetNotFound; a payload that no longer
// decodes is logged and reported as ErrDecodingPayload so that the typed
// getters can fall back to an empty dataset.
func (c *localCacheRepository) getDataset(ctx context.Context, name string, dest any) error {
	log := logger.FromContext(ctx)

	query, args, err := c.qb.
		Select("payload").
		From("datasets").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	row := c.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDatasetNotFound
		}
		log.Err(err).
			Str("func", "localCacheRepository.getDataset").
			Str("dataset", name).
			Msg("failed to scan dataset row")
		return fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	if err = json.Unmarshal(payload, dest); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.getDataset").
			Str("dataset", name).
			Msg("cached payload is not valid JSON")
		return fmt.Errorf("%w: %s", ErrDecodingPayload, err)
	}

	return nil
}

// emptyOnCorruption reports whether a getDataset error means the dataset
// should be presented as empty: the row never existed, or its payload is
// corrupt and unrecoverable anyway.
func emptyOnCorruption(err error) bool {
	return errors.Is(err, ErrDatasetNotFound) || errors.Is(err, ErrDecodingPayload)
}

// setDataset upserts a dataset row, replacing any previous payload.
func (c *localCacheRepository) setDataset(ctx context.Context, name string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEncodingPayload, err)
	}

	query, args, err := c.qb.
		Insert("datasets").
		Columns("name", "payload", "updated_at").
		Values(name, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.setDataset").
			Str("dataset", name).
			Msg("failed to execute dataset upsert")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

func (c *localCacheRepository) GetInventory(ctx context.Context) (models.Inventory, error) {
	inv := models.Inventory{}
	if err := c.getDataset(ctx, DatasetInventory, &inv); err != nil {
		if emptyOnCorruption(err) {
			return models.Inventory{}, nil
		}
		return nil, err
	}
	return inv, nil
}

func (c *localCacheRepository) SetInventory(ctx context.Context, inv models.Inventory) error {
	return c.setDataset(ctx, DatasetInventory, inv)
}

func (c *localCacheRepository) GetPrices(ctx context.Context) (models.PriceMap, error) {
	prices := models.PriceMap{}
	if err := c.getDataset(ctx, DatasetPrices, &prices); err != nil {
		if emptyOnCorruption(err) {
			return models.PriceMap{}, nil
		}
		return nil, err
	}
	return prices, nil
}

func (c *localCacheRepository) SetPrices(ctx context.Context, prices models.PriceMap) error {
	return c.setDataset(ctx, DatasetPrices, prices)
}

func (c *localCacheRepository) GetPriceHistory(ctx context.Context) (models.PriceHistory, error) {
	var history json.RawMessage
	if err := c.getDataset(ctx, DatasetPriceHistory, &history); err != nil {
		if emptyOnCorruption(err) {
			return nil, nil
		}
		return nil, err
	}
	return models.PriceHistory(history), nil
}

func (c *localCacheRepository) SetPriceHistory(ctx context.Context, history models.PriceHistory) error {
	if len(history) == 0 {
		history = models.PriceHistory("{}")
	}
	return c.setDataset(ctx, DatasetPriceHistory, json.RawMessage(history))
}

func (c *localCacheRepository) GetDocuments(ctx context.Context) (models.DocumentMap, error) {
	docs := models.DocumentMap{}
	if err := c.getDataset(ctx, DatasetDocuments, &docs); err != nil {
		if emptyOnCorruption(err) {
			return models.DocumentMap{}, nil
		}
		return nil, err
	}
	return docs, nil
}

func (c *localCacheRepository) SetDocuments(ctx context.Context, docs models.DocumentMap) error {
	return c.setDataset(ctx, DatasetDocuments, docs)
}

func (c *localCacheRepository) GetActivity(ctx context.Context) (models.ActivityLog, error) {
	activity := models.ActivityLog{}
	if err := c.getDataset(ctx, DatasetActivity, &activity); err != nil {
		if emptyOnCorruption(err) {
			return models.ActivityLog{}, nil
		}
		return nil, err
	}
	return activity, nil
}

func (c *localCacheRepository) SetActivity(ctx context.Context, log models.ActivityLog) error {
	return c.setDataset(ctx, DatasetActivity, log)
}

func (c *localCacheRepository) GetLegacyDocument(ctx context.Context, key string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.qb.
		Select("payload").
		From("legacy_documents").
		Where(sq.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	row := c.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).
			Str("func", "localCacheRepository.GetLegacyDocument").
			Str("doc_key", key).
			Msg("failed to scan legacy document row")
		return models.Document{}, fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	var doc models.Document
	if err = json.Unmarshal(payload, &doc); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.GetLegacyDocument").
			Str("doc_key", key).
			Msg("cached document is not valid JSON")
		return models.Document{}, fmt.Errorf("%w: %s", ErrScanningRow, err)
	}

	return doc, nil
}

func (c *localCacheRepository) SetLegacyDocument(ctx context.Context, key string, doc models.Document) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrEncodingPayload, err)
	}

	query, args, err := c.qb.
		Insert("legacy_documents").
		Columns("doc_key", "payload", "updated_at").
		Values(key, string(payload), time.Now().UTC()).
		Suffix("ON CONFLICT(doc_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.SetLegacyDocument").
			Str("doc_key", key).
			Msg("failed to execute legacy document upsert")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

func (c *localCacheRepository) DeleteLegacyDocument(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.qb.
		Delete("legacy_documents").
		Where(sq.Eq{"doc_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.DeleteLegacyDocument").
			Str("doc_key", key).
			Msg("failed to execute legacy document delete")
		return fmt.Errorf("%w: %s", ErrExecutingStatement, err)
	}

	return nil
}

func (c *localCacheRepository) ListLegacyDocuments(ctx context.Context) (models.DocumentMap, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.qb.
		Select("doc_key", "payload").
		From("legacy_documents").
		OrderBy("doc_key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localCacheRepository.ListLegacyDocuments").
			Msg("failed to query legacy documents")
		return nil, fmt.Errorf("%w: %s", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := models.DocumentMap{}
	for rows.Next() {
		var (
			key     string
			payload []byte
		)
		if err = rows.Scan(&key, &payload); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrScanningRows, err)
		}

		var doc models.Document
		if err = json.Unmarshal(payload, &doc); err != nil {
			log.Warn().
				Str("func", "localCacheRepository.ListLegacyDocuments").
				Str("doc_key", key).
				Msg("skipping legacy document with invalid JSON payload")
			continue
		}
		docs[key] = doc
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScanningRows, err)
	}

	return docs, nil
}
