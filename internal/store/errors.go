package store

import "errors"

// Sentinel errors returned by cache repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrDatasetNotFound is returned when a named dataset row does not exist
	// in the local cache yet. Callers usually treat this as an empty dataset.
	ErrDatasetNotFound = errors.New("dataset not found in local cache")

	// ErrDocumentNotFound is returned when a per-document row, addressed by
	// its composite key, does not exist in the local cache.
	ErrDocumentNotFound = errors.New("document not found in local cache")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination value fails.
	ErrScanningRow = errors.New("failed to scan cache row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan cache rows")

	// ErrEncodingPayload is returned when a dataset value cannot be encoded
	// to JSON before being written to the cache.
	ErrEncodingPayload = errors.New("failed to encode cache payload")

	// ErrDecodingPayload is returned when a stored payload no longer decodes
	// as JSON. Dataset getters treat this as corruption and fall back to an
	// empty dataset rather than failing the caller.
	ErrDecodingPayload = errors.New("failed to decode cache payload")
)
