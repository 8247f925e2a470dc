package service

import "errors"

var (
	// ErrDocumentNotFound is returned when an operation targets a document
	// key that is not present in the local snapshot.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentNotDeleted is returned when Restore is called on a document
	// that is not soft-deleted.
	ErrDocumentNotDeleted = errors.New("document is not deleted")

	// ErrInvalidDocumentType is returned when a document carries a type
	// outside the known set.
	ErrInvalidDocumentType = errors.New("invalid document type")

	// ErrEmptyDocumentID is returned when a document operation is attempted
	// without an ID.
	ErrEmptyDocumentID = errors.New("empty document id")
)
