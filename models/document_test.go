package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentType_Valid(t *testing.T) {
	assert.True(t, Estimate.Valid())
	assert.True(t, Purchase.Valid())
	assert.True(t, Delivery.Valid())
	assert.False(t, DocumentType("invoice").Valid())
	assert.False(t, DocumentType("").Valid())
}

func TestDocument_Key(t *testing.T) {
	doc := Document{ID: "42", Type: Estimate}

	assert.Equal(t, "estimate_42", doc.Key())
	assert.Equal(t, doc.Key(), DocKey(Estimate, "42"))
}

func TestDocument_ModifiedAt_FallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	doc := Document{CreatedAt: created}
	assert.Equal(t, created, doc.ModifiedAt())

	doc.UpdatedAt = updated
	assert.Equal(t, updated, doc.ModifiedAt())
}

func TestDocument_DeleteTime_FallsBackToUpdatedAt(t *testing.T) {
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	deleted := updated.Add(time.Minute)

	doc := Document{Deleted: true, UpdatedAt: updated}
	assert.Equal(t, updated, doc.DeleteTime())

	doc.DeletedAt = deleted
	assert.Equal(t, deleted, doc.DeleteTime())
}
