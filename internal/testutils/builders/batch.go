// Package builders provides test data builders for creating test fixtures
package builders

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
)

// BatchBuilder provides a fluent interface for building test Batch instances
type BatchBuilder struct {
	batch *catalog.Batch
}

// NewBatchBuilder creates a new builder with minimal defaults
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		batch: &catalog.Batch{
			ID:        "batch-test-123",
			Kind:      "feat",
			Source:    "testdata/feats.json",
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Records:   json.RawMessage(`[]`),
		},
	}
}

// WithID sets the batch ID
func (b *BatchBuilder) WithID(id string) *BatchBuilder {
	b.batch.ID = id
	return b
}

// WithKind sets the converter kind
func (b *BatchBuilder) WithKind(kind string) *BatchBuilder {
	b.batch.Kind = kind
	return b
}

// WithSource sets the input path the batch came from
func (b *BatchBuilder) WithSource(source string) *BatchBuilder {
	b.batch.Source = source
	return b
}

// WithCreatedAt sets the creation time
func (b *BatchBuilder) WithCreatedAt(t time.Time) *BatchBuilder {
	b.batch.CreatedAt = t
	return b
}

// WithRecords sets the serialized records and their count
func (b *BatchBuilder) WithRecords(records string, count int) *BatchBuilder {
	b.batch.Records = json.RawMessage(records)
	b.batch.Count = count
	return b
}

// Build returns the constructed batch
func (b *BatchBuilder) Build() *catalog.Batch {
	return b.batch
}
