// Package catalog stores converted record batches for other services to read
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-retool/internal/repositories/catalog Repository

import (
	"context"
	"encoding/json"
	"time"
)

// Batch is one published conversion result.
type Batch struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
	Count     int             `json:"count"`
	Records   json.RawMessage `json:"records"`
}

// Repository defines the interface for batch persistence
type Repository interface {
	// Put stores a batch and indexes it under its kind
	// Returns errors.InvalidArgument for a nil batch or empty kind/ID
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a batch
	// Returns errors.InvalidArgument for empty kind/ID
	// Returns errors.NotFound if the batch does not exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListIDs returns batch IDs for a kind, newest first
	// Returns errors.InvalidArgument for an empty kind
	// Returns errors.Internal for storage failures
	ListIDs(ctx context.Context, input ListIDsInput) (*ListIDsOutput, error)
}

// PutInput defines the input for storing a batch
type PutInput struct {
	Batch *Batch
}

// PutOutput defines the output for storing a batch
type PutOutput struct {
	Key string
}

// GetInput defines the input for getting a batch
type GetInput struct {
	Kind string
	ID   string
}

// GetOutput defines the output for getting a batch
type GetOutput struct {
	Batch *Batch
}

// ListIDsInput defines the input for listing batch IDs
type ListIDsInput struct {
	Kind string
	// Limit caps the result; 0 returns every ID
	Limit int
}

// ListIDsOutput defines the output for listing batch IDs
type ListIDsOutput struct {
	IDs []string
}
