// Package conversion runs converters against files and publishes the results
package conversion

import (
	"context"

	"github.com/KirkDiggler/rpg-retool/internal/convert"
	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
)

// Service defines the conversion operations exposed by the CLI
type Service interface {
	// Convert reads InputPath, converts it and writes the result to OutputPath
	Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error)

	// Publish converts InputPath and stores the result in the catalog
	Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error)

	// ListBatches returns published batch IDs for a kind, newest first
	ListBatches(ctx context.Context, input *ListBatchesInput) (*ListBatchesOutput, error)

	// GetBatch returns one published batch
	GetBatch(ctx context.Context, input *GetBatchInput) (*GetBatchOutput, error)
}

// ConvertInput defines the request for converting a file
type ConvertInput struct {
	Kind       convert.Kind
	InputPath  string
	OutputPath string
}

// ConvertOutput defines the response for converting a file
type ConvertOutput struct {
	// Count is the number of records written; 0 for non-array output
	Count int
}

// PublishInput defines the request for publishing a file
type PublishInput struct {
	Kind      convert.Kind
	InputPath string
}

// PublishOutput defines the response for publishing a file
type PublishOutput struct {
	BatchID string
	Key     string
	Count   int
}

// ListBatchesInput defines the request for listing batches
type ListBatchesInput struct {
	Kind  convert.Kind
	Limit int
}

// ListBatchesOutput defines the response for listing batches
type ListBatchesOutput struct {
	BatchIDs []string
}

// GetBatchInput defines the request for getting a batch
type GetBatchInput struct {
	Kind    convert.Kind
	BatchID string
}

// GetBatchOutput defines the response for getting a batch
type GetBatchOutput struct {
	Batch *catalog.Batch
}
