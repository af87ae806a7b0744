// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/rpg-retool/internal/repositories/catalog/mock"
)

// ExpectCatalogPut expects one Put of a batch with the given identity and
// record count. The stored batch is captured into *stored when non-nil.
func ExpectCatalogPut(
	ctx context.Context,
	repo *catalogmock.MockRepository,
	kind, id string,
	count int,
	stored **catalog.Batch,
) *gomock.Call {
	return repo.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.PutInput) (*catalog.PutOutput, error) {
			if input.Batch == nil || input.Batch.Kind != kind || input.Batch.ID != id || input.Batch.Count != count {
				return nil, errUnexpectedBatch(input.Batch)
			}
			if !json.Valid(input.Batch.Records) {
				return nil, errUnexpectedBatch(input.Batch)
			}
			if stored != nil {
				*stored = input.Batch
			}
			return &catalog.PutOutput{Key: catalog.BatchKey(kind, id)}, nil
		})
}
