package mocks

import (
	"github.com/KirkDiggler/rpg-retool/internal/errors"
	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
)

func errUnexpectedBatch(b *catalog.Batch) error {
	if b == nil {
		return errors.Internal("mocks: unexpected nil batch")
	}
	return errors.Internalf("mocks: unexpected batch %s/%s with %d records", b.Kind, b.ID, b.Count)
}
