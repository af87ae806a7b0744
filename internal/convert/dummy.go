package convert

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// DummyConverter returns the input document unchanged.
type DummyConverter struct{}

// Convert implements Converter.
func (c *DummyConverter) Convert(_ context.Context, doc gjson.Result) (any, error) {
	return json.RawMessage(doc.Raw), nil
}
