// Package convert turns 5e.tools data documents into flat records.
//
// Each Kind has a Converter. Converters read an already parsed gjson document
// and return plain structs; ConvertJSON, ConvertPath and ConvertFile add the JSON plumbing
// around them.
package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-retool/internal/abilities"
	"github.com/KirkDiggler/rpg-retool/internal/errors"
)

const (
	outputIndent = "    "

	defaultWorkers = 1
	maxWorkers     = 64
)

// Converter converts one kind of document.
type Converter interface {
	// Convert returns the value to serialize for doc. Structural problems
	// such as a missing top-level array return errors.InvalidArgument.
	Convert(ctx context.Context, doc gjson.Result) (any, error)
}

// Config contains configuration options for converters.
type Config struct {
	// Logger receives diagnostics about skipped content (optional, defaults to slog.Default())
	Logger *slog.Logger
	// Workers bounds how many items convert concurrently (optional, defaults to 1)
	Workers int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("workers", cfg.Workers, 1, maxWorkers, vb)
	return vb.Build()
}

// New returns the converter for kind.
func New(kind Kind, cfg *Config) (Converter, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case KindDummy:
		return &DummyConverter{}, nil
	case KindFeat:
		return &FeatConverter{workers: cfg.Workers, logger: cfg.Logger}, nil
	case KindRace:
		return &RaceConverter{
			workers:   cfg.Workers,
			logger:    cfg.Logger,
			allocator: abilities.New(&abilities.Config{Logger: cfg.Logger}),
		}, nil
	default:
		_, err := ParseKind(kind.String())
		return nil, err
	}
}

// Parse validates and parses a raw JSON document.
func Parse(input []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(input) {
		return gjson.Result{}, errors.InvalidArgument("input is not valid JSON")
	}
	return gjson.ParseBytes(input), nil
}

// ConvertJSON parses input, converts it and serializes the result with
// four-space indentation. Characters such as & and < are written literally.
func ConvertJSON(ctx context.Context, conv Converter, input []byte) ([]byte, error) {
	doc, err := Parse(input)
	if err != nil {
		return nil, err
	}

	out, err := conv.Convert(ctx, doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", outputIndent)
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(err, "failed to marshal output")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ConvertPath reads the document at path and returns the serialized result.
// A missing file is reported as errors.NotFound.
func ConvertPath(ctx context.Context, conv Converter, path string) ([]byte, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "input file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	output, err := ConvertJSON(ctx, conv, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert %s", path)
	}
	return output, nil
}

// ConvertFile converts the document at inputPath, writes the result to
// outputPath and returns the number of records written.
func ConvertFile(ctx context.Context, conv Converter, inputPath, outputPath string) (int, error) {
	output, err := ConvertPath(ctx, conv, inputPath)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil { // #nosec G306 output is meant to be shared
		return 0, errors.Wrapf(err, "failed to write %s", outputPath)
	}
	return RecordCount(output), nil
}

// RecordCount returns the length of a serialized record array, or 0 when the
// output is not an array.
func RecordCount(data []byte) int {
	if !gjson.ParseBytes(data).IsArray() {
		return 0
	}
	return int(gjson.GetBytes(data, "#").Int())
}

// topLevel returns doc[key] or the structural error every converter shares.
func topLevel(doc gjson.Result, key string) (gjson.Result, error) {
	items := doc.Get(key)
	if !doc.IsObject() || !items.IsArray() {
		return gjson.Result{}, errors.InvalidArgumentf("expected %q array in object: { %q: [] }", key, key).
			WithMeta("key", key)
	}
	return items, nil
}

// convertEach runs fn over items on up to workers goroutines and flattens the
// results in input order.
func convertEach[T any](ctx context.Context, workers int, items []gjson.Result, fn func(gjson.Result) []T) ([]T, error) {
	results := make([][]T, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = fn(item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "conversion canceled")
	}

	out := make([]T, 0, len(items))
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}
