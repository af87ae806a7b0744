package conversion

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-retool/internal/convert"
	"github.com/KirkDiggler/rpg-retool/internal/errors"
	"github.com/KirkDiggler/rpg-retool/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-retool/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-retool/internal/repositories/catalog"
)

// Config holds the dependencies for the conversion service
type Config struct {
	// Catalog stores published batches (optional, Publish and ListBatches fail without it)
	Catalog catalog.Repository
	// IDGen names published batches (optional, defaults to UUIDs)
	IDGen idgen.Generator
	// Clock stamps published batches (optional, defaults to the system clock)
	Clock clock.Clock
	// Logger is passed on to the converters (optional, defaults to slog.Default())
	Logger *slog.Logger
	// Workers bounds per-document concurrency (optional, defaults to 1)
	Workers int
}

// Validate validates the Config and sets defaults if not provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.IDGen == nil {
		c.IDGen = idgen.NewUUID("")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}

	convCfg := &convert.Config{Logger: c.Logger, Workers: c.Workers}
	if err := convCfg.Validate(); err != nil {
		return err
	}
	c.Logger = convCfg.Logger
	c.Workers = convCfg.Workers
	return nil
}

// Orchestrator implements Service
type Orchestrator struct {
	catalog catalog.Repository
	idGen   idgen.Generator
	clock   clock.Clock
	logger  *slog.Logger
	workers int
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// New creates a conversion service
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		catalog: cfg.Catalog,
		idGen:   cfg.IDGen,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
		workers: cfg.Workers,
	}, nil
}

// Convert converts a file on disk
func (o *Orchestrator) Convert(ctx context.Context, input *ConvertInput) (*ConvertOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("input", input.InputPath, vb)
	errors.ValidateRequired("output", input.OutputPath, vb)
	errors.ValidateEnum("kind", input.Kind.String(), convert.Kinds(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	conv, err := o.converter(input.Kind)
	if err != nil {
		return nil, err
	}

	count, err := convert.ConvertFile(ctx, conv, input.InputPath, input.OutputPath)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Converted document",
		"kind", input.Kind.String(),
		"input", input.InputPath,
		"output", input.OutputPath,
		"records", count)

	return &ConvertOutput{Count: count}, nil
}

// Publish converts a file and stores the batch in the catalog
func (o *Orchestrator) Publish(ctx context.Context, input *PublishInput) (*PublishOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.catalog == nil {
		return nil, errors.FailedPrecondition("catalog is not configured")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("input", input.InputPath, vb)
	errors.ValidateEnum("kind", input.Kind.String(), convert.Kinds(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	conv, err := o.converter(input.Kind)
	if err != nil {
		return nil, err
	}

	data, err := convert.ConvertPath(ctx, conv, input.InputPath)
	if err != nil {
		return nil, err
	}

	batch := &catalog.Batch{
		ID:        o.idGen.Generate(),
		Kind:      input.Kind.String(),
		Source:    input.InputPath,
		CreatedAt: o.clock.Now(),
		Count:     convert.RecordCount(data),
		Records:   data,
	}

	out, err := o.catalog.Put(ctx, catalog.PutInput{Batch: batch})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to publish %s batch", input.Kind)
	}

	o.logger.Info("Published batch",
		"kind", batch.Kind,
		"batch_id", batch.ID,
		"key", out.Key,
		"records", batch.Count)

	return &PublishOutput{BatchID: batch.ID, Key: out.Key, Count: batch.Count}, nil
}

// ListBatches lists published batch IDs
func (o *Orchestrator) ListBatches(ctx context.Context, input *ListBatchesInput) (*ListBatchesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.catalog == nil {
		return nil, errors.FailedPrecondition("catalog is not configured")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", input.Kind.String(), convert.Kinds(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.catalog.ListIDs(ctx, catalog.ListIDsInput{Kind: input.Kind.String(), Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s batches", input.Kind)
	}

	return &ListBatchesOutput{BatchIDs: out.IDs}, nil
}

// GetBatch reads one published batch
func (o *Orchestrator) GetBatch(ctx context.Context, input *GetBatchInput) (*GetBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.catalog == nil {
		return nil, errors.FailedPrecondition("catalog is not configured")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", input.Kind.String(), convert.Kinds(), vb)
	errors.ValidateRequired("id", input.BatchID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.catalog.Get(ctx, catalog.GetInput{Kind: input.Kind.String(), ID: input.BatchID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s batch %s", input.Kind, input.BatchID)
	}

	return &GetBatchOutput{Batch: out.Batch}, nil
}

func (o *Orchestrator) converter(kind convert.Kind) (convert.Converter, error) {
	return convert.New(kind, &convert.Config{Logger: o.logger, Workers: o.workers})
}
