package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-retool/internal/redis"
)

const (
	keyPrefix = "catalog:"

	// Error messages
	errBatchNil   = "batch cannot be nil"
	errKindEmpty  = "kind cannot be empty"
	errBatchEmpty = "batch ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Batch == nil {
		return nil, errors.InvalidArgument(errBatchNil)
	}
	if err := validateRef(input.Batch.Kind, input.Batch.ID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Batch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal batch")
	}

	key := BatchKey(input.Batch.Kind, input.Batch.ID)

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, IndexKey(input.Batch.Kind), redis.Z{
		Score:  float64(input.Batch.CreatedAt.UnixNano()),
		Member: input.Batch.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store batch %s", input.Batch.ID)
	}

	return &PutOutput{Key: key}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateRef(input.Kind, input.ID); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, BatchKey(input.Kind, input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s batch %s not found", input.Kind, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get batch %s", input.ID)
	}

	var batch Batch
	if err := json.Unmarshal([]byte(result), &batch); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal batch")
	}

	return &GetOutput{Batch: &batch}, nil
}

func (r *redisRepository) ListIDs(ctx context.Context, input ListIDsInput) (*ListIDsOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	stop := int64(input.Limit) - 1
	ids, err := r.client.ZRevRange(ctx, IndexKey(input.Kind), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s batches", input.Kind)
	}

	return &ListIDsOutput{IDs: ids}, nil
}

func validateRef(kind, id string) error {
	vb := errors.NewValidationBuilder()
	if kind == "" {
		vb.Field("kind", errKindEmpty)
	}
	if id == "" {
		vb.Field("id", errBatchEmpty)
	}
	return vb.Build()
}

// BatchKey returns the Redis key holding a batch
// Exposed for testing purposes
func BatchKey(kind, id string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, kind, id)
}

// IndexKey returns the sorted set indexing batches of a kind
func IndexKey(kind string) string {
	return fmt.Sprintf("%s%s:index", keyPrefix, kind)
}
