package artifact

import (
	"context"
	"strconv"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	redisclient "github.com/KirkDiggler/armybook-api/internal/redis"
)

const (
	// Key pattern: army_book_pdf:{uid}_{flavor}
	keyPrefix = "army_book_pdf:"

	fieldUID       = "army_book_uid"
	fieldFlavor    = "flavor"
	fieldBytes     = "bytes"
	fieldCreatedAt = "created_at"
	fieldRevision  = "revision"
	fieldService   = "source_service"
)

// RedisConfig holds the configuration for the Redis artifact store
type RedisConfig struct {
	Client redisclient.Client
	// TTL expires artifacts nobody has asked for in a while. Zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a Redis hash backed artifact store
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, keyPrefix+input.Key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get artifact from Redis")
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("artifact %s not found", input.Key)
	}

	createdAt, err := strconv.ParseInt(fields[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "artifact %s has a corrupt created_at", input.Key)
	}
	revision, err := strconv.ParseInt(fields[fieldRevision], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "artifact %s has a corrupt revision", input.Key)
	}

	return &GetOutput{
		Artifact: &entities.PdfArtifact{
			ArmyBookUID:   fields[fieldUID],
			Flavor:        entities.Flavor(fields[fieldFlavor]),
			Bytes:         []byte(fields[fieldBytes]),
			CreatedAt:     time.Unix(0, createdAt).UTC(),
			Revision:      revision,
			SourceService: fields[fieldService],
		},
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	a := input.Artifact
	key := keyPrefix + a.Key()

	pipe := r.client.TxPipeline()
	// replace, never merge, with a previous render
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		fieldUID, a.ArmyBookUID,
		fieldFlavor, string(a.Flavor),
		fieldBytes, a.Bytes,
		fieldCreatedAt, strconv.FormatInt(a.CreatedAt.UnixNano(), 10),
		fieldRevision, strconv.FormatInt(a.Revision, 10),
		fieldService, a.SourceService,
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store artifact in Redis")
	}

	return &PutOutput{}, nil
}
