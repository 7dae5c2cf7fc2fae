package armybook

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"slices"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/armybook-api/internal/redis"
)

const (
	// Key pattern: army_book:{uid}
	bookKeyPrefix = "army_book:"
	// Key pattern: army_books:user:{user_id} -> set of uids
	userIndexPrefix = "army_books:user:"
	// Key pattern: army_books:game_system:{id} -> set of uids
	gameSystemIndexPrefix = "army_books:game_system:"

	maxWatchRetries = 3
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for army books
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UID == "" {
		return nil, errors.InvalidArgument("uid " + errUIDEmpty)
	}

	book, err := r.load(ctx, r.client, input.UID)
	if err != nil {
		return nil, err
	}
	if !book.VisibleTo(input.RequesterID) {
		return nil, notFound(input.UID)
	}

	return &GetOutput{ArmyBook: book}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.ArmyBook); err != nil {
		return nil, err
	}

	book := input.ArmyBook.Clone()
	book.Revision = 0
	stamp(book, r.clock.Now())

	data, err := json.Marshal(book)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal army book")
	}

	created, err := r.client.SetNX(ctx, r.bookKey(book.UID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store army book in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("army book %s already exists", book.UID)
	}

	// the book itself is stored; the indexes only serve listings
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range r.indexKeys(book) {
			pipe.SAdd(ctx, key, book.UID)
		}
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to index army book",
			"army_book_uid", book.UID,
			"user_id", book.UserID,
			"error", err)
	}

	return &CreateOutput{ArmyBook: book}, nil
}

func (r *redisRepository) SaveUnits(ctx context.Context, input SaveUnitsInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setUnits(input.Units))
}

func (r *redisRepository) SaveUpgradePackages(ctx context.Context, input SaveUpgradePackagesInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setUpgradePackages(input.UpgradePackages))
}

func (r *redisRepository) SaveSpecialRules(ctx context.Context, input SaveSpecialRulesInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setSpecialRules(input.SpecialRules))
}

func (r *redisRepository) SaveCosts(ctx context.Context, input SaveCostsInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setCosts(input.Units, input.UpgradePackages))
}

func (r *redisRepository) UpdateMetadata(ctx context.Context, input UpdateMetadataInput) (*SaveOutput, error) {
	if err := validateMetadata(input.Metadata); err != nil {
		return nil, err
	}
	return r.save(ctx, input.UID, input.RequesterID, setMetadata(input.Metadata))
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if err := validateKey(input.UID, input.RequesterID); err != nil {
		return err
	}

	var deleted *entities.ArmyBook
	err := r.watch(ctx, input.UID, func(tx *redis.Tx) error {
		book, err := r.loadOwned(ctx, tx, input.UID, input.RequesterID)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, r.bookKey(input.UID))
			return nil
		})
		if err != nil {
			return err
		}
		deleted = book
		return nil
	})
	if err != nil {
		return err
	}

	// index keys may live in other cluster slots, so they are cleaned up
	// outside the transaction; listings skip entries whose book is gone
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range r.indexKeys(deleted) {
			pipe.SRem(ctx, key, deleted.UID)
		}
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to unindex deleted army book",
			"army_book_uid", deleted.UID,
			"error", err)
	}

	return nil
}

func (r *redisRepository) ListPublic(ctx context.Context, input ListPublicInput) (*ListOutput, error) {
	uids, err := r.client.SMembers(ctx, r.gameSystemIndexKey(input.GameSystemID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read game system index from Redis")
	}

	books, err := r.loadMany(ctx, uids)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.ArmyBook, 0, len(books))
	for _, book := range books {
		if book.Public && slices.Contains(book.EnabledGameSystems, input.GameSystemID) {
			out = append(out, book)
		}
	}
	sortByName(out)

	return &ListOutput{ArmyBooks: out}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user_id " + errRequesterEmpty)
	}

	uids, err := r.client.SMembers(ctx, r.userIndexKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read owner index from Redis")
	}

	books, err := r.loadMany(ctx, uids)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.ArmyBook, 0, len(books))
	for _, book := range books {
		if book.OwnedBy(input.UserID) {
			out = append(out, book)
		}
	}
	sortByModified(out)

	return &ListOutput{ArmyBooks: out}, nil
}

// save runs an optimistic read-modify-write on the book key
func (r *redisRepository) save(ctx context.Context, uid, requesterID string, mutate mutation) (*SaveOutput, error) {
	if err := validateKey(uid, requesterID); err != nil {
		return nil, err
	}

	var saved *entities.ArmyBook
	err := r.watch(ctx, uid, func(tx *redis.Tx) error {
		book, err := r.loadOwned(ctx, tx, uid, requesterID)
		if err != nil {
			return err
		}

		mutate(book)
		stamp(book, r.clock.Now())

		data, err := json.Marshal(book)
		if err != nil {
			return errors.Wrap(err, "failed to marshal army book")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.bookKey(uid), data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		saved = book
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SaveOutput{ArmyBook: saved}, nil
}

// watch runs txf under WATCH on the book key, retrying lost races
func (r *redisRepository) watch(ctx context.Context, uid string, txf func(tx *redis.Tx) error) error {
	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		err := r.client.Watch(ctx, txf, r.bookKey(uid))
		if err == nil {
			return nil
		}
		if stderrors.Is(err, redis.TxFailedErr) {
			continue
		}
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return err
		}
		return errors.Wrap(err, "failed to write army book in Redis")
	}

	return errors.Abortedf("army book %s was modified concurrently", uid)
}

// loadOwned loads the book and checks the requester owns it. Books the
// requester cannot even see are reported as not found.
func (r *redisRepository) loadOwned(ctx context.Context, cmd redis.Cmdable, uid, requesterID string) (*entities.ArmyBook, error) {
	book, err := r.load(ctx, cmd, uid)
	if err != nil {
		return nil, err
	}
	if !book.OwnedBy(requesterID) {
		if !book.VisibleTo(requesterID) {
			return nil, notFound(uid)
		}
		return nil, notOwner(uid)
	}
	return book, nil
}

// load reads and decodes the book through cmd, which may be a transaction
func (r *redisRepository) load(ctx context.Context, cmd redis.Cmdable, uid string) (*entities.ArmyBook, error) {
	data, err := cmd.Get(ctx, r.bookKey(uid)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, notFound(uid)
		}
		return nil, errors.Wrap(err, "failed to get army book from Redis")
	}

	return decodeBook(data)
}

// loadMany reads books in one pipeline. Index entries whose book is gone are
// skipped.
func (r *redisRepository) loadMany(ctx context.Context, uids []string) ([]*entities.ArmyBook, error) {
	if len(uids) == 0 {
		return []*entities.ArmyBook{}, nil
	}

	cmds := make([]*redis.StringCmd, len(uids))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, uid := range uids {
			cmds[i] = pipe.Get(ctx, r.bookKey(uid))
		}
		return nil
	})
	if err != nil && !stderrors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "failed to list army books from Redis")
	}

	books := make([]*entities.ArmyBook, 0, len(uids))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if stderrors.Is(err, redis.Nil) {
			slog.DebugContext(ctx, "skipping stale index entry", "army_book_uid", uids[i])
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to get army book from Redis")
		}
		book, err := decodeBook(data)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}

func decodeBook(data []byte) (*entities.ArmyBook, error) {
	var book entities.ArmyBook
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal army book")
	}
	book.FillDefaults()
	return &book, nil
}

func (r *redisRepository) bookKey(uid string) string {
	return bookKeyPrefix + uid
}

func (r *redisRepository) userIndexKey(userID string) string {
	return userIndexPrefix + userID
}

func (r *redisRepository) gameSystemIndexKey(id int) string {
	return gameSystemIndexPrefix + strconv.Itoa(id)
}

// indexKeys lists every set the book is a member of
func (r *redisRepository) indexKeys(book *entities.ArmyBook) []string {
	keys := []string{r.userIndexKey(book.UserID)}
	for _, id := range book.EnabledGameSystems {
		keys = append(keys, r.gameSystemIndexKey(id))
	}
	return keys
}
