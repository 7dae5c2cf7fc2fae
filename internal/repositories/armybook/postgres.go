package armybook

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/pkg/clock"
)

const uniqueViolation = "23505"

const bookColumns = `uid, user_id, enabled_game_systems, name, hint, background, version_string,
       units, upgrade_packages, special_rules, spells, official, public, modified_at, revision`

const selectBook = `SELECT ` + bookColumns + ` FROM army_books WHERE uid = $1`

const selectPublicByGameSystem = `SELECT ` + bookColumns + `
FROM army_books WHERE public AND $1 = ANY(enabled_game_systems) ORDER BY name, uid`

const selectByOwner = `SELECT ` + bookColumns + `
FROM army_books WHERE user_id = $1 ORDER BY modified_at DESC, uid`

const deleteBook = `DELETE FROM army_books WHERE uid = $1 AND user_id = $2`

const insertBook = `
INSERT INTO army_books (uid, user_id, enabled_game_systems, name, hint, background, version_string,
                        units, upgrade_packages, special_rules, spells, official, public, modified_at, revision)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const updateBook = `
UPDATE army_books
SET units = $3, upgrade_packages = $4, special_rules = $5,
    name = $6, hint = $7, background = $8, version_string = $9, official = $10, public = $11,
    modified_at = $12, revision = revision + 1
WHERE uid = $1 AND user_id = $2 AND revision = $13`

// PostgresConfig holds the configuration for the Postgres repository
type PostgresConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *PostgresConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type postgresRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewPostgresRepository creates a new Postgres repository for army books
func NewPostgresRepository(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &postgresRepository{
		db:    cfg.DB,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*postgresRepository)(nil)

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UID == "" {
		return nil, errors.InvalidArgument("uid " + errUIDEmpty)
	}

	book, err := r.load(ctx, input.UID)
	if err != nil {
		return nil, err
	}
	if !book.VisibleTo(input.RequesterID) {
		return nil, notFound(input.UID)
	}

	return &GetOutput{ArmyBook: book}, nil
}

func (r *postgresRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.ArmyBook); err != nil {
		return nil, err
	}

	book := input.ArmyBook.Clone()
	book.Revision = 0
	stamp(book, r.clock.Now())

	content, err := encodeContent(book)
	if err != nil {
		return nil, err
	}
	spells, err := json.Marshal(nonNil(book.Spells))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spells")
	}

	_, err = r.db.ExecContext(ctx, insertBook,
		book.UID, book.UserID, pq.Array(toInt64s(book.EnabledGameSystems)),
		book.Name, book.Hint, book.Background, book.VersionString,
		content.units, content.packages, content.rules, spells,
		book.Official, book.Public, book.ModifiedAt, book.Revision)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, errors.AlreadyExistsf("army book %s already exists", book.UID)
		}
		return nil, errors.Wrap(err, "failed to insert army book")
	}

	return &CreateOutput{ArmyBook: book}, nil
}

func (r *postgresRepository) SaveUnits(ctx context.Context, input SaveUnitsInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setUnits(input.Units))
}

func (r *postgresRepository) SaveUpgradePackages(ctx context.Context, input SaveUpgradePackagesInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setUpgradePackages(input.UpgradePackages))
}

func (r *postgresRepository) SaveSpecialRules(ctx context.Context, input SaveSpecialRulesInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setSpecialRules(input.SpecialRules))
}

func (r *postgresRepository) SaveCosts(ctx context.Context, input SaveCostsInput) (*SaveOutput, error) {
	return r.save(ctx, input.UID, input.RequesterID, setCosts(input.Units, input.UpgradePackages))
}

func (r *postgresRepository) UpdateMetadata(ctx context.Context, input UpdateMetadataInput) (*SaveOutput, error) {
	if err := validateMetadata(input.Metadata); err != nil {
		return nil, err
	}
	return r.save(ctx, input.UID, input.RequesterID, setMetadata(input.Metadata))
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) error {
	if err := validateKey(input.UID, input.RequesterID); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, deleteBook, input.UID, input.RequesterID)
	if err != nil {
		return errors.Wrap(err, "failed to delete army book")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read delete result")
	}
	if n == 1 {
		return nil
	}

	// nothing deleted: tell a missing book from someone else's
	book, err := r.load(ctx, input.UID)
	if err != nil {
		return err
	}
	if !book.VisibleTo(input.RequesterID) {
		return notFound(input.UID)
	}
	return notOwner(input.UID)
}

func (r *postgresRepository) ListPublic(ctx context.Context, input ListPublicInput) (*ListOutput, error) {
	books, err := r.query(ctx, selectPublicByGameSystem, input.GameSystemID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{ArmyBooks: books}, nil
}

func (r *postgresRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user_id " + errRequesterEmpty)
	}
	books, err := r.query(ctx, selectByOwner, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{ArmyBooks: books}, nil
}

// save applies the mutation and writes it back in a single statement guarded
// by the revision that was read
func (r *postgresRepository) save(ctx context.Context, uid, requesterID string, mutate mutation) (*SaveOutput, error) {
	if err := validateKey(uid, requesterID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxWatchRetries; attempt++ {
		book, err := r.load(ctx, uid)
		if err != nil {
			return nil, err
		}
		if !book.OwnedBy(requesterID) {
			if !book.VisibleTo(requesterID) {
				return nil, notFound(uid)
			}
			return nil, notOwner(uid)
		}

		readRevision := book.Revision
		mutate(book)
		stamp(book, r.clock.Now())

		content, err := encodeContent(book)
		if err != nil {
			return nil, err
		}

		res, err := r.db.ExecContext(ctx, updateBook,
			uid, requesterID, content.units, content.packages, content.rules,
			book.Name, book.Hint, book.Background, book.VersionString, book.Official, book.Public,
			book.ModifiedAt, readRevision)
		if err != nil {
			return nil, errors.Wrap(err, "failed to update army book")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read update result")
		}
		if n == 1 {
			return &SaveOutput{ArmyBook: book}, nil
		}
	}

	return nil, errors.Abortedf("army book %s was modified concurrently", uid)
}

func (r *postgresRepository) load(ctx context.Context, uid string) (*entities.ArmyBook, error) {
	book, err := scanBook(r.db.QueryRowContext(ctx, selectBook, uid))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, notFound(uid)
		}
		return nil, errors.Wrap(err, "failed to query army book")
	}
	return book, nil
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...any) ([]*entities.ArmyBook, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list army books")
	}
	defer func() {
		_ = rows.Close() // nolint:errcheck // rows.Err is checked below
	}()

	books := []*entities.ArmyBook{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan army book")
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list army books")
	}
	return books, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*entities.ArmyBook, error) {
	var (
		book                           entities.ArmyBook
		systems                        []int64
		units, packages, rules, spells []byte
	)

	err := row.Scan(
		&book.UID, &book.UserID, pq.Array(&systems), &book.Name, &book.Hint,
		&book.Background, &book.VersionString, &units, &packages, &rules, &spells,
		&book.Official, &book.Public, &book.ModifiedAt, &book.Revision)
	if err != nil {
		return nil, err
	}

	book.EnabledGameSystems = fromInt64s(systems)
	book.ModifiedAt = book.ModifiedAt.UTC()
	if err := decodeJSON(units, &book.Units); err != nil {
		return nil, err
	}
	if err := decodeJSON(packages, &book.UpgradePackages); err != nil {
		return nil, err
	}
	if err := decodeJSON(rules, &book.SpecialRules); err != nil {
		return nil, err
	}
	if err := decodeJSON(spells, &book.Spells); err != nil {
		return nil, err
	}
	book.FillDefaults()

	return &book, nil
}

type encodedContent struct {
	units, packages, rules []byte
}

func encodeContent(book *entities.ArmyBook) (*encodedContent, error) {
	var (
		out encodedContent
		err error
	)
	if out.units, err = json.Marshal(nonNil(book.Units)); err != nil {
		return nil, errors.Wrap(err, "failed to marshal units")
	}
	if out.packages, err = json.Marshal(nonNil(book.UpgradePackages)); err != nil {
		return nil, errors.Wrap(err, "failed to marshal upgrade packages")
	}
	if out.rules, err = json.Marshal(nonNil(book.SpecialRules)); err != nil {
		return nil, errors.Wrap(err, "failed to marshal special rules")
	}
	return &out, nil
}

func decodeJSON(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "failed to unmarshal army book column")
	}
	return nil
}

// nonNil keeps NOT NULL JSONB columns as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func fromInt64s(in []int64) []int {
	if in == nil {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
