package artifact

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

const selectArtifact = `
SELECT army_book_uid, flavor, pdf, created_at, revision, source_service
FROM army_books_pdfs WHERE cache_key = $1`

const upsertArtifact = `
INSERT INTO army_books_pdfs (cache_key, army_book_uid, flavor, pdf, created_at, revision, source_service)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (cache_key) DO UPDATE
SET pdf = EXCLUDED.pdf, created_at = EXCLUDED.created_at,
    revision = EXCLUDED.revision, source_service = EXCLUDED.source_service`

// PostgresConfig holds the configuration for the Postgres artifact store
type PostgresConfig struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *PostgresConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	return nil
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates an artifact store on the army_books_pdfs table
func NewPostgresRepository(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &postgresRepository{db: cfg.DB}, nil
}

var _ Repository = (*postgresRepository)(nil)

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	var (
		a      entities.PdfArtifact
		flavor string
	)
	err := r.db.QueryRowContext(ctx, selectArtifact, input.Key).Scan(
		&a.ArmyBookUID, &flavor, &a.Bytes, &a.CreatedAt, &a.Revision, &a.SourceService)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("artifact %s not found", input.Key)
		}
		return nil, errors.Wrap(err, "failed to query artifact")
	}
	a.Flavor = entities.Flavor(flavor)
	a.CreatedAt = a.CreatedAt.UTC()

	return &GetOutput{Artifact: &a}, nil
}

func (r *postgresRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	a := input.Artifact
	_, err := r.db.ExecContext(ctx, upsertArtifact,
		a.Key(), a.ArmyBookUID, string(a.Flavor), a.Bytes, a.CreatedAt, a.Revision, a.SourceService)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert artifact")
	}

	return &PutOutput{}, nil
}
