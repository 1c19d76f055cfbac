package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// FolderRepository implements port.FolderRepository using pgxpool.
type FolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository returns a new repository instance.
func NewFolderRepository(pool *pgxpool.Pool) *FolderRepository {
	return &FolderRepository{pool: pool}
}

func (r *FolderRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Folder, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, client_id, name, version, created_at
        FROM folders WHERE client_id = $1 ORDER BY name`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanFolder)
}

func (r *FolderRepository) Get(ctx context.Context, clientID, id int64) (*domain.Folder, error) {
	var f domain.Folder
	err := r.pool.QueryRow(ctx, `
        SELECT id, client_id, name, version, created_at
        FROM folders WHERE client_id = $1 AND id = $2`, clientID, id).
		Scan(&f.ID, &f.ClientID, &f.Name, &f.Version, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByName matches case-sensitively and returns nil, nil on no match.
func (r *FolderRepository) FindByName(ctx context.Context, clientID int64, name string) (*domain.Folder, error) {
	var f domain.Folder
	err := r.pool.QueryRow(ctx, `
        SELECT id, client_id, name, version, created_at
        FROM folders WHERE client_id = $1 AND name = $2`, clientID, name).
		Scan(&f.ID, &f.ClientID, &f.Name, &f.Version, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FolderRepository) Create(ctx context.Context, f *domain.Folder) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO folders (client_id, name, version, created_at)
        VALUES ($1, $2, 1, now())
        RETURNING id, version, created_at`, f.ClientID, f.Name).
		Scan(&f.ID, &f.Version, &f.CreatedAt)
	if isUniqueViolation(err) {
		return port.ErrDuplicateName
	}
	return err
}

// Rename updates the name iff the stored version matches, bumping it. A
// zero-row update is disambiguated into ErrNotFound or ErrVersionConflict.
func (r *FolderRepository) Rename(ctx context.Context, clientID, id int64, newName string, version int64) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE folders SET name = $1, version = version + 1
        WHERE client_id = $2 AND id = $3 AND version = $4`,
		newName, clientID, id, version)
	if isUniqueViolation(err) {
		return port.ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err = r.Get(ctx, clientID, id); err != nil {
			return err
		}
		return port.ErrVersionConflict
	}
	return nil
}

// DeleteAndUnfile clears the folder reference on every template filed in
// the folder and removes the folder row in one transaction, so no template
// can be left pointing at a deleted folder.
func (r *FolderRepository) DeleteAndUnfile(ctx context.Context, clientID, id int64) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	unfiled, err := tx.Exec(ctx, `
        UPDATE templates SET folder_id = NULL
        WHERE client_id = $1 AND folder_id = $2`, clientID, id)
	if err != nil {
		return 0, err
	}
	deleted, err := tx.Exec(ctx, `
        DELETE FROM folders WHERE client_id = $1 AND id = $2`, clientID, id)
	if err != nil {
		return 0, err
	}
	if deleted.RowsAffected() == 0 {
		return 0, port.ErrNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return unfiled.RowsAffected(), nil
}

func scanFolder(row pgx.CollectableRow) (domain.Folder, error) {
	var f domain.Folder
	err := row.Scan(&f.ID, &f.ClientID, &f.Name, &f.Version, &f.CreatedAt)
	return f, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var _ port.FolderRepository = (*FolderRepository)(nil)
