package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// ClientRepository implements port.ClientRepository using pgxpool.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a new repository instance.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		var c domain.Client
		err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
		return c, err
	})
}

func (r *ClientRepository) Get(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM clients WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO clients (name, created_at) VALUES ($1, now()) RETURNING id, created_at`,
		c.Name).Scan(&c.ID, &c.CreatedAt)
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET name = $1 WHERE id = $2`, c.Name, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes the client. Contacts, folders, templates and campaigns go
// with it via ON DELETE CASCADE.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

var _ port.ClientRepository = (*ClientRepository)(nil)
