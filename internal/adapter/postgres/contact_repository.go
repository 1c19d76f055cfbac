package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// ContactRepository implements port.ContactRepository using pgxpool.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a new repository instance.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// ListSubscribed returns the client's contacts with unsubscribed ones
// filtered out at the query, newest first. Audience computation never sees
// an unsubscribed contact.
func (r *ContactRepository) ListSubscribed(ctx context.Context, clientID int64) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, client_id, email, first_name, last_name, tags, unsubscribed, created_at
        FROM contacts
        WHERE client_id = $1 AND unsubscribed = false
        ORDER BY created_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var c domain.Contact
		err := row.Scan(&c.ID, &c.ClientID, &c.Email, &c.FirstName, &c.LastName,
			&c.Tags, &c.Unsubscribed, &c.CreatedAt)
		return c, err
	})
}

var _ port.ContactRepository = (*ContactRepository)(nil)
