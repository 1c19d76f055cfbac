package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) ListByClient(ctx context.Context, clientID int64, status *domain.CampaignStatus) ([]domain.Campaign, error) {
	query := `
        SELECT id, client_id, template_id, name, filter_tags, status, recipient_count,
               scheduled_at, version, created_at, updated_at
        FROM campaigns WHERE client_id = $1`
	args := []any{clientID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

func (r *CampaignRepository) Get(ctx context.Context, clientID, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `
        SELECT id, client_id, template_id, name, filter_tags, status, recipient_count,
               scheduled_at, version, created_at, updated_at
        FROM campaigns WHERE client_id = $1 AND id = $2`, clientID, id).
		Scan(&c.ID, &c.ClientID, &c.TemplateID, &c.Name, &c.FilterTags, &c.Status,
			&c.RecipientCount, &c.ScheduledAt, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	if c.FilterTags == nil {
		c.FilterTags = []string{}
	}
	return r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (client_id, template_id, name, filter_tags, status,
                               recipient_count, scheduled_at, version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, 1, now(), now())
        RETURNING id, version, created_at, updated_at`,
		c.ClientID, c.TemplateID, c.Name, c.FilterTags, string(c.Status),
		c.RecipientCount, c.ScheduledAt).
		Scan(&c.ID, &c.Version, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateDraft rewrites the editable fields iff the stored version matches,
// bumping it. A zero-row update is disambiguated into ErrNotFound or
// ErrVersionConflict. The recipient_count snapshot is deliberately not
// touched.
func (r *CampaignRepository) UpdateDraft(ctx context.Context, c *domain.Campaign) error {
	if c.FilterTags == nil {
		c.FilterTags = []string{}
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET name = $1, template_id = $2, filter_tags = $3, version = version + 1, updated_at = now()
        WHERE client_id = $4 AND id = $5 AND version = $6`,
		c.Name, c.TemplateID, c.FilterTags, c.ClientID, c.ID, c.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err = r.Get(ctx, c.ClientID, c.ID); err != nil {
			return err
		}
		return port.ErrVersionConflict
	}
	return nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, clientID, id int64, status domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = $1, updated_at = now()
        WHERE client_id = $2 AND id = $3`, string(status), clientID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes the campaign record only; contacts and templates are
// untouched.
func (r *CampaignRepository) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE client_id = $1 AND id = $2`, clientID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ClientID, &c.TemplateID, &c.Name, &c.FilterTags,
		&c.Status, &c.RecipientCount, &c.ScheduledAt, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)
