package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// TemplateRepository implements port.TemplateRepository using pgxpool.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository returns a new repository instance.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

func (r *TemplateRepository) ListByClient(ctx context.Context, clientID int64, filter port.TemplateFilter) ([]domain.Template, error) {
	query := `
        SELECT id, client_id, folder_id, name, subject, preview_text, body, created_at, updated_at
        FROM templates WHERE client_id = $1`
	args := []any{clientID}
	switch {
	case filter.Unfiled:
		query += ` AND folder_id IS NULL`
	case filter.FolderID != nil:
		query += ` AND folder_id = $2`
		args = append(args, *filter.FolderID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTemplate)
}

func (r *TemplateRepository) Get(ctx context.Context, clientID, id int64) (*domain.Template, error) {
	var t domain.Template
	err := r.pool.QueryRow(ctx, `
        SELECT id, client_id, folder_id, name, subject, preview_text, body, created_at, updated_at
        FROM templates WHERE client_id = $1 AND id = $2`, clientID, id).
		Scan(&t.ID, &t.ClientID, &t.FolderID, &t.Name, &t.Subject, &t.PreviewText,
			&t.Body, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) Create(ctx context.Context, t *domain.Template) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO templates (client_id, folder_id, name, subject, preview_text, body, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, now(), now())
        RETURNING id, created_at, updated_at`,
		t.ClientID, t.FolderID, t.Name, t.Subject, t.PreviewText, t.Body).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TemplateRepository) Update(ctx context.Context, t *domain.Template) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE templates
        SET folder_id = $1, name = $2, subject = $3, preview_text = $4, body = $5, updated_at = now()
        WHERE client_id = $6 AND id = $7`,
		t.FolderID, t.Name, t.Subject, t.PreviewText, t.Body, t.ClientID, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM templates WHERE client_id = $1 AND id = $2`, clientID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Counts aggregates template counts per folder in a single pass; a NULL
// folder_id group is the Unfiled bucket.
func (r *TemplateRepository) Counts(ctx context.Context, clientID int64) (*port.TemplateCounts, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT folder_id, COUNT(*)
        FROM templates WHERE client_id = $1
        GROUP BY folder_id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := &port.TemplateCounts{ByFolder: make(map[int64]int)}
	for rows.Next() {
		var folderID *int64
		var n int
		if err = rows.Scan(&folderID, &n); err != nil {
			return nil, err
		}
		if folderID == nil {
			counts.Unfiled = n
		} else {
			counts.ByFolder[*folderID] = n
		}
		counts.Total += n
	}
	return counts, rows.Err()
}

func scanTemplate(row pgx.CollectableRow) (domain.Template, error) {
	var t domain.Template
	err := row.Scan(&t.ID, &t.ClientID, &t.FolderID, &t.Name, &t.Subject,
		&t.PreviewText, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

var _ port.TemplateRepository = (*TemplateRepository)(nil)
