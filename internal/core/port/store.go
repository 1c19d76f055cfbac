package port

import (
	"context"

	"maildeck/internal/core/domain"
)

// ClientRepository persists tenant records. Deleting a client cascades to
// everything it owns via foreign keys.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ContactRepository reads a client's contact collection. ListSubscribed
// excludes unsubscribed contacts, so everything downstream of it operates
// on the already-filtered audience. Ordered newest first.
type ContactRepository interface {
	ListSubscribed(ctx context.Context, clientID int64) ([]domain.Contact, error)
}

// FolderRepository persists template folders. Rename and DeleteAndUnfile
// must be scoped by client id; Rename compares-and-swaps on version.
type FolderRepository interface {
	ListByClient(ctx context.Context, clientID int64) ([]domain.Folder, error)
	Get(ctx context.Context, clientID, id int64) (*domain.Folder, error)
	// FindByName returns nil, nil when no folder carries the name.
	FindByName(ctx context.Context, clientID int64, name string) (*domain.Folder, error)
	Create(ctx context.Context, f *domain.Folder) error
	// Rename updates the folder name iff the stored version equals version,
	// bumping it by one. Returns ErrVersionConflict on mismatch.
	Rename(ctx context.Context, clientID, id int64, newName string, version int64) error
	// DeleteAndUnfile atomically clears the folder reference on every
	// template pointing at the folder and removes the folder row, in one
	// transaction. It returns the number of templates reassigned to
	// Unfiled. No template may be left referencing a deleted folder.
	DeleteAndUnfile(ctx context.Context, clientID, id int64) (int64, error)
}

// TemplateFilter narrows a template listing. Unfiled selects templates with
// no folder reference; FolderID selects one folder. Both zero means all.
type TemplateFilter struct {
	FolderID *int64
	Unfiled  bool
}

// TemplateCounts aggregates template counts for the folder sidebar: one
// count per folder, the Unfiled bucket, and the client total.
type TemplateCounts struct {
	ByFolder map[int64]int
	Unfiled  int
	Total    int
}

// TemplateRepository persists email designs.
type TemplateRepository interface {
	ListByClient(ctx context.Context, clientID int64, filter TemplateFilter) ([]domain.Template, error)
	Get(ctx context.Context, clientID, id int64) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) error
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, clientID, id int64) error
	Counts(ctx context.Context, clientID int64) (*TemplateCounts, error)
}

// CampaignRepository persists campaigns. Listings are ordered newest first.
type CampaignRepository interface {
	ListByClient(ctx context.Context, clientID int64, status *domain.CampaignStatus) ([]domain.Campaign, error)
	Get(ctx context.Context, clientID, id int64) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	// UpdateDraft rewrites the editable fields (name, template reference,
	// filter tags) iff the stored version equals c.Version, bumping it.
	// Returns ErrVersionConflict on mismatch.
	UpdateDraft(ctx context.Context, c *domain.Campaign) error
	UpdateStatus(ctx context.Context, clientID, id int64, status domain.CampaignStatus) error
	Delete(ctx context.Context, clientID, id int64) error
}
