package port

import (
	"context"
	"time"

	"maildeck/internal/core/domain"
)

// SegmentPreview is the live recipient count shown while a user edits tag
// selection. ContactIDs is membership only; no ordering is guaranteed.
type SegmentPreview struct {
	FilterTags     []string `json:"filter_tags"`
	RecipientCount int      `json:"recipient_count"`
	ContactIDs     []int64  `json:"contact_ids"`
}

// AudienceUseCase exposes the client's contact collection, its tag universe
// and tag segmentation.
type AudienceUseCase interface {
	Contacts(ctx context.Context, clientID int64) ([]domain.Contact, error)
	Tags(ctx context.Context, clientID int64) ([]domain.TagCount, error)
	Preview(ctx context.Context, clientID int64, filterTags []string) (*SegmentPreview, error)
}

// FolderWithCount is a folder plus the number of templates filed in it.
type FolderWithCount struct {
	domain.Folder
	Templates int
}

// FolderOverview is the folder sidebar: all folders with counts, the
// Unfiled count and the client's total template count.
type FolderOverview struct {
	Folders []FolderWithCount
	Unfiled int
	Total   int
}

// TemplateInput carries the writable template fields.
type TemplateInput struct {
	Name        string
	Subject     string
	PreviewText string
	Body        string
	FolderID    *int64
}

// LibraryUseCase manages template folders and the templates within them.
type LibraryUseCase interface {
	FolderOverview(ctx context.Context, clientID int64) (*FolderOverview, error)
	CreateFolder(ctx context.Context, clientID int64, name string) (*domain.Folder, error)
	RenameFolder(ctx context.Context, clientID, folderID int64, newName string, version int64) (*domain.Folder, error)
	// DeleteFolder reassigns every referencing template to Unfiled before
	// removing the folder; it returns the reassigned count for the UI
	// warning.
	DeleteFolder(ctx context.Context, clientID, folderID int64) (int64, error)

	Templates(ctx context.Context, clientID int64, filter TemplateFilter) ([]domain.Template, error)
	Template(ctx context.Context, clientID, id int64) (*domain.Template, error)
	CreateTemplate(ctx context.Context, clientID int64, in TemplateInput) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, clientID, id int64, in TemplateInput) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, clientID, id int64) error
}

// CreateCampaignInput carries everything needed to create a campaign. A
// non-nil ScheduledAt creates the campaign directly in scheduled status.
type CreateCampaignInput struct {
	Name        string
	TemplateID  *int64
	FilterTags  []string
	ScheduledAt *time.Time
}

// UpdateCampaignInput rewrites a draft's editable fields. Version must
// match the stored version.
type UpdateCampaignInput struct {
	Name       string
	TemplateID *int64
	FilterTags []string
	Version    int64
}

// CampaignUseCase manages the campaign lifecycle. Creation computes the
// recipient snapshot via segmentation; edits are draft-only; deletion is
// allowed from any status.
type CampaignUseCase interface {
	Campaigns(ctx context.Context, clientID int64, status *domain.CampaignStatus) ([]domain.Campaign, error)
	Campaign(ctx context.Context, clientID, id int64) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, clientID int64, in CreateCampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, clientID, id int64, in UpdateCampaignInput) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, clientID, id int64) error
	// ReportStatus records a status reported by the external send pipeline,
	// enforcing the transition rules of domain.CampaignStatus.
	ReportStatus(ctx context.Context, clientID, id int64, status domain.CampaignStatus) (*domain.Campaign, error)
}

// SyncView is what the console shows for the CRM panel: the reconciled
// connection snapshot plus a short message describing the last action's
// outcome (empty when there was none).
type SyncView struct {
	Connection domain.Connection `json:"connection"`
	Message    string            `json:"message,omitempty"`
}

// SyncUseCase coordinates CRM connection and sync state. Local state is a
// hint only; after every sync round trip the authoritative status is
// re-fetched from the service. Remote failures are converted into the
// view's Message, never returned as errors; returned errors are local
// validation or state conflicts.
type SyncUseCase interface {
	Status(ctx context.Context, clientID int64) (*SyncView, error)
	Connect(ctx context.Context, req ConnectRequest) (*SyncView, error)
	Disconnect(ctx context.Context, clientID int64) error
	Sync(ctx context.Context, clientID int64, fullSync bool) (*SyncView, error)
	Fields(ctx context.Context, clientID int64) ([]domain.FieldGroup, error)
}

// ClientUseCase is plain tenant CRUD.
type ClientUseCase interface {
	Clients(ctx context.Context) ([]domain.Client, error)
	Client(ctx context.Context, id int64) (*domain.Client, error)
	CreateClient(ctx context.Context, name string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, name string) (*domain.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}
