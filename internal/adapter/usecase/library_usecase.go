package usecase

import (
	"context"
	"strings"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// LibraryService implements port.LibraryUseCase: template folders and the
// templates filed in them. Folder names are unique per client
// (case-sensitive); deleting a folder reassigns its templates to Unfiled
// instead of deleting them.
type LibraryService struct {
	folders   port.FolderRepository
	templates port.TemplateRepository
}

// NewLibraryService creates the library usecase.
func NewLibraryService(folders port.FolderRepository, templates port.TemplateRepository) *LibraryService {
	return &LibraryService{folders: folders, templates: templates}
}

// FolderOverview returns all folders with template counts plus the Unfiled
// and total counts for the sidebar.
func (s *LibraryService) FolderOverview(ctx context.Context, clientID int64) (*port.FolderOverview, error) {
	folders, err := s.folders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	counts, err := s.templates.Counts(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := &port.FolderOverview{
		Folders: make([]port.FolderWithCount, 0, len(folders)),
		Unfiled: counts.Unfiled,
		Total:   counts.Total,
	}
	for _, f := range folders {
		out.Folders = append(out.Folders, port.FolderWithCount{
			Folder:    f,
			Templates: counts.ByFolder[f.ID],
		})
	}
	return out, nil
}

// CreateFolder persists a new folder after checking the name is free for
// this client. The unique constraint backs the check up under races.
func (s *LibraryService) CreateFolder(ctx context.Context, clientID int64, name string) (*domain.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	existing, err := s.folders.FindByName(ctx, clientID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, port.ErrDuplicateName
	}
	f := &domain.Folder{ClientID: clientID, Name: name}
	if err = s.folders.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// RenameFolder renames in place with the same duplicate check, excluding
// the folder's own current name, and compares-and-swaps on version.
func (s *LibraryService) RenameFolder(ctx context.Context, clientID, folderID int64, newName string, version int64) (*domain.Folder, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	existing, err := s.folders.FindByName(ctx, clientID, newName)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != folderID {
		return nil, port.ErrDuplicateName
	}
	if err = s.folders.Rename(ctx, clientID, folderID, newName, version); err != nil {
		return nil, err
	}
	return s.folders.Get(ctx, clientID, folderID)
}

// DeleteFolder removes the folder after clearing the folder reference on
// every template filed in it, atomically. The returned count feeds the UI
// warning about reassigned templates.
func (s *LibraryService) DeleteFolder(ctx context.Context, clientID, folderID int64) (int64, error) {
	return s.folders.DeleteAndUnfile(ctx, clientID, folderID)
}

// Templates lists templates, optionally narrowed to one folder or Unfiled.
func (s *LibraryService) Templates(ctx context.Context, clientID int64, filter port.TemplateFilter) ([]domain.Template, error) {
	return s.templates.ListByClient(ctx, clientID, filter)
}

// Template returns one template.
func (s *LibraryService) Template(ctx context.Context, clientID, id int64) (*domain.Template, error) {
	return s.templates.Get(ctx, clientID, id)
}

// CreateTemplate persists a new design. A folder reference, when given,
// must name a folder of the same client.
func (s *LibraryService) CreateTemplate(ctx context.Context, clientID int64, in port.TemplateInput) (*domain.Template, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if err := s.checkFolderRef(ctx, clientID, in.FolderID); err != nil {
		return nil, err
	}
	t := &domain.Template{
		ClientID:    clientID,
		FolderID:    in.FolderID,
		Name:        in.Name,
		Subject:     in.Subject,
		PreviewText: in.PreviewText,
		Body:        in.Body,
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTemplate rewrites a template's content fields and folder
// assignment.
func (s *LibraryService) UpdateTemplate(ctx context.Context, clientID, id int64, in port.TemplateInput) (*domain.Template, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	t, err := s.templates.Get(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	if err = s.checkFolderRef(ctx, clientID, in.FolderID); err != nil {
		return nil, err
	}
	t.Name = in.Name
	t.Subject = in.Subject
	t.PreviewText = in.PreviewText
	t.Body = in.Body
	t.FolderID = in.FolderID
	if err = s.templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTemplate removes one template. Folders are untouched.
func (s *LibraryService) DeleteTemplate(ctx context.Context, clientID, id int64) error {
	return s.templates.Delete(ctx, clientID, id)
}

func (s *LibraryService) checkFolderRef(ctx context.Context, clientID int64, folderID *int64) error {
	if folderID == nil {
		return nil
	}
	_, err := s.folders.Get(ctx, clientID, *folderID)
	return err
}

var _ port.LibraryUseCase = (*LibraryService)(nil)
