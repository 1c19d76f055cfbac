package usecase

import (
	"context"
	"errors"
	"testing"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
	"maildeck/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func TestCreateFolderDuplicateName(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Promotions").
		Return(&domain.Folder{ID: 7, ClientID: 1, Name: "Promotions"}, nil)

	svc := NewLibraryService(folders, templates)

	_, err := svc.CreateFolder(context.Background(), 1, "Promotions")
	if !errors.Is(err, port.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestCreateFolderTrimsAndRejectsEmpty(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	svc := NewLibraryService(folders, templates)

	_, err := svc.CreateFolder(context.Background(), 1, "   ")
	var verr *port.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// trimmed name reaches the repository
	folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Welcome").
		Return(nil, nil)
	folders.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Folder")).
		Run(func(ctx context.Context, f *domain.Folder) { f.ID = 3 }).
		Return(nil)

	f, err := svc.CreateFolder(context.Background(), 1, "  Welcome  ")
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if f.Name != "Welcome" || f.ID != 3 {
		t.Fatalf("unexpected folder %+v", f)
	}
}

func TestRenameFolderKeepsOwnName(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	// the name lookup hits the folder itself; that is not a conflict
	folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Promotions").
		Return(&domain.Folder{ID: 7, ClientID: 1, Name: "Promotions", Version: 2}, nil)
	folders.EXPECT().
		Rename(mock.Anything, int64(1), int64(7), "Promotions", int64(2)).
		Return(nil)
	folders.EXPECT().
		Get(mock.Anything, int64(1), int64(7)).
		Return(&domain.Folder{ID: 7, ClientID: 1, Name: "Promotions", Version: 3}, nil)

	svc := NewLibraryService(folders, templates)

	f, err := svc.RenameFolder(context.Background(), 1, 7, "Promotions", 2)
	if err != nil {
		t.Fatalf("RenameFolder: %v", err)
	}
	if f.Version != 3 {
		t.Fatalf("expected bumped version 3, got %d", f.Version)
	}
}

func TestRenameFolderConflictsWithOtherFolder(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Newsletters").
		Return(&domain.Folder{ID: 9, ClientID: 1, Name: "Newsletters"}, nil)

	svc := NewLibraryService(folders, templates)

	_, err := svc.RenameFolder(context.Background(), 1, 7, "Newsletters", 1)
	if !errors.Is(err, port.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestRenameFolderVersionConflict(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Archive").
		Return(nil, nil)
	folders.EXPECT().
		Rename(mock.Anything, int64(1), int64(7), "Archive", int64(1)).
		Return(port.ErrVersionConflict)

	svc := NewLibraryService(folders, templates)

	_, err := svc.RenameFolder(context.Background(), 1, 7, "Archive", 1)
	if !errors.Is(err, port.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestDeleteFolderReportsReassignedCount(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folders.EXPECT().
		DeleteAndUnfile(mock.Anything, int64(1), int64(7)).
		Return(int64(4), nil)

	svc := NewLibraryService(folders, templates)

	n, err := svc.DeleteFolder(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 reassigned templates, got %d", n)
	}
}

func TestFolderOverview(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folders.EXPECT().
		ListByClient(mock.Anything, int64(1)).
		Return([]domain.Folder{
			{ID: 1, ClientID: 1, Name: "Newsletters"},
			{ID: 2, ClientID: 1, Name: "Promotions"},
		}, nil)
	templates.EXPECT().
		Counts(mock.Anything, int64(1)).
		Return(&port.TemplateCounts{
			ByFolder: map[int64]int{1: 3},
			Unfiled:  2,
			Total:    5,
		}, nil)

	svc := NewLibraryService(folders, templates)

	ov, err := svc.FolderOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("FolderOverview: %v", err)
	}
	if len(ov.Folders) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(ov.Folders))
	}
	if ov.Folders[0].Templates != 3 {
		t.Fatalf("folder 1: expected 3 templates, got %d", ov.Folders[0].Templates)
	}
	if ov.Folders[1].Templates != 0 {
		t.Fatalf("folder 2: expected 0 templates, got %d", ov.Folders[1].Templates)
	}
	if ov.Unfiled != 2 || ov.Total != 5 {
		t.Fatalf("unexpected counts: unfiled %d total %d", ov.Unfiled, ov.Total)
	}
}

func TestCreateTemplateChecksFolderRef(t *testing.T) {
	folders := mocks.NewMockFolderRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	folderID := int64(42)
	folders.EXPECT().
		Get(mock.Anything, int64(1), folderID).
		Return(nil, port.ErrNotFound)

	svc := NewLibraryService(folders, templates)

	_, err := svc.CreateTemplate(context.Background(), 1, port.TemplateInput{
		Name:     "Spring sale",
		FolderID: &folderID,
	})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dangling folder ref, got %v", err)
	}
}
