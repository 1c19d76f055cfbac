package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maildeck/internal/adapter/usecase"
	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
	"maildeck/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	clients   *mocks.MockClientRepository
	contacts  *mocks.MockContactRepository
	folders   *mocks.MockFolderRepository
	templates *mocks.MockTemplateRepository
	campaigns *mocks.MockCampaignRepository
	gw        *mocks.MockCRMGateway
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	m := handlerMocks{
		clients:   mocks.NewMockClientRepository(t),
		contacts:  mocks.NewMockContactRepository(t),
		folders:   mocks.NewMockFolderRepository(t),
		templates: mocks.NewMockTemplateRepository(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		gw:        mocks.NewMockCRMGateway(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(
		usecase.NewClientService(m.clients),
		usecase.NewAudienceService(m.contacts),
		usecase.NewLibraryService(m.folders, m.templates),
		usecase.NewCampaignService(m.campaigns, m.contacts, m.templates),
		usecase.NewSyncService(m.gw, logger),
		logger,
	)
	return h, m
}

func doRequest(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, r)
	return w
}

func TestCreateFolderDuplicateIs409(t *testing.T) {
	h, m := newTestHandler(t)

	m.folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Promotions").
		Return(&domain.Folder{ID: 7, ClientID: 1, Name: "Promotions"}, nil)

	w := doRequest(h, http.MethodPost, "/api/v1/clients/1/folders", `{"name":"Promotions"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestCreateFolderEmptyNameIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doRequest(h, http.MethodPost, "/api/v1/clients/1/folders", `{"name":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRenameFolderVersionConflictIs409(t *testing.T) {
	h, m := newTestHandler(t)

	m.folders.EXPECT().
		FindByName(mock.Anything, int64(1), "Archive").
		Return(nil, nil)
	m.folders.EXPECT().
		Rename(mock.Anything, int64(1), int64(7), "Archive", int64(1)).
		Return(port.ErrVersionConflict)

	w := doRequest(h, http.MethodPut, "/api/v1/clients/1/folders/7", `{"name":"Archive","version":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestGetCampaignNotFoundIs404(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(99)).
		Return(nil, port.ErrNotFound)

	w := doRequest(h, http.MethodGet, "/api/v1/clients/1/campaigns/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateNonDraftCampaignIs409(t *testing.T) {
	h, m := newTestHandler(t)

	m.campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(&domain.Campaign{ID: 10, ClientID: 1, Status: domain.StatusSent}, nil)

	w := doRequest(h, http.MethodPut, "/api/v1/clients/1/campaigns/10", `{"name":"Renamed"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestReportInvalidStatusIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doRequest(h, http.MethodPost, "/api/v1/clients/1/campaigns/10/status", `{"status":"archived"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListCampaignsBadStatusFilterIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doRequest(h, http.MethodGet, "/api/v1/clients/1/campaigns?status=bogus", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateCampaignBadScheduledAtIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	w := doRequest(h, http.MethodPost, "/api/v1/clients/1/campaigns",
		`{"name":"Push","scheduled_at":"tomorrow"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSyncWithoutConnectionIs409(t *testing.T) {
	h, m := newTestHandler(t)

	m.gw.EXPECT().
		Status(mock.Anything, int64(1)).
		Return(&domain.Connection{Connected: false, SyncStatus: domain.SyncIdle}, nil)

	w := doRequest(h, http.MethodPost, "/api/v1/clients/1/salesforce/sync", `{}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestDeleteFolderReturnsUnfiledCount(t *testing.T) {
	h, m := newTestHandler(t)

	m.folders.EXPECT().
		DeleteAndUnfile(mock.Anything, int64(1), int64(7)).
		Return(int64(3), nil)

	w := doRequest(h, http.MethodDelete, "/api/v1/clients/1/folders/7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"templates_unfiled":3`) {
		t.Fatalf("expected unfiled count in body, got %s", w.Body.String())
	}
}
