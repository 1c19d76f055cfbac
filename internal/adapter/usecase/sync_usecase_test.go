package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
	"maildeck/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConnectValidatesBeforeNetwork(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)
	svc := NewSyncService(gw, discardLogger())

	// the gateway mock has no expectations; any call would fail the test
	cases := []port.ConnectRequest{
		{ClientID: 1, AppID: "id", AppSecret: "secret"},
		{ClientID: 1, InstanceURL: "https://acme.my.salesforce.com", AppSecret: "secret"},
		{ClientID: 1, InstanceURL: "https://acme.my.salesforce.com", AppID: "id"},
	}
	for i, req := range cases {
		_, err := svc.Connect(context.Background(), req)
		var verr *port.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
}

func TestConnectRemoteFailureSurfacesMessage(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	req := port.ConnectRequest{
		ClientID:    1,
		InstanceURL: "https://acme.my.salesforce.com",
		AppID:       "id",
		AppSecret:   "secret",
	}
	gw.EXPECT().
		Connect(mock.Anything, req).
		Return(nil, errors.New("upstream timeout"))

	svc := NewSyncService(gw, discardLogger())

	view, err := svc.Connect(context.Background(), req)
	if err != nil {
		t.Fatalf("remote failure must not surface as an error: %v", err)
	}
	if view.Connection.Connected {
		t.Fatal("connection must stay disconnected after a failed connect")
	}
	if view.Message == "" {
		t.Fatal("expected a user-facing failure message")
	}
}

func TestSyncReconcilesWithServiceStatus(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	connected := &domain.Connection{Connected: true, SyncStatus: domain.SyncIdle}
	afterSync := &domain.Connection{Connected: true, SyncStatus: domain.SyncSuccess, LastSyncRecords: 240}

	// beginSync has no cached snapshot yet, so it verifies via Status first
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(connected, nil).Once()
	gw.EXPECT().
		Sync(mock.Anything, mock.AnythingOfType("port.SyncRequest")).
		Run(func(ctx context.Context, req port.SyncRequest) {
			if req.CorrelationID == "" {
				t.Fatal("expected a correlation id on the sync request")
			}
		}).
		Return(&port.SyncResult{Message: "Imported 240 contacts.", Records: 240}, nil)
	// the post-sync state comes from the service, not the local hint
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(afterSync, nil).Once()

	svc := NewSyncService(gw, discardLogger())

	view, err := svc.Sync(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if view.Connection.SyncStatus != domain.SyncSuccess {
		t.Fatalf("expected reconciled success status, got %s", view.Connection.SyncStatus)
	}
	if view.Connection.LastSyncRecords != 240 {
		t.Fatalf("expected record count from the service, got %d", view.Connection.LastSyncRecords)
	}
	if view.Message != "Imported 240 contacts." {
		t.Fatalf("unexpected message %q", view.Message)
	}
}

func TestSyncNeverStuckSyncingOnFailure(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	connected := &domain.Connection{Connected: true, SyncStatus: domain.SyncIdle}
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(connected, nil).Once()
	gw.EXPECT().
		Sync(mock.Anything, mock.AnythingOfType("port.SyncRequest")).
		Return(nil, errors.New("connection reset")).Once()
	// reconcile also fails: the view must still resolve to a terminal state
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(nil, errors.New("connection refused")).Once()

	svc := NewSyncService(gw, discardLogger())

	view, err := svc.Sync(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if view.Connection.SyncStatus == domain.SyncSyncing {
		t.Fatal("sync status must never remain syncing after the round trip")
	}
	if view.Connection.SyncStatus != domain.SyncError {
		t.Fatalf("expected error status, got %s", view.Connection.SyncStatus)
	}

	// the in-flight hint is released: a second sync is admitted again
	gw.EXPECT().
		Sync(mock.Anything, mock.AnythingOfType("port.SyncRequest")).
		Return(&port.SyncResult{Message: "ok"}, nil).Once()
	gw.EXPECT().
		Status(mock.Anything, int64(1)).
		Return(&domain.Connection{Connected: true, SyncStatus: domain.SyncSuccess}, nil).Once()

	if _, err = svc.Sync(context.Background(), 1, false); err != nil {
		t.Fatalf("second sync after failure: %v", err)
	}
}

func TestSyncRequiresConnection(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	gw.EXPECT().
		Status(mock.Anything, int64(1)).
		Return(&domain.Connection{Connected: false, SyncStatus: domain.SyncIdle}, nil)

	svc := NewSyncService(gw, discardLogger())

	_, err := svc.Sync(context.Background(), 1, false)
	if !errors.Is(err, port.ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestStatusFallsBackToLastKnown(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	known := &domain.Connection{Connected: true, InstanceURL: "https://acme.my.salesforce.com", SyncStatus: domain.SyncSuccess}
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(known, nil).Once()
	gw.EXPECT().Status(mock.Anything, int64(1)).Return(nil, errors.New("dial tcp: timeout")).Once()

	svc := NewSyncService(gw, discardLogger())

	if _, err := svc.Status(context.Background(), 1); err != nil {
		t.Fatalf("first status: %v", err)
	}

	view, err := svc.Status(context.Background(), 1)
	if err != nil {
		t.Fatalf("second status: %v", err)
	}
	if !view.Connection.Connected || view.Connection.InstanceURL != known.InstanceURL {
		t.Fatalf("expected last known snapshot, got %+v", view.Connection)
	}
	if view.Message == "" {
		t.Fatal("expected an unreachable-service message")
	}
}

func TestDisconnectDropsFieldCache(t *testing.T) {
	gw := mocks.NewMockCRMGateway(t)

	groups := []domain.FieldGroup{{
		ObjectType: "Contact",
		Fields:     []domain.Field{{Label: "Email", APIName: "Email"}},
	}}
	gw.EXPECT().Fields(mock.Anything, int64(1)).Return(groups, nil).Once()

	svc := NewSyncService(gw, discardLogger())

	if _, err := svc.Fields(context.Background(), 1); err != nil {
		t.Fatalf("Fields: %v", err)
	}
	// second call is served from cache, no gateway hit
	if _, err := svc.Fields(context.Background(), 1); err != nil {
		t.Fatalf("cached Fields: %v", err)
	}

	gw.EXPECT().Disconnect(mock.Anything, int64(1)).Return(nil)
	if err := svc.Disconnect(context.Background(), 1); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}

	// cache dropped: the next call goes back to the gateway
	gw.EXPECT().Fields(mock.Anything, int64(1)).Return(groups, nil).Once()
	if _, err := svc.Fields(context.Background(), 1); err != nil {
		t.Fatalf("Fields after disconnect: %v", err)
	}
}
