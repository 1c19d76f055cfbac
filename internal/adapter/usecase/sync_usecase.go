package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// SyncService implements port.SyncUseCase. It mediates between the console
// and the external sync service. All state held here is a hint: the
// in-flight flag blocks duplicate submissions and the cached connection is
// only shown when the service is unreachable. After every sync round trip
// the authoritative status is re-fetched from the service; the optimistic
// local write is never trusted on its own.
type SyncService struct {
	gw     port.CRMGateway
	logger *slog.Logger

	mu    sync.Mutex
	state map[int64]*clientSyncState
}

type clientSyncState struct {
	syncing   bool
	lastKnown *domain.Connection
	fields    []domain.FieldGroup
}

// NewSyncService creates the sync coordinator.
func NewSyncService(gw port.CRMGateway, logger *slog.Logger) *SyncService {
	return &SyncService{gw: gw, logger: logger, state: make(map[int64]*clientSyncState)}
}

func (s *SyncService) clientState(clientID int64) *clientSyncState {
	st, ok := s.state[clientID]
	if !ok {
		st = &clientSyncState{}
		s.state[clientID] = st
	}
	return st
}

// Status returns the connection snapshot as reported by the service. When
// the service is unreachable the last known snapshot is shown with a
// message, never a raw error.
func (s *SyncService) Status(ctx context.Context, clientID int64) (*port.SyncView, error) {
	conn, err := s.gw.Status(ctx, clientID)
	if err != nil {
		s.logger.Error("crm status fetch failed", slog.Int64("client_id", clientID), slog.Any("error", err))
		return &port.SyncView{
			Connection: s.cachedConnection(clientID),
			Message:    "Could not reach the sync service. Showing the last known status.",
		}, nil
	}
	s.storeConnection(clientID, conn)
	return &port.SyncView{Connection: *conn}, nil
}

// Connect exchanges credentials with the sync service. All three fields
// are validated locally first; an empty one fails before any network call.
// On remote failure the connection is left unchanged and the reason is
// surfaced as the view message.
func (s *SyncService) Connect(ctx context.Context, req port.ConnectRequest) (*port.SyncView, error) {
	switch {
	case req.InstanceURL == "":
		return nil, &port.ValidationError{Field: "instance_url", Reason: "must not be empty"}
	case req.AppID == "":
		return nil, &port.ValidationError{Field: "app_id", Reason: "must not be empty"}
	case req.AppSecret == "":
		return nil, &port.ValidationError{Field: "app_secret", Reason: "must not be empty"}
	}

	conn, err := s.gw.Connect(ctx, req)
	if err != nil {
		s.logger.Error("crm connect failed", slog.Int64("client_id", req.ClientID), slog.Any("error", err))
		return &port.SyncView{
			Connection: s.cachedConnection(req.ClientID),
			Message:    fmt.Sprintf("Connection failed: %v", err),
		}, nil
	}
	s.storeConnection(req.ClientID, conn)
	return &port.SyncView{Connection: *conn, Message: "Connected to Salesforce."}, nil
}

// Disconnect tears the connection down and drops the cached field
// metadata. Contacts already imported are untouched. The UI confirms the
// action before calling this.
func (s *SyncService) Disconnect(ctx context.Context, clientID int64) error {
	if err := s.gw.Disconnect(ctx, clientID); err != nil {
		s.logger.Error("crm disconnect failed", slog.Int64("client_id", clientID), slog.Any("error", err))
		return fmt.Errorf("disconnect failed: %w", err)
	}
	s.mu.Lock()
	st := s.clientState(clientID)
	st.fields = nil
	st.lastKnown = &domain.Connection{Connected: false, SyncStatus: domain.SyncIdle}
	s.mu.Unlock()
	return nil
}

// Sync runs one import. It requires a connection and no outstanding sync
// for the client, marks the in-flight hint, issues the request, and always
// finishes by re-fetching the authoritative status, so sync_status can
// never remain syncing after the round trip, success or failure.
func (s *SyncService) Sync(ctx context.Context, clientID int64, fullSync bool) (*port.SyncView, error) {
	if err := s.beginSync(ctx, clientID); err != nil {
		return nil, err
	}
	defer s.endSync(clientID)

	correlationID := uuid.NewString()
	res, syncErr := s.gw.Sync(ctx, port.SyncRequest{
		ClientID:      clientID,
		FullSync:      fullSync,
		CorrelationID: correlationID,
	})

	var message string
	if syncErr != nil {
		s.logger.Error("crm sync failed",
			slog.Int64("client_id", clientID),
			slog.String("correlation_id", correlationID),
			slog.Any("error", syncErr))
		message = fmt.Sprintf("Sync failed: %v", syncErr)
	} else {
		s.logger.Info("crm sync finished",
			slog.Int64("client_id", clientID),
			slog.String("correlation_id", correlationID),
			slog.Int("records", res.Records))
		message = res.Message
	}

	// The service, not this process, owns the post-sync state. Reconcile
	// instead of trusting the optimistic write.
	conn, err := s.gw.Status(ctx, clientID)
	if err != nil {
		s.logger.Error("crm status reconcile failed", slog.Int64("client_id", clientID), slog.Any("error", err))
		fallback := s.cachedConnection(clientID)
		if syncErr != nil {
			fallback.SyncStatus = domain.SyncError
		} else {
			fallback.SyncStatus = domain.SyncSuccess
		}
		fallback.LastSyncMessage = message
		return &port.SyncView{Connection: fallback, Message: message}, nil
	}
	s.storeConnection(clientID, conn)
	return &port.SyncView{Connection: *conn, Message: message}, nil
}

// Fields returns the remote schema's field list grouped by object type,
// cached until disconnect.
func (s *SyncService) Fields(ctx context.Context, clientID int64) ([]domain.FieldGroup, error) {
	s.mu.Lock()
	if cached := s.clientState(clientID).fields; cached != nil {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	groups, err := s.gw.Fields(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("fetch crm fields: %w", err)
	}
	s.mu.Lock()
	s.clientState(clientID).fields = groups
	s.mu.Unlock()
	return groups, nil
}

// beginSync enforces the one-sync-at-a-time and connected preconditions,
// then sets the in-flight hint. The connection check uses the cached
// snapshot when available and falls back to a status fetch.
func (s *SyncService) beginSync(ctx context.Context, clientID int64) error {
	s.mu.Lock()
	st := s.clientState(clientID)
	if st.syncing {
		s.mu.Unlock()
		return port.ErrSyncInProgress
	}
	known := st.lastKnown
	s.mu.Unlock()

	if known == nil {
		conn, err := s.gw.Status(ctx, clientID)
		if err != nil {
			return fmt.Errorf("verify connection: %w", err)
		}
		s.storeConnection(clientID, conn)
		known = conn
	}
	if !known.Connected {
		return port.ErrNotConnected
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.clientState(clientID)
	if st.syncing {
		return port.ErrSyncInProgress
	}
	st.syncing = true
	return nil
}

func (s *SyncService) endSync(clientID int64) {
	s.mu.Lock()
	s.clientState(clientID).syncing = false
	s.mu.Unlock()
}

func (s *SyncService) storeConnection(clientID int64, conn *domain.Connection) {
	s.mu.Lock()
	cp := *conn
	s.clientState(clientID).lastKnown = &cp
	s.mu.Unlock()
}

func (s *SyncService) cachedConnection(clientID int64) domain.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if known := s.clientState(clientID).lastKnown; known != nil {
		return *known
	}
	return domain.Connection{Connected: false, SyncStatus: domain.SyncIdle}
}

var _ port.SyncUseCase = (*SyncService)(nil)
