package port

import (
	"context"

	"maildeck/internal/core/domain"
)

// ConnectRequest carries the credentials for a CRM connect attempt. All
// three credential fields must be validated non-empty before any network
// call is made.
type ConnectRequest struct {
	ClientID    int64
	InstanceURL string
	AppID       string
	AppSecret   string
}

// SyncRequest asks the sync service to import remote records. FullSync
// re-imports the complete remote record set; otherwise only records changed
// since the last sync are imported. CorrelationID ties log lines and the
// service-side run together.
type SyncRequest struct {
	ClientID      int64
	FullSync      bool
	CorrelationID string
}

// SyncResult is the service's report of a completed sync run.
type SyncResult struct {
	Message string
	Records int
}

// CRMGateway is the outbound port for the external sync service. The
// service does the actual record synchronization and owns the authoritative
// connection state; implementations are thin HTTP clients. Any error
// returned here is a remote/network failure and must be converted into a
// user-facing message by the caller, never surfaced raw.
type CRMGateway interface {
	Status(ctx context.Context, clientID int64) (*domain.Connection, error)
	Connect(ctx context.Context, req ConnectRequest) (*domain.Connection, error)
	Disconnect(ctx context.Context, clientID int64) error
	Sync(ctx context.Context, req SyncRequest) (*SyncResult, error)
	Fields(ctx context.Context, clientID int64) ([]domain.FieldGroup, error)
}
