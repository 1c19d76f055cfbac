package domain

import "time"

// SyncStatus is the state of the last (or current) CRM sync attempt. It is
// orthogonal to the connection flag: a connected client idles between syncs.
type SyncStatus string

const (
	SyncIdle    SyncStatus = "idle"
	SyncSyncing SyncStatus = "syncing"
	SyncSuccess SyncStatus = "success"
	SyncError   SyncStatus = "error"
)

// Connection is the per-client CRM connection snapshot as reported by the
// sync service. The service is the source of truth for this state; local
// copies are hints that must be reconciled after every sync round trip.
type Connection struct {
	Connected       bool       `json:"connected"`
	InstanceURL     string     `json:"instance_url,omitempty"`
	ConnectedAt     *time.Time `json:"connected_at,omitempty"`
	LastSync        *time.Time `json:"last_sync,omitempty"`
	SyncStatus      SyncStatus `json:"sync_status"`
	LastSyncMessage string     `json:"last_sync_message,omitempty"`
	LastSyncRecords int        `json:"last_sync_records"`
}

// Field is one CRM schema field. Custom only annotates display; it has no
// behavioural effect.
type Field struct {
	Label   string `json:"label"`
	APIName string `json:"api_name"`
	Custom  bool   `json:"custom"`
}

// FieldGroup is the CRM field list for one remote object type (e.g. Lead,
// Contact).
type FieldGroup struct {
	ObjectType string  `json:"object_type"`
	Fields     []Field `json:"fields"`
}
