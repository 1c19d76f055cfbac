package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist for the given
	// client. Repositories always scope lookups by client id, so a foreign
	// client's record is indistinguishable from a missing one.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a folder name collides with an
	// existing folder of the same client. The comparison is case-sensitive.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrVersionConflict is returned by compare-and-swap updates when the
	// stored version no longer matches the caller's. It detects lost
	// updates across concurrent sessions; resolution is up to the caller.
	ErrVersionConflict = errors.New("version conflict")

	// ErrNotConnected is returned for sync operations while no CRM
	// connection exists for the client.
	ErrNotConnected = errors.New("crm not connected")

	// ErrSyncInProgress is returned when a sync is requested while one is
	// already outstanding for the same client.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrStateConflict is returned when an operation is invalid for the
	// campaign's current status, e.g. editing a sent campaign.
	ErrStateConflict = errors.New("operation invalid for current status")
)

// ValidationError marks a request rejected before any network or database
// call, e.g. an empty credential field on a connect attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
