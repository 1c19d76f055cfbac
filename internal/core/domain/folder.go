package domain

import "time"

// Folder groups templates for one client. Folders are flat: no nesting.
// Name uniqueness is per client and case-sensitive. Version is a
// compare-and-swap token bumped on every update so concurrent sessions
// lose updates loudly instead of silently.
type Folder struct {
	ID        int64
	ClientID  int64
	Name      string
	Version   int64
	CreatedAt time.Time
}
