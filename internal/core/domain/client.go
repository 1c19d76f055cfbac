package domain

import "time"

// Client is the tenant that owns all contacts, templates, folders and
// campaigns. Deleting a client cascades to everything it owns at the
// database level.
type Client struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
