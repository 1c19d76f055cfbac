package domain

import "time"

// Template is a reusable email design. FolderID is a weak reference: nil
// means Unfiled, and deleting the referenced folder clears it rather than
// deleting the template.
type Template struct {
	ID          int64
	ClientID    int64
	FolderID    *int64
	Name        string
	Subject     string
	PreviewText string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
