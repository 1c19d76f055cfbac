package domain

import (
	"fmt"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusScheduled CampaignStatus = "scheduled"
	StatusSending   CampaignStatus = "sending"
	StatusSent      CampaignStatus = "sent"
	StatusFailed    CampaignStatus = "failed"
)

// ParseCampaignStatus validates a textual status.
func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case StatusDraft, StatusScheduled, StatusSending, StatusSent, StatusFailed:
		return CampaignStatus(s), nil
	}
	return "", fmt.Errorf("unknown campaign status %q", s)
}

// InitialStatus picks the status a campaign is created in: scheduled when a
// send time is supplied, draft otherwise. The decision is made exactly once
// at creation and is never re-evaluated.
func InitialStatus(scheduledAt *time.Time) CampaignStatus {
	if scheduledAt != nil {
		return StatusScheduled
	}
	return StatusDraft
}

// Editable reports whether content edits are allowed in this status. Only
// drafts are editable.
func (s CampaignStatus) Editable() bool {
	return s == StatusDraft
}

// CanTransition reports whether the send pipeline may move a campaign from
// s to next. Draft and scheduled campaigns enter sending; sending resolves
// to sent or failed. Deletion is allowed from any status and is not
// modelled here.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	switch s {
	case StatusDraft, StatusScheduled:
		return next == StatusSending
	case StatusSending:
		return next == StatusSent || next == StatusFailed
	}
	return false
}

// Campaign is an outbound email send. FilterTags selects the audience
// (empty = all contacts). RecipientCount is a snapshot of the segment size
// taken at creation; it is intentionally not recomputed when contact tags
// change later, so it can diverge from the live segment. TemplateID is a
// weak reference like Template.FolderID.
type Campaign struct {
	ID             int64
	ClientID       int64
	TemplateID     *int64
	Name           string
	FilterTags     []string
	Status         CampaignStatus
	RecipientCount int
	ScheduledAt    *time.Time
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
