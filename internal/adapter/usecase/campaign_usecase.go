package usecase

import (
	"context"
	"strings"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// CampaignService implements port.CampaignUseCase. Creation freezes the
// recipient count from the live segment; after that the snapshot never
// moves, even when contact tags change.
type CampaignService struct {
	campaigns port.CampaignRepository
	contacts  port.ContactRepository
	templates port.TemplateRepository
}

// NewCampaignService creates the campaign usecase.
func NewCampaignService(campaigns port.CampaignRepository, contacts port.ContactRepository, templates port.TemplateRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns, contacts: contacts, templates: templates}
}

// Campaigns lists the client's campaigns newest first, optionally filtered
// by status.
func (s *CampaignService) Campaigns(ctx context.Context, clientID int64, status *domain.CampaignStatus) ([]domain.Campaign, error) {
	return s.campaigns.ListByClient(ctx, clientID, status)
}

// Campaign returns one campaign.
func (s *CampaignService) Campaign(ctx context.Context, clientID, id int64) (*domain.Campaign, error) {
	return s.campaigns.Get(ctx, clientID, id)
}

// CreateCampaign persists a new campaign. The initial status is decided
// once here (scheduled iff a send time is supplied) and the recipient
// count is snapshotted from the current segment.
func (s *CampaignService) CreateCampaign(ctx context.Context, clientID int64, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.TemplateID != nil {
		if _, err := s.templates.Get(ctx, clientID, *in.TemplateID); err != nil {
			return nil, err
		}
	}
	contacts, err := s.contacts.ListSubscribed(ctx, clientID)
	if err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		ClientID:       clientID,
		TemplateID:     in.TemplateID,
		Name:           in.Name,
		FilterTags:     in.FilterTags,
		Status:         domain.InitialStatus(in.ScheduledAt),
		RecipientCount: len(domain.Segment(contacts, in.FilterTags)),
		ScheduledAt:    in.ScheduledAt,
	}
	if err = s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign rewrites a draft's editable fields. Any other status
// rejects the edit; the recipient snapshot is deliberately left unchanged.
func (s *CampaignService) UpdateCampaign(ctx context.Context, clientID, id int64, in port.UpdateCampaignInput) (*domain.Campaign, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &port.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c, err := s.campaigns.Get(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.Editable() {
		return nil, port.ErrStateConflict
	}
	if in.TemplateID != nil {
		if _, err = s.templates.Get(ctx, clientID, *in.TemplateID); err != nil {
			return nil, err
		}
	}
	c.Name = in.Name
	c.TemplateID = in.TemplateID
	c.FilterTags = in.FilterTags
	c.Version = in.Version
	if err = s.campaigns.UpdateDraft(ctx, c); err != nil {
		return nil, err
	}
	return s.campaigns.Get(ctx, clientID, id)
}

// DeleteCampaign removes the campaign record. No status blocks deletion
// and nothing cascades to contacts or templates.
func (s *CampaignService) DeleteCampaign(ctx context.Context, clientID, id int64) error {
	return s.campaigns.Delete(ctx, clientID, id)
}

// ReportStatus records a status change reported by the external send
// pipeline, enforcing the lifecycle transition rules.
func (s *CampaignService) ReportStatus(ctx context.Context, clientID, id int64, status domain.CampaignStatus) (*domain.Campaign, error) {
	c, err := s.campaigns.Get(ctx, clientID, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransition(status) {
		return nil, port.ErrStateConflict
	}
	if err = s.campaigns.UpdateStatus(ctx, clientID, id, status); err != nil {
		return nil, err
	}
	return s.campaigns.Get(ctx, clientID, id)
}

var _ port.CampaignUseCase = (*CampaignService)(nil)
