package usecase

import (
	"context"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
)

// AudienceService implements port.AudienceUseCase. It loads the client's
// subscribed contacts and runs the pure segmentation functions over them;
// unsubscribe filtering already happened in the repository.
type AudienceService struct {
	contacts port.ContactRepository
}

// NewAudienceService creates the audience usecase.
func NewAudienceService(contacts port.ContactRepository) *AudienceService {
	return &AudienceService{contacts: contacts}
}

// Contacts returns the client's subscribed contacts, newest first.
func (s *AudienceService) Contacts(ctx context.Context, clientID int64) ([]domain.Contact, error) {
	return s.contacts.ListSubscribed(ctx, clientID)
}

// Tags returns the client's tag universe with per-tag contact counts,
// lexicographically ordered.
func (s *AudienceService) Tags(ctx context.Context, clientID int64) ([]domain.TagCount, error) {
	contacts, err := s.contacts.ListSubscribed(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return domain.TagUniverse(contacts), nil
}

// Preview computes the live segment for a tag selection. The same predicate
// later produces the immutable recipient_count snapshot on campaign
// creation, so the preview and the snapshot agree at creation time.
func (s *AudienceService) Preview(ctx context.Context, clientID int64, filterTags []string) (*port.SegmentPreview, error) {
	contacts, err := s.contacts.ListSubscribed(ctx, clientID)
	if err != nil {
		return nil, err
	}
	segment := domain.Segment(contacts, filterTags)
	ids := make([]int64, len(segment))
	for i, c := range segment {
		ids[i] = c.ID
	}
	return &port.SegmentPreview{
		FilterTags:     filterTags,
		RecipientCount: len(segment),
		ContactIDs:     ids,
	}, nil
}

var _ port.AudienceUseCase = (*AudienceService)(nil)
