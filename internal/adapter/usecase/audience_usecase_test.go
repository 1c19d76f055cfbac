package usecase

import (
	"context"
	"testing"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
	"maildeck/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func TestPreviewMatchesSegment(t *testing.T) {
	contacts := mocks.NewMockContactRepository(t)

	contacts.EXPECT().
		ListSubscribed(mock.Anything, int64(1)).
		Return([]domain.Contact{
			{ID: 1, Tags: []string{"vip", "east"}},
			{ID: 2, Tags: []string{"vip"}},
			{ID: 3, Tags: []string{"east"}},
		}, nil)

	svc := NewAudienceService(contacts)

	p, err := svc.Preview(context.Background(), 1, []string{"vip", "east"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if p.RecipientCount != 1 {
		t.Fatalf("expected 1 recipient, got %d", p.RecipientCount)
	}
	if len(p.ContactIDs) != 1 || p.ContactIDs[0] != 1 {
		t.Fatalf("unexpected contact ids %v", p.ContactIDs)
	}
}

func TestPreviewCountMatchesCreationSnapshot(t *testing.T) {
	roster := []domain.Contact{
		{ID: 1, Tags: []string{"vip"}},
		{ID: 2, Tags: []string{"vip", "west"}},
		{ID: 3, Tags: []string{"trial"}},
	}

	contacts := mocks.NewMockContactRepository(t)
	contacts.EXPECT().ListSubscribed(mock.Anything, int64(1)).Return(roster, nil)

	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)
	campaignContacts := mocks.NewMockContactRepository(t)
	campaignContacts.EXPECT().ListSubscribed(mock.Anything, int64(1)).Return(roster, nil)
	templates := mocks.NewMockTemplateRepository(t)

	audience := NewAudienceService(contacts)
	campaignSvc := NewCampaignService(campaigns, campaignContacts, templates)

	p, err := audience.Preview(context.Background(), 1, []string{"vip"})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	c, err := campaignSvc.CreateCampaign(context.Background(), 1, port.CreateCampaignInput{
		Name:       "VIP push",
		FilterTags: []string{"vip"},
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.RecipientCount != p.RecipientCount {
		t.Fatalf("preview %d and snapshot %d disagree", p.RecipientCount, c.RecipientCount)
	}
}

func TestTagsOrdered(t *testing.T) {
	contacts := mocks.NewMockContactRepository(t)
	contacts.EXPECT().
		ListSubscribed(mock.Anything, int64(1)).
		Return([]domain.Contact{
			{ID: 1, Tags: []string{"zeta", "alpha"}},
			{ID: 2, Tags: []string{"mid"}},
		}, nil)

	svc := NewAudienceService(contacts)

	tags, err := svc.Tags(context.Background(), 1)
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1].Tag > tags[i].Tag {
			t.Fatalf("tags out of order: %q before %q", tags[i-1].Tag, tags[i].Tag)
		}
	}
}
