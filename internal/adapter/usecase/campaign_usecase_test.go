package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"maildeck/internal/core/domain"
	"maildeck/internal/core/port"
	"maildeck/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func campaignContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, ClientID: 1, Tags: []string{"vip", "east"}},
		{ID: 2, ClientID: 1, Tags: []string{"vip"}},
		{ID: 3, ClientID: 1, Tags: []string{"east"}},
	}
}

func TestCreateCampaignSnapshotsRecipients(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	contacts.EXPECT().
		ListSubscribed(mock.Anything, int64(1)).
		Return(campaignContacts(), nil)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) { c.ID = 10 }).
		Return(nil)

	svc := NewCampaignService(campaigns, contacts, templates)

	c, err := svc.CreateCampaign(context.Background(), 1, port.CreateCampaignInput{
		Name:       "VIP east push",
		FilterTags: []string{"vip", "east"},
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.RecipientCount != 1 {
		t.Fatalf("expected snapshot of 1 recipient, got %d", c.RecipientCount)
	}
	if c.Status != domain.StatusDraft {
		t.Fatalf("expected draft without send time, got %s", c.Status)
	}
}

func TestCreateCampaignScheduledWhenSendTimeGiven(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	contacts.EXPECT().
		ListSubscribed(mock.Anything, int64(1)).
		Return(campaignContacts(), nil)
	campaigns.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignService(campaigns, contacts, templates)

	at := time.Now().Add(24 * time.Hour)
	c, err := svc.CreateCampaign(context.Background(), 1, port.CreateCampaignInput{
		Name:        "Friday digest",
		ScheduledAt: &at,
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled, got %s", c.Status)
	}
	if c.RecipientCount != 3 {
		t.Fatalf("empty filter snapshots every contact: got %d, want 3", c.RecipientCount)
	}
}

func TestCreateCampaignRejectsDanglingTemplate(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	tplID := int64(99)
	templates.EXPECT().
		Get(mock.Anything, int64(1), tplID).
		Return(nil, port.ErrNotFound)

	svc := NewCampaignService(campaigns, contacts, templates)

	_, err := svc.CreateCampaign(context.Background(), 1, port.CreateCampaignInput{
		Name:       "Broken",
		TemplateID: &tplID,
	})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCampaignOnlyDrafts(t *testing.T) {
	for _, status := range []domain.CampaignStatus{
		domain.StatusScheduled, domain.StatusSending, domain.StatusSent, domain.StatusFailed,
	} {
		campaigns := mocks.NewMockCampaignRepository(t)
		contacts := mocks.NewMockContactRepository(t)
		templates := mocks.NewMockTemplateRepository(t)

		campaigns.EXPECT().
			Get(mock.Anything, int64(1), int64(10)).
			Return(&domain.Campaign{ID: 10, ClientID: 1, Name: "Push", Status: status}, nil)

		svc := NewCampaignService(campaigns, contacts, templates)

		_, err := svc.UpdateCampaign(context.Background(), 1, 10, port.UpdateCampaignInput{Name: "Renamed"})
		if !errors.Is(err, port.ErrStateConflict) {
			t.Fatalf("status %s: expected ErrStateConflict, got %v", status, err)
		}
	}
}

func TestUpdateCampaignDraftKeepsSnapshot(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	draft := &domain.Campaign{
		ID: 10, ClientID: 1, Name: "Push",
		Status: domain.StatusDraft, RecipientCount: 12, Version: 1,
	}
	campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(draft, nil).Once()
	campaigns.EXPECT().
		UpdateDraft(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(ctx context.Context, c *domain.Campaign) {
			if c.RecipientCount != 12 {
				t.Fatalf("snapshot must not be recomputed on edit, got %d", c.RecipientCount)
			}
			if c.Name != "Renamed" {
				t.Fatalf("expected new name, got %q", c.Name)
			}
		}).
		Return(nil)
	campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(&domain.Campaign{
			ID: 10, ClientID: 1, Name: "Renamed",
			Status: domain.StatusDraft, RecipientCount: 12, Version: 2,
		}, nil).Once()

	svc := NewCampaignService(campaigns, contacts, templates)

	c, err := svc.UpdateCampaign(context.Background(), 1, 10, port.UpdateCampaignInput{
		Name:       "Renamed",
		FilterTags: []string{"vip"},
		Version:    1,
	})
	if err != nil {
		t.Fatalf("UpdateCampaign: %v", err)
	}
	if c.Version != 2 {
		t.Fatalf("expected bumped version, got %d", c.Version)
	}
}

func TestReportStatusEnforcesLifecycle(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(&domain.Campaign{ID: 10, ClientID: 1, Status: domain.StatusSent}, nil)

	svc := NewCampaignService(campaigns, contacts, templates)

	_, err := svc.ReportStatus(context.Background(), 1, 10, domain.StatusSending)
	if !errors.Is(err, port.ErrStateConflict) {
		t.Fatalf("sent campaigns must not re-enter sending, got %v", err)
	}
}

func TestReportStatusSendingToSent(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	contacts := mocks.NewMockContactRepository(t)
	templates := mocks.NewMockTemplateRepository(t)

	campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(&domain.Campaign{ID: 10, ClientID: 1, Status: domain.StatusSending}, nil).Once()
	campaigns.EXPECT().
		UpdateStatus(mock.Anything, int64(1), int64(10), domain.StatusSent).
		Return(nil)
	campaigns.EXPECT().
		Get(mock.Anything, int64(1), int64(10)).
		Return(&domain.Campaign{ID: 10, ClientID: 1, Status: domain.StatusSent}, nil).Once()

	svc := NewCampaignService(campaigns, contacts, templates)

	c, err := svc.ReportStatus(context.Background(), 1, 10, domain.StatusSent)
	if err != nil {
		t.Fatalf("ReportStatus: %v", err)
	}
	if c.Status != domain.StatusSent {
		t.Fatalf("expected sent, got %s", c.Status)
	}
}
