package domain

import (
	"testing"
	"time"
)

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(nil); got != StatusDraft {
		t.Fatalf("no send time: got %s, want %s", got, StatusDraft)
	}
	at := time.Now().Add(time.Hour)
	if got := InitialStatus(&at); got != StatusScheduled {
		t.Fatalf("with send time: got %s, want %s", got, StatusScheduled)
	}
	// a past timestamp still schedules; the pipeline decides what to do with it
	past := time.Now().Add(-time.Hour)
	if got := InitialStatus(&past); got != StatusScheduled {
		t.Fatalf("past send time: got %s, want %s", got, StatusScheduled)
	}
}

func TestEditable(t *testing.T) {
	if !StatusDraft.Editable() {
		t.Fatal("draft must be editable")
	}
	for _, s := range []CampaignStatus{StatusScheduled, StatusSending, StatusSent, StatusFailed} {
		if s.Editable() {
			t.Fatalf("%s must not be editable", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to CampaignStatus
		ok       bool
	}{
		{StatusDraft, StatusSending, true},
		{StatusScheduled, StatusSending, true},
		{StatusSending, StatusSent, true},
		{StatusSending, StatusFailed, true},
		{StatusDraft, StatusSent, false},
		{StatusScheduled, StatusFailed, false},
		{StatusSent, StatusSending, false},
		{StatusFailed, StatusSending, false},
		{StatusSent, StatusDraft, false},
		{StatusSending, StatusDraft, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Fatalf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestParseCampaignStatus(t *testing.T) {
	for _, s := range []string{"draft", "scheduled", "sending", "sent", "failed"} {
		got, err := ParseCampaignStatus(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("parse %q: got %s", s, got)
		}
	}
	if _, err := ParseCampaignStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := ParseCampaignStatus(""); err == nil {
		t.Fatal("expected error for empty status")
	}
}
