package domain

import "testing"

func sampleContacts() []Contact {
	return []Contact{
		{ID: 1, Email: "ann@example.com", Tags: []string{"vip", "east"}},
		{ID: 2, Email: "bob@example.com", Tags: []string{"vip"}},
		{ID: 3, Email: "cal@example.com", Tags: []string{"east", "trial"}},
	}
}

func TestSegmentRequiresEveryTag(t *testing.T) {
	contacts := sampleContacts()

	got := Segment(contacts, []string{"vip", "east"})
	if len(got) != 1 {
		t.Fatalf("expected 1 contact matching both tags, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Fatalf("expected contact 1, got %d", got[0].ID)
	}

	got = Segment(contacts, []string{"vip"})
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts with vip, got %d", len(got))
	}
}

func TestSegmentEmptyFilterReturnsAll(t *testing.T) {
	contacts := sampleContacts()

	got := Segment(contacts, nil)
	if len(got) != len(contacts) {
		t.Fatalf("expected all %d contacts, got %d", len(contacts), len(got))
	}
	got = Segment(contacts, []string{})
	if len(got) != len(contacts) {
		t.Fatalf("expected all %d contacts for empty slice filter, got %d", len(contacts), len(got))
	}
}

func TestSegmentNoMatch(t *testing.T) {
	got := Segment(sampleContacts(), []string{"vip", "west"})
	if len(got) != 0 {
		t.Fatalf("expected empty segment, got %d contacts", len(got))
	}
}

// Adding tags to the filter can only shrink the result.
func TestSegmentMonotone(t *testing.T) {
	contacts := sampleContacts()
	broad := Segment(contacts, []string{"east"})
	narrow := Segment(contacts, []string{"east", "trial"})
	if len(narrow) > len(broad) {
		t.Fatalf("narrower filter grew the segment: %d > %d", len(narrow), len(broad))
	}
	for _, c := range narrow {
		found := false
		for _, b := range broad {
			if b.ID == c.ID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("contact %d in narrow segment missing from broad segment", c.ID)
		}
	}
}

func TestSegmentDoesNotMutateInput(t *testing.T) {
	contacts := sampleContacts()
	Segment(contacts, []string{"vip"})
	if len(contacts) != 3 || len(contacts[0].Tags) != 2 {
		t.Fatal("input slice was mutated")
	}
}

func TestTagUniverse(t *testing.T) {
	contacts := sampleContacts()
	// duplicate tag on one contact must count once
	contacts = append(contacts, Contact{ID: 4, Tags: []string{"trial", "trial"}})

	got := TagUniverse(contacts)

	want := []TagCount{
		{Tag: "east", Contacts: 2},
		{Tag: "trial", Contacts: 2},
		{Tag: "vip", Contacts: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTagUniverseEmpty(t *testing.T) {
	got := TagUniverse(nil)
	if len(got) != 0 {
		t.Fatalf("expected no tags, got %d", len(got))
	}
}
