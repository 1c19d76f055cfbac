package domain

import "time"

// Contact is a single addressable recipient belonging to a client. Tags is
// an unordered set of opaque labels; insertion order carries no meaning.
// Unsubscribed contacts are filtered out at load time and never reach
// audience computation.
type Contact struct {
	ID           int64
	ClientID     int64
	Email        string
	FirstName    string
	LastName     string
	Tags         []string
	Unsubscribed bool
	CreatedAt    time.Time
}

// HasAllTags reports whether the contact carries every tag in want. An
// empty want always matches.
func (c Contact) HasAllTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, t := range c.Tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
