package domain

import "sort"

// TagCount pairs a tag from the client's tag universe with the number of
// contacts carrying it. A count of zero is valid: the tag stays selectable.
type TagCount struct {
	Tag      string `json:"tag"`
	Contacts int    `json:"contacts"`
}

// Segment returns the contacts whose tag set is a superset of filterTags,
// i.e. a contact must carry every selected tag. An empty filterTags returns
// the whole input. The function is pure: it never mutates contacts and the
// same inputs always produce the same result. No output ordering is
// guaranteed beyond the input's.
func Segment(contacts []Contact, filterTags []string) []Contact {
	if len(filterTags) == 0 {
		return contacts
	}
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.HasAllTags(filterTags) {
			out = append(out, c)
		}
	}
	return out
}

// TagUniverse returns every distinct tag across the given contacts together
// with its contact count, deduplicated and sorted lexicographically for
// display.
func TagUniverse(contacts []Contact) []TagCount {
	counts := make(map[string]int)
	for _, c := range contacts {
		seen := make(map[string]struct{}, len(c.Tags))
		for _, t := range c.Tags {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Contacts: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
