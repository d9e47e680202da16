// Package tree holds the family-tree document model: person records,
// relationship back-link maintenance, on-disk persistence, and tool
// configuration.
package tree

import (
	"slices"
	"strings"
)

// Person is one record in the family tree. Relationship fields hold ids of
// other people, not object references. Id uniqueness is not enforced;
// duplicate ids are tolerated throughout.
//
//nolint:tagliatelle // snake_case matches the on-disk schema
type Person struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Alive           bool     `json:"alive"`
	Gender          string   `json:"gender"`
	Parents         []string `json:"parents"`
	Spouses         []string `json:"spouses"`
	Children        []string `json:"children"`
	BirthFamilyID   string   `json:"birth_family_id"`
	CurrentFamilyID string   `json:"current_family_id"`
}

// FullName returns "First Last", trimmed when either part is empty.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Document is the full persisted state: an ordered sequence of people.
type Document struct {
	People []Person `json:"people"`
}

// FindByID returns a pointer to the first person with the given id.
// With duplicate ids only the first match is ever visible here, matching
// the back-link scan behavior.
func (d *Document) FindByID(id string) (*Person, bool) {
	for i := range d.People {
		if d.People[i].ID == id {
			return &d.People[i], true
		}
	}

	return nil, false
}

// Link wires reciprocal relationship entries for p into the already-loaded
// people: each referenced parent gains p as a child, each spouse gains p as
// a spouse, each child gains p as a parent. Referenced ids with no matching
// person are ignored without warning so that records can be added in any
// order.
func (d *Document) Link(p Person) {
	for _, id := range p.Parents {
		d.backLink(id, p.ID, func(q *Person) *[]string { return &q.Children })
	}

	for _, id := range p.Spouses {
		d.backLink(id, p.ID, func(q *Person) *[]string { return &q.Spouses })
	}

	for _, id := range p.Children {
		d.backLink(id, p.ID, func(q *Person) *[]string { return &q.Parents })
	}
}

// backLink appends newID to the relationship list selected by pick on the
// first person whose id matches, unless already present. The scan stops at
// the first match; later people with a duplicate id are left untouched.
func (d *Document) backLink(id, newID string, pick func(*Person) *[]string) {
	for i := range d.People {
		if d.People[i].ID != id {
			continue
		}

		list := pick(&d.People[i])
		if !slices.Contains(*list, newID) {
			*list = append(*list, newID)
		}

		return
	}
}

// Append adds p to the end of the document. Nil relationship lists are
// normalized to empty so they always serialize as arrays, never null.
func (d *Document) Append(p Person) {
	if p.Parents == nil {
		p.Parents = []string{}
	}

	if p.Spouses == nil {
		p.Spouses = []string{}
	}

	if p.Children == nil {
		p.Children = []string{}
	}

	d.People = append(d.People, p)
}

// SplitIDs parses a comma-separated id list: split on commas, trim
// whitespace, drop empty tokens, preserve order. Always returns a non-nil
// slice.
func SplitIDs(input string) []string {
	parts := strings.Split(input, ",")
	ids := make([]string, 0, len(parts))

	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

// ParseAlive maps a yes/no answer to a boolean. Only a case-insensitive
// "yes" means alive; every other answer, including empty, means not.
func ParseAlive(answer string) bool {
	return strings.EqualFold(answer, "yes")
}
