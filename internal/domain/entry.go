package domain

import "time"

// Entry is a named reference in a project list. Entries are immutable
// once constructed; only their position in a collection changes.
type Entry struct {
	Name      string    `json:"name"`
	Link      Link      `json:"link"`
	TimeAdded time.Time `json:"time_added"`
	Metadata  []string  `json:"metadata"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(name string, link Link, metadata []string) Entry {
	if metadata == nil {
		metadata = []string{}
	}
	return Entry{
		Name:      name,
		Link:      link,
		TimeAdded: time.Now().UTC(),
		Metadata:  metadata,
	}
}
