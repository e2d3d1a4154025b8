package domain

// Project holds the two ordered entry collections: active entries
// (order = user-defined priority) and the archive (most recently
// archived first, bounded by MaxArchive).
//
// Every transfer between the two lists is a remove-then-insert of the
// same Entry value: an entry belongs to exactly one list at a time.
// All operations taking an index silently ignore out-of-range values.
type Project struct {
	Entries    []Entry
	Archive    []Entry
	MaxArchive int
}

// NewProject creates an empty project with the given archive bound.
func NewProject(maxArchive int) *Project {
	return &Project{MaxArchive: maxArchive}
}

// Insert places an entry at the head of the active list.
func (p *Project) Insert(e Entry) {
	p.InsertAt(e, 0)
}

// InsertAt places an entry at the given active-list position,
// clamping to the end of the list.
func (p *Project) InsertAt(e Entry, idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.Entries) {
		idx = len(p.Entries)
	}
	p.Entries = append(p.Entries, Entry{})
	copy(p.Entries[idx+1:], p.Entries[idx:])
	p.Entries[idx] = e
}

// ArchiveEntry transfers the active entry at idx to the head of the
// archive, evicting the oldest archived entry if the bound is exceeded.
func (p *Project) ArchiveEntry(idx int) {
	if idx < 0 || idx >= len(p.Entries) {
		return
	}
	entry := p.Entries[idx]
	p.Entries = append(p.Entries[:idx], p.Entries[idx+1:]...)
	p.Archive = append([]Entry{entry}, p.Archive...)
	// A zero bound keeps the archive empty; the fresh entry is evicted
	// straight away.
	bound := p.MaxArchive
	if bound < 0 {
		bound = 0
	}
	if len(p.Archive) > bound {
		p.Archive = p.Archive[:bound]
	}
}

// RemoveFromArchive permanently deletes the archived entry at idx.
func (p *Project) RemoveFromArchive(idx int) {
	if idx < 0 || idx >= len(p.Archive) {
		return
	}
	p.Archive = append(p.Archive[:idx], p.Archive[idx+1:]...)
}

// RestoreFromArchive transfers the archived entry at idx back to the
// head of the active list.
func (p *Project) RestoreFromArchive(idx int) {
	if idx < 0 || idx >= len(p.Archive) {
		return
	}
	entry := p.Archive[idx]
	p.Archive = append(p.Archive[:idx], p.Archive[idx+1:]...)
	p.Entries = append([]Entry{entry}, p.Entries...)
}

// Move relocates the active entry at from to position to, preserving
// the relative order of all other entries. from == to is a no-op.
func (p *Project) Move(from, to int) {
	if from == to {
		return
	}
	if from < 0 || from >= len(p.Entries) || to < 0 || to >= len(p.Entries) {
		return
	}
	entry := p.Entries[from]
	p.Entries = append(p.Entries[:from], p.Entries[from+1:]...)
	p.Entries = append(p.Entries, Entry{})
	copy(p.Entries[to+1:], p.Entries[to:])
	p.Entries[to] = entry
}
