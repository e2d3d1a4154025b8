package domain

import (
	"testing"
)

func named(names ...string) []Entry {
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = NewEntry(n, Link{Kind: LinkURL, Target: "https://example.com/" + n}, nil)
	}
	return entries
}

func namesOf(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func assertNames(t *testing.T, got []Entry, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, namesOf(got))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("expected %v, got %v", want, namesOf(got))
		}
	}
}

func TestInsert(t *testing.T) {
	t.Run("each insert goes to the head", func(t *testing.T) {
		p := NewProject(100)
		for _, e := range named("A", "B", "C") {
			p.Insert(e)
		}
		assertNames(t, p.Entries, "C", "B", "A")
	})

	t.Run("insert at position", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A", "B", "C")
		p.InsertAt(named("X")[0], 1)
		assertNames(t, p.Entries, "A", "X", "B", "C")
	})

	t.Run("insert past the end clamps", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A")
		p.InsertAt(named("X")[0], 5)
		assertNames(t, p.Entries, "A", "X")
	})
}

func TestArchiveEntry(t *testing.T) {
	t.Run("archives the middle entry", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("C", "B", "A")
		p.ArchiveEntry(1)
		assertNames(t, p.Entries, "C", "A")
		assertNames(t, p.Archive, "B")
	})

	t.Run("archived entry is unchanged", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A", "B")
		want := p.Entries[1]
		p.ArchiveEntry(1)
		got := p.Archive[0]
		if got.Name != want.Name || got.Link != want.Link || !got.TimeAdded.Equal(want.TimeAdded) {
			t.Errorf("archived entry mutated: got %+v, want %+v", got, want)
		}
	})

	t.Run("evicts the oldest archived entry past the bound", func(t *testing.T) {
		p := NewProject(1)
		p.Entries = named("A", "B")
		p.ArchiveEntry(0)
		p.ArchiveEntry(0)
		assertNames(t, p.Archive, "B")
		if len(p.Entries) != 0 {
			t.Errorf("expected empty entries, got %v", namesOf(p.Entries))
		}
	})

	t.Run("zero bound keeps the archive empty", func(t *testing.T) {
		p := NewProject(0)
		p.Entries = named("A", "B")
		p.ArchiveEntry(0)
		p.ArchiveEntry(0)
		if len(p.Archive) != 0 {
			t.Errorf("expected empty archive, got %v", namesOf(p.Archive))
		}
		if len(p.Entries) != 0 {
			t.Errorf("expected empty entries, got %v", namesOf(p.Entries))
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A")
		p.ArchiveEntry(5)
		p.ArchiveEntry(-1)
		assertNames(t, p.Entries, "A")
		if len(p.Archive) != 0 {
			t.Errorf("expected empty archive, got %v", namesOf(p.Archive))
		}
	})
}

func TestRestoreFromArchive(t *testing.T) {
	t.Run("restores to head of active list", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A", "B")
		p.Archive = named("X", "Y")
		p.RestoreFromArchive(1)
		assertNames(t, p.Entries, "Y", "A", "B")
		assertNames(t, p.Archive, "X")
	})

	t.Run("archive restore round trip preserves identity", func(t *testing.T) {
		p := NewProject(100)
		p.Entries = named("A", "B", "C")
		want := p.Entries[1]
		p.ArchiveEntry(1)
		p.RestoreFromArchive(0)
		got := p.Entries[0]
		if got.Name != want.Name || got.Link != want.Link || !got.TimeAdded.Equal(want.TimeAdded) {
			t.Errorf("round trip mutated entry: got %+v, want %+v", got, want)
		}
	})
}

func TestRemoveFromArchive(t *testing.T) {
	p := NewProject(100)
	p.Archive = named("X", "Y", "Z")
	p.RemoveFromArchive(1)
	assertNames(t, p.Archive, "X", "Z")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want []string
	}{
		{"same position is a no-op", 1, 1, []string{"A", "B", "C", "D"}},
		{"move down", 0, 2, []string{"B", "C", "A", "D"}},
		{"move up", 3, 0, []string{"D", "A", "B", "C"}},
		{"adjacent swap", 1, 2, []string{"A", "C", "B", "D"}},
		{"out of range from", 7, 0, []string{"A", "B", "C", "D"}},
		{"out of range to", 0, 7, []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProject(100)
			p.Entries = named("A", "B", "C", "D")
			p.Move(tt.from, tt.to)
			assertNames(t, p.Entries, tt.want...)
		})
	}
}
