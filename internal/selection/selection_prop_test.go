package selection

import (
	"testing"

	"pgregory.net/rapid"

	"flist/internal/domain"
)

var allKeys = []Key{
	KeyUp, KeyDown, KeyHome, KeyEnd, KeyDelete, KeyOpen, KeyOpenPreferred,
	KeyToggleArchive, KeyDrag, KeyRestore, KeyPaste, KeyEscape,
}

// checkInvariant verifies the state/store invariants after any
// transition: indices stay in range and every entry lives in exactly
// one list.
func checkInvariant(t *rapid.T, s State, p *domain.Project) {
	switch s.Mode {
	case ModeEntries:
		if len(p.Entries) == 0 {
			if s.Index != 0 {
				t.Fatalf("entries index %d on empty list", s.Index)
			}
		} else if s.Index < 0 || s.Index >= len(p.Entries) {
			t.Fatalf("entries index %d out of range (len %d)", s.Index, len(p.Entries))
		}
	case ModeArchive:
		if s.Index < 0 || s.Index >= len(p.Archive) {
			t.Fatalf("archive index %d out of range (len %d)", s.Index, len(p.Archive))
		}
	case ModeDrag:
		if s.Index < 0 || s.Index >= len(p.Entries) || s.DragFrom < 0 || s.DragFrom >= len(p.Entries) {
			t.Fatalf("drag state %+v out of range (len %d)", s, len(p.Entries))
		}
	}
	if len(p.Archive) > p.MaxArchive {
		t.Fatalf("archive overflow: %d > %d", len(p.Archive), p.MaxArchive)
	}
}

func TestProperty_TransitionsNeverEscapeBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := domain.NewProject(rapid.IntRange(1, 5).Draw(t, "maxArchive"))
		for range rapid.IntRange(0, 8).Draw(t, "active") {
			p.Insert(domain.NewEntry("e", domain.Link{Kind: domain.LinkURL, Target: "u"}, nil))
		}
		for range rapid.IntRange(0, p.MaxArchive).Draw(t, "archived") {
			p.Archive = append(p.Archive, domain.NewEntry("a", domain.Link{Kind: domain.LinkURL, Target: "u"}, nil))
		}

		env := Env{Clipboard: &fakeClipboard{text: "https://example.com"}}
		s := Initial()
		for range rapid.IntRange(1, 60).Draw(t, "steps") {
			k := rapid.SampledFrom(allKeys).Draw(t, "key")
			r := Transition(s, k, p, env)
			if r.Quit {
				t.Fatalf("quit from non-quit key %v", k)
			}
			s = r.State
			checkInvariant(t, s, p)
		}
	})
}
