// Package selection implements the interactive selection state
// machine: which entry and mode are focused, and how input events
// become state transitions and store mutations.
//
// Transitions that would move out of bounds are no-ops, never wraps or
// clamps. The quit key wins over every per-state rule.
package selection

import (
	"strings"

	"flist/internal/domain"
	"flist/internal/ports"
)

// Mode says which list has focus.
type Mode int

const (
	// ModeEntries focuses the active list. Index is 0 when the list
	// is empty, otherwise always in range.
	ModeEntries Mode = iota
	// ModeArchive focuses the archived list; only entered when the
	// archive is non-empty.
	ModeArchive
	// ModeDrag is an active-list reorder in progress: Index is the
	// preview position, DragFrom the entry's original index.
	ModeDrag
)

// State is the transient focus state of the running instance. Never
// persisted.
type State struct {
	Mode     Mode
	Index    int
	DragFrom int
}

// Initial is the state on startup: active list, first entry.
func Initial() State {
	return State{Mode: ModeEntries}
}

// Key is an abstract input event, decoupled from the terminal keymap.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyOpen
	KeyOpenPreferred
	KeyToggleArchive
	KeyDrag
	KeyRestore
	KeyPaste
	KeyEscape
	KeyQuit
)

// Env carries the external collaborators a transition may touch.
// Clipboard and Titles may be nil when unavailable.
type Env struct {
	Clipboard ports.Clipboard
	Opener    ports.Opener
	Titles    ports.TitleFetcher
	Suffixes  [][]string
}

// Result of a transition. When Quit is set the loop terminates; when
// Mutated is set the project must be saved.
type Result struct {
	State   State
	Quit    bool
	Mutated bool
}

func to(s State) Result      { return Result{State: s} }
func mutated(s State) Result { return Result{State: s, Mutated: true} }

// Transition applies one input event to the current state, possibly
// mutating the project's entry lists.
func Transition(s State, k Key, p *domain.Project, env Env) Result {
	if k == KeyQuit {
		return Result{State: s, Quit: true}
	}
	switch s.Mode {
	case ModeEntries:
		return onEntries(s, k, p, env)
	case ModeArchive:
		return onArchive(s, k, p, env)
	case ModeDrag:
		return onDrag(s, k, p)
	default:
		return to(s)
	}
}

func onEntries(s State, k Key, p *domain.Project, env Env) Result {
	switch k {
	case KeyUp:
		if len(p.Entries) > 0 && s.Index > 0 {
			return to(State{Mode: ModeEntries, Index: s.Index - 1})
		}
	case KeyDown:
		if len(p.Entries) > 0 && s.Index < len(p.Entries)-1 {
			return to(State{Mode: ModeEntries, Index: s.Index + 1})
		}
	case KeyHome:
		return to(State{Mode: ModeEntries})
	case KeyEnd:
		if len(p.Entries) > 0 {
			return to(State{Mode: ModeEntries, Index: len(p.Entries) - 1})
		}
	case KeyDelete:
		if len(p.Entries) > 0 {
			p.ArchiveEntry(s.Index)
			idx := s.Index
			if len(p.Entries) > 0 && idx == len(p.Entries) {
				idx--
			}
			if len(p.Entries) == 0 {
				idx = 0
			}
			return mutated(State{Mode: ModeEntries, Index: idx})
		}
	case KeyToggleArchive:
		if len(p.Archive) > 0 {
			return to(State{Mode: ModeArchive})
		}
	case KeyDrag:
		if len(p.Entries) > 0 {
			return to(State{Mode: ModeDrag, Index: s.Index, DragFrom: s.Index})
		}
	case KeyOpen, KeyOpenPreferred:
		if len(p.Entries) > 0 {
			openEntry(p.Entries[s.Index], k == KeyOpenPreferred, env)
		}
	case KeyPaste:
		return paste(s, p, env)
	}
	return to(s)
}

func onArchive(s State, k Key, p *domain.Project, env Env) Result {
	switch k {
	case KeyUp:
		if s.Index > 0 {
			return to(State{Mode: ModeArchive, Index: s.Index - 1})
		}
	case KeyDown:
		if s.Index < len(p.Archive)-1 {
			return to(State{Mode: ModeArchive, Index: s.Index + 1})
		}
	case KeyHome:
		return to(State{Mode: ModeArchive})
	case KeyEnd:
		if len(p.Archive) > 0 {
			return to(State{Mode: ModeArchive, Index: len(p.Archive) - 1})
		}
	case KeyDelete:
		// Permanent removal, no recovery.
		p.RemoveFromArchive(s.Index)
		switch {
		case len(p.Archive) == 0:
			return mutated(State{Mode: ModeEntries})
		case s.Index == len(p.Archive):
			return mutated(State{Mode: ModeArchive, Index: s.Index - 1})
		default:
			return mutated(State{Mode: ModeArchive, Index: s.Index})
		}
	case KeyToggleArchive:
		return to(State{Mode: ModeEntries})
	case KeyRestore:
		p.RestoreFromArchive(s.Index)
		return mutated(State{Mode: ModeEntries})
	case KeyOpen, KeyOpenPreferred:
		if len(p.Archive) > 0 {
			openEntry(p.Archive[s.Index], k == KeyOpenPreferred, env)
		}
	}
	return to(s)
}

func onDrag(s State, k Key, p *domain.Project) Result {
	switch k {
	case KeyUp:
		if s.Index > 0 {
			return to(State{Mode: ModeDrag, Index: s.Index - 1, DragFrom: s.DragFrom})
		}
	case KeyDown:
		if s.Index < len(p.Entries)-1 {
			return to(State{Mode: ModeDrag, Index: s.Index + 1, DragFrom: s.DragFrom})
		}
	case KeyHome:
		return to(State{Mode: ModeDrag, Index: 0, DragFrom: s.DragFrom})
	case KeyEnd:
		return to(State{Mode: ModeDrag, Index: len(p.Entries) - 1, DragFrom: s.DragFrom})
	case KeyOpen:
		// Enter commits the move.
		p.Move(s.DragFrom, s.Index)
		return mutated(State{Mode: ModeEntries, Index: s.Index})
	case KeyEscape:
		return to(State{Mode: ModeEntries, Index: s.DragFrom})
	}
	return to(s)
}

// paste constructs an entry from the clipboard text, inserts it just
// below the focused entry (or at the head of an empty list), and
// focuses it.
func paste(s State, p *domain.Project, env Env) Result {
	if env.Clipboard == nil {
		return to(s)
	}
	text, err := env.Clipboard.ReadAll()
	if err != nil {
		return to(s)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return to(s)
	}
	link := domain.InferLink(text)
	entry := domain.NewEntry(inferName(link, env.Titles), link, nil)

	idx := 0
	if len(p.Entries) > 0 {
		idx = s.Index + 1
	}
	p.InsertAt(entry, idx)
	return mutated(State{Mode: ModeEntries, Index: idx})
}

// inferName names a new entry from its link: base name for files and
// directories, page title (falling back to the raw URL) for URLs.
func inferName(l domain.Link, titles ports.TitleFetcher) string {
	if l.Kind == domain.LinkURL && titles != nil {
		if title, err := titles.Title(l.Target); err == nil && title != "" {
			return title
		}
	}
	return l.BaseName()
}

// openEntry hands the entry to the OS. With preferred set it resolves
// the quick-launch target first, falling back to the plain open.
// Activation never mutates state.
func openEntry(e domain.Entry, preferred bool, env Env) {
	if env.Opener == nil {
		return
	}
	if preferred {
		if pref, err := e.Link.PreferredFile(env.Suffixes); err == nil && pref != nil {
			env.Opener.OpenFile(pref.File.Target)
			return
		}
	}
	switch e.Link.Kind {
	case domain.LinkFile:
		env.Opener.RevealFile(e.Link.Target)
	case domain.LinkDirectory:
		env.Opener.OpenDir(e.Link.Target)
	case domain.LinkURL:
		env.Opener.OpenURL(e.Link.Target)
	}
}
