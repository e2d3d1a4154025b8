package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flist/internal/adapters/tui/styles"
	"flist/internal/domain"
	"flist/internal/selection"
)

// View renders the entry list, the detail pane, and the key options
func (a *App) View() string {
	list := a.renderList()
	detail := a.renderDetail()
	options := a.renderOptions()

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(a.contentWidth()*3/5).Render(detail),
		options,
	)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Flist"))
	b.WriteString("\n")
	b.WriteString(list)
	b.WriteString("\n")
	b.WriteString(bottom)
	if a.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(fmt.Sprintf("save failed: %v", a.saveErr)))
	}
	return styles.App.Render(b.String())
}

func (a *App) contentWidth() int {
	if a.width == 0 {
		return 80
	}
	return a.width
}

// visibleList returns the list to draw, the highlighted index, and the
// pane title. Drag mode shows the reordered preview without touching
// the store.
func (a *App) visibleList() ([]domain.Entry, int, string) {
	switch a.sel.Mode {
	case selection.ModeArchive:
		return a.project.Archive, a.sel.Index, "Archive"
	case selection.ModeDrag:
		preview := make([]domain.Entry, 0, len(a.project.Entries))
		for i, e := range a.project.Entries {
			if i != a.sel.DragFrom {
				preview = append(preview, e)
			}
		}
		preview = append(preview, domain.Entry{})
		copy(preview[a.sel.Index+1:], preview[a.sel.Index:])
		preview[a.sel.Index] = a.project.Entries[a.sel.DragFrom]
		return preview, a.sel.Index, "Entries"
	default:
		return a.project.Entries, a.sel.Index, "Entries"
	}
}

func (a *App) renderList() string {
	entries, selected, title := a.visibleList()

	highlight := styles.EntrySelected
	if a.sel.Mode == selection.ModeDrag {
		highlight = styles.EntryDragged
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for i, e := range entries {
		if i == selected {
			b.WriteString(styles.Cursor)
			b.WriteString(highlight.Render(e.Name))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.EntryNormal.Render(e.Name))
		}
		b.WriteString("\n")
	}
	return styles.ListBlock.Width(a.contentWidth() - 6).Render(b.String())
}

// selectedEntry returns the entry the detail pane describes, nil when
// the active list is empty.
func (a *App) selectedEntry() *domain.Entry {
	switch a.sel.Mode {
	case selection.ModeArchive:
		return &a.project.Archive[a.sel.Index]
	case selection.ModeDrag:
		return &a.project.Entries[a.sel.DragFrom]
	default:
		if len(a.project.Entries) == 0 {
			return nil
		}
		return &a.project.Entries[a.sel.Index]
	}
}

func (a *App) renderDetail() string {
	entry := a.selectedEntry()
	if entry == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.DetailName.Render(entry.Name))
	b.WriteString(" [")
	b.WriteString(styles.DetailTime.Render(entry.TimeAdded.Local().Format("01/02/06 03:04 PM")))
	b.WriteString("]\n\n")
	b.WriteString(styles.DetailLink.Render(entry.Link.Target))
	if len(entry.Metadata) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(entry.Metadata, ", "))
	}
	return b.String()
}

// keyOption is one entry in the live key options panel
type keyOption struct {
	key  string
	desc string
}

// renderOptions lists only the keys that would do something in the
// current state.
func (a *App) renderOptions() string {
	var opts []keyOption

	switch a.sel.Mode {
	case selection.ModeEntries:
		if len(a.project.Entries) > 0 {
			opts = append(opts, keyOption{"<Enter>", "open entry"})
			opts = append(opts, a.preferredOption(a.project.Entries[a.sel.Index])...)
			if a.sel.Index > 0 {
				opts = append(opts, keyOption{"<Up>", "select above entry"})
			}
			if a.sel.Index < len(a.project.Entries)-1 {
				opts = append(opts, keyOption{"<Down>", "select below entry"})
			}
			opts = append(opts,
				keyOption{"<Home>", "select first entry"},
				keyOption{"<End>", "select last entry"},
				keyOption{"<Delete>", "archive entry"},
				keyOption{"d", "drag entry"},
			)
		}
		if len(a.project.Archive) > 0 {
			opts = append(opts, keyOption{"a", "go to archive"})
		}
		if a.env.Clipboard != nil {
			if _, err := a.env.Clipboard.ReadAll(); err == nil {
				opts = append(opts, keyOption{"^v", "paste clipboard"})
			}
		}

	case selection.ModeArchive:
		opts = append(opts, keyOption{"<Enter>", "open entry"})
		opts = append(opts, a.preferredOption(a.project.Archive[a.sel.Index])...)
		if a.sel.Index > 0 {
			opts = append(opts, keyOption{"<Up>", "select above entry"})
		}
		if a.sel.Index < len(a.project.Archive)-1 {
			opts = append(opts, keyOption{"<Down>", "select below entry"})
		}
		opts = append(opts,
			keyOption{"<Home>", "select first entry"},
			keyOption{"<End>", "select last entry"},
			keyOption{"<Delete>", "delete entry forever"},
			keyOption{"r", "restore entry"},
			keyOption{"a", "return to main entries"},
		)

	case selection.ModeDrag:
		opts = append(opts, keyOption{"<Enter>", "select new location"})
		if a.sel.Index > 0 {
			opts = append(opts, keyOption{"<Up>", "shift one up"})
		}
		if a.sel.Index < len(a.project.Entries)-1 {
			opts = append(opts, keyOption{"<Down>", "shift one down"})
		}
		opts = append(opts,
			keyOption{"<Home>", "shift to top"},
			keyOption{"<End>", "shift to bottom"},
			keyOption{"<Esc>", "cancel drag"},
		)
	}
	opts = append(opts, keyOption{"q", "quit"})

	var b strings.Builder
	for _, opt := range opts {
		b.WriteString(styles.HelpKey.Render(opt.key))
		b.WriteString(styles.HelpDesc.Render(" - " + opt.desc))
		b.WriteString("\n")
	}
	return b.String()
}

// preferredOption advertises the quick-launch key when the focused
// entry resolves to a preferred file.
func (a *App) preferredOption(e domain.Entry) []keyOption {
	pref, err := e.Link.PreferredFile(a.env.Suffixes)
	if err != nil || pref == nil {
		return nil
	}
	desc := "open preferred file"
	if pref.Extension != "" {
		desc = fmt.Sprintf("open .%s file", strings.ToUpper(pref.Extension))
	}
	return []keyOption{{"<Alt+Enter>", desc}}
}
