package tui

import (
	"net"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flist/internal/control"
	"flist/internal/domain"
	"flist/internal/selection"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want selection.Key
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, selection.KeyUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, selection.KeyDown},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, selection.KeyHome},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, selection.KeyEnd},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, selection.KeyDelete},
		{"enter opens", tea.KeyMsg{Type: tea.KeyEnter}, selection.KeyOpen},
		{"alt+enter opens preferred", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, selection.KeyOpenPreferred},
		{"a toggles archive", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, selection.KeyToggleArchive},
		{"d drags", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, selection.KeyDrag},
		{"r restores", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, selection.KeyRestore},
		{"ctrl+v pastes", tea.KeyMsg{Type: tea.KeyCtrlV}, selection.KeyPaste},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, selection.KeyEscape},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, selection.KeyQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, selection.KeyQuit},
		{"unbound rune ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, selection.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateKey(tt.msg))
		})
	}
}

type nopRepo struct {
	saves int
}

func (r *nopRepo) Load() (*domain.Project, error) { return &domain.Project{}, nil }
func (r *nopRepo) Save(*domain.Project) error     { r.saves++; return nil }

func TestApplyRemoteInsertsAtHeadAndKeepsFocus(t *testing.T) {
	srv, err := control.Listen()
	require.NoError(t, err)
	defer srv.Close()
	srv.Serve()

	project := &domain.Project{
		Entries: []domain.Entry{
			domain.NewEntry("focused", domain.InferLink("https://example.com/a"), nil),
		},
	}
	repo := &nopRepo{}
	app := NewApp(project, repo, srv, selection.Env{})

	conn, err := net.Dial("tcp", srv.Addr().String())
	require.NoError(t, err)
	require.NoError(t, control.Forward(conn, control.InsertRequest{
		Name: "remote",
		Link: "https://example.com/b",
	}))

	// The request lands asynchronously; drain until it shows up.
	require.Eventually(t, func() bool {
		app.applyRemote()
		return len(project.Entries) == 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "remote", project.Entries[0].Name)
	assert.Equal(t, "focused", project.Entries[1].Name)
	assert.Equal(t, 1, app.sel.Index, "focus should follow the previously selected entry")
	assert.Equal(t, 1, repo.saves)
}
