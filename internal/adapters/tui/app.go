package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flist/internal/control"
	"flist/internal/domain"
	"flist/internal/ports"
	"flist/internal/selection"
)

// tickRate bounds the latency between a remote command arriving and
// being applied and rendered.
const tickRate = 100 * time.Millisecond

// App is the interactive view. One Update goroutine owns the project
// and selection state exclusively; remote commands only ever reach
// them through the control server's queue, drained once per tick.
type App struct {
	project *domain.Project
	repo    ports.ProjectRepository
	server  *control.Server
	env     selection.Env

	sel     selection.State
	saveErr error

	width  int
	height int
}

// NewApp creates the interactive view model
func NewApp(project *domain.Project, repo ports.ProjectRepository, server *control.Server, env selection.Env) *App {
	return &App{
		project: project,
		repo:    repo,
		server:  server,
		env:     env,
		sel:     selection.Initial(),
	}
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Init starts the tick loop
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Flist"), tick())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.applyRemote()
		return a, tick()

	case tea.KeyMsg:
		k := translateKey(msg)
		if k == selection.KeyNone {
			return a, nil
		}
		// Remote mutations land before the next local input, so the
		// transition never sees a stale store.
		a.applyRemote()
		result := selection.Transition(a.sel, k, a.project, a.env)
		if result.Mutated {
			a.save()
		}
		if result.Quit {
			return a, tea.Quit
		}
		a.sel = result.State
		return a, nil
	}

	return a, nil
}

// applyRemote drains the control queue and applies every command,
// saving once if anything mutated.
func (a *App) applyRemote() {
	if a.server == nil {
		return
	}
	requests := a.server.Drain()
	mutated := false
	for _, req := range requests {
		switch r := req.(type) {
		case control.InsertRequest:
			entry := domain.NewEntry(r.Name, domain.InferLink(r.Link), r.Metadata)
			a.project.Insert(entry)
			mutated = true

			// The remote insert lands at the head; keep the focused
			// entry focused.
			if a.sel.Mode == selection.ModeEntries && len(a.project.Entries) > 1 {
				a.sel.Index++
			}
			if a.sel.Mode == selection.ModeDrag {
				a.sel.Index++
				a.sel.DragFrom++
			}
		}
	}
	if mutated {
		a.save()
	}
}

func (a *App) save() {
	a.saveErr = a.repo.Save(a.project)
}
