package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"flist/internal/adapters/clipboard"
	"flist/internal/adapters/filesystem"
	"flist/internal/adapters/opener"
	"flist/internal/adapters/tui"
	"flist/internal/adapters/web"
	"flist/internal/config"
	"flist/internal/control"
	"flist/internal/instance"
	"flist/internal/selection"
)

// runSession owns the lock for the lifetime of the interactive view.
// It publishes the control listener in the lock record so other
// processes forward their commands here instead of failing.
func runSession(root string, lock *instance.LockFile) error {
	defer lock.Release()

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	repo := filesystem.NewRepository(root, cfg.MaxArchive)
	project, err := repo.Load()
	if err != nil {
		return err
	}

	srv, err := control.Listen()
	if err != nil {
		return err
	}
	defer srv.Close()
	srv.Serve()

	addr := srv.Addr()
	if err := lock.SetListener(addr.IP.String(), addr.Port); err != nil {
		return err
	}

	app := tui.NewApp(project, repo, srv, sessionEnv(cfg))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

func sessionEnv(cfg config.Config) selection.Env {
	env := selection.Env{
		Opener:   opener.NewOpener(),
		Titles:   web.NewTitleFetcher(),
		Suffixes: cfg.PreferredSuffixes,
	}
	// A typed nil must not reach the interface field.
	if clip := clipboard.New(); clip != nil {
		env.Clipboard = clip
	}
	return env
}
