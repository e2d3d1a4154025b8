package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flist/internal/config"
	"flist/internal/instance"
)

// ErrProjectExists is returned when initializing over an existing
// project without force.
var ErrProjectExists = errors.New("project already exists, to overwrite use --force")

// InitProject initializes a project directory: creates it if missing,
// writes flist.toml, and with clear set removes leftover lock and
// entry files. An existing flist.toml is only overwritten with force.
func InitProject(root string, cfg config.Config, force, clear bool) error {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(root, 0o755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to stat project root: %w", err)
	case !info.IsDir():
		return fmt.Errorf("project root is not a directory: %s", root)
	default:
		if !force {
			if _, err := os.Stat(filepath.Join(root, config.FileName)); err == nil {
				return ErrProjectExists
			}
		}
	}

	if err := cfg.Save(root); err != nil {
		return err
	}

	if clear {
		for _, name := range []string{instance.LockFileName, EntriesFile, ArchiveFile} {
			if err := os.Remove(filepath.Join(root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to delete %s: %w", name, err)
			}
		}
	}
	return nil
}
