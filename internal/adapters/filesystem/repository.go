package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flist/internal/domain"
)

const (
	EntriesFile = "entries.json"
	ArchiveFile = "archive.json"
)

// Repository implements ports.ProjectRepository on top of the
// project directory's JSON files.
type Repository struct {
	root       string
	maxArchive int
}

// NewRepository creates a repository rooted at the project directory.
func NewRepository(root string, maxArchive int) *Repository {
	return &Repository{root: root, maxArchive: maxArchive}
}

// Root returns the project directory.
func (r *Repository) Root() string {
	return r.root
}

// Load reads entries.json and archive.json. Missing files mean empty
// lists; unreadable or malformed files are an error.
func (r *Repository) Load() (*domain.Project, error) {
	entries, err := readEntries(filepath.Join(r.root, EntriesFile))
	if err != nil {
		return nil, err
	}
	archive, err := readEntries(filepath.Join(r.root, ArchiveFile))
	if err != nil {
		return nil, err
	}
	return &domain.Project{
		Entries:    entries,
		Archive:    archive,
		MaxArchive: r.maxArchive,
	}, nil
}

// Save writes both entry lists back to the project directory.
func (r *Repository) Save(p *domain.Project) error {
	if err := writeEntries(filepath.Join(r.root, EntriesFile), p.Entries); err != nil {
		return err
	}
	return writeEntries(filepath.Join(r.root, ArchiveFile), p.Archive)
}

func readEntries(path string) ([]domain.Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

func writeEntries(path string, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
