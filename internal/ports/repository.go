package ports

import "flist/internal/domain"

// ProjectRepository defines the interface for loading and persisting a
// project's entry lists.
type ProjectRepository interface {
	// Load reads the active and archived entry lists. Missing files
	// yield empty lists; malformed files are an error.
	Load() (*domain.Project, error)

	// Save persists both entry lists.
	Save(p *domain.Project) error
}
