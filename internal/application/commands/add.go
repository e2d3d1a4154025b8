package commands

import (
	"context"

	"flist/internal/application"
	"flist/internal/domain"
	"flist/internal/ports"
)

// AddEntryResult contains the result of adding an entry
type AddEntryResult struct {
	Entry domain.Entry
}

// AddEntryCommand inserts one entry at the head of the active list and
// persists the project. Used by the direct (non-forwarded) add path.
type AddEntryCommand struct {
	repo     ports.ProjectRepository
	Name     string
	Link     string
	Metadata []string
}

// NewAddEntryCommand creates a new AddEntryCommand
func NewAddEntryCommand(repo ports.ProjectRepository, name, link string, metadata []string) *AddEntryCommand {
	return &AddEntryCommand{
		repo:     repo,
		Name:     name,
		Link:     link,
		Metadata: metadata,
	}
}

// Validate checks the entry fields
func (c *AddEntryCommand) Validate() error {
	if c.Name == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "entry name is required",
		}
	}
	if c.Link == "" {
		return &application.ValidationError{
			Field:   "link",
			Message: "entry link is required",
		}
	}
	return nil
}

// Execute loads the project, inserts the entry, and saves
func (c *AddEntryCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	project, err := c.repo.Load()
	if err != nil {
		return nil, err
	}

	entry := domain.NewEntry(c.Name, domain.InferLink(c.Link), c.Metadata)
	project.Insert(entry)

	if err := c.repo.Save(project); err != nil {
		return nil, err
	}
	return &AddEntryResult{Entry: entry}, nil
}
