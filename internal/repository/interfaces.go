package repository

import (
	"context"

	"github.com/campuswork/campuswork/internal/domain/project"
)

// ProjectStore persists the full project collection as a single blob.
// Load returns the merged view of built-in defaults and saved projects;
// Save overwrites the blob with the given collection.
type ProjectStore interface {
	Load(ctx context.Context) ([]project.Project, error)
	Save(ctx context.Context, projects []project.Project) error
}
