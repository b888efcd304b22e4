package project

import "context"

// Store persists the full project collection as one unit. Load applies the
// merge rule between built-in defaults and previously saved projects.
type Store interface {
	Load(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
}
