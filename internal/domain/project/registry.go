package project

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Registry holds the live, ordered project collection. Every mutation is
// written through to the Store as the full collection. A failed save is
// logged and otherwise treated as if the write did not happen; callers are
// never surfaced a persistence error. Mutations on absent ids are silent
// no-ops.
type Registry struct {
	store  Store
	logger *slog.Logger

	mu       sync.Mutex
	projects []Project
}

// NewRegistry creates a new project registry backed by store.
func NewRegistry(store Store, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{store: store, logger: logger}
}

// Load populates the registry from the store.
func (r *Registry) Load(ctx context.Context) error {
	projects, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.projects = projects
	r.mu.Unlock()
	return nil
}

// List returns a copy of the collection in insertion order.
func (r *Registry) List() []Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out
}

// Get fetches a project by ID.
func (r *Registry) Get(id string) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// Create appends a project. A missing ID is generated; a missing status
// defaults to open.
func (r *Registry) Create(ctx context.Context, p Project) (Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return Project{}, ErrInvalidInput
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusOpen
	}

	r.mu.Lock()
	r.projects = append(r.projects, p)
	r.persistLocked(ctx)
	r.mu.Unlock()

	return p, nil
}

// Update applies mutate to the single matching project. The ID is
// preserved across the call. No-op if the ID is absent.
func (r *Registry) Update(ctx context.Context, id string, mutate func(*Project)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			mutate(&r.projects[i])
			r.projects[i].ID = id
			r.persistLocked(ctx)
			return
		}
	}
}

// Delete removes a project. No-op if the ID is absent.
func (r *Registry) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			r.persistLocked(ctx)
			return
		}
	}
}

// SetStatus overwrites a project's status unconditionally. Any status may
// follow any other; transition validation is not this layer's concern.
func (r *Registry) SetStatus(ctx context.Context, id string, status Status) {
	r.Update(ctx, id, func(p *Project) {
		p.Status = status
	})
}

// AssignTo binds a project to a student and forces it in-progress.
func (r *Registry) AssignTo(ctx context.Context, id, studentName string) {
	r.Update(ctx, id, func(p *Project) {
		p.AssignedTo = studentName
		p.Status = StatusInProgress
	})
}

func (r *Registry) persistLocked(ctx context.Context) {
	snapshot := make([]Project, len(r.projects))
	copy(snapshot, r.projects)
	if err := r.store.Save(ctx, snapshot); err != nil {
		r.logger.Warn("project save failed", "error", err)
	}
}
