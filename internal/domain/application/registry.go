package application

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds the in-memory application collection. Applications are
// seeded demo data and are never persisted: the registry resets to its
// seed set on restart. Mutations on absent ids are silent no-ops.
type Registry struct {
	mu   sync.Mutex
	apps []Application
}

// NewRegistry creates a registry pre-populated with seed.
func NewRegistry(seed []Application) *Registry {
	apps := make([]Application, len(seed))
	copy(apps, seed)
	return &Registry{apps: apps}
}

// List returns a copy of all applications in insertion order.
func (r *Registry) List() []Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Application, len(r.apps))
	copy(out, r.apps)
	return out
}

// Get fetches an application by ID.
func (r *Registry) Get(id string) (Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return Application{}, ErrApplicationNotFound
}

// Add appends an application. A missing ID is generated, a missing status
// defaults to pending and a missing applied date to today.
func (r *Registry) Add(app Application) (Application, error) {
	if strings.TrimSpace(app.StudentName) == "" {
		return Application{}, ErrInvalidInput
	}
	if strings.TrimSpace(app.ID) == "" {
		app.ID = uuid.NewString()
	}
	if app.Status == "" {
		app.Status = StatusPending
	}
	if app.AppliedDate == "" {
		app.AppliedDate = time.Now().Format("2006-01-02")
	}

	r.mu.Lock()
	r.apps = append(r.apps, app)
	r.mu.Unlock()

	return app, nil
}

// Remove deletes an application. No-op if the ID is absent.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return
		}
	}
}

// SetStatus overwrites an application's status. No-op if the ID is absent.
func (r *Registry) SetStatus(id string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].Status = status
			return
		}
	}
}

// ListByProject returns the applications referencing projectID.
func (r *Registry) ListByProject(projectID string) []Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Application
	for _, a := range r.apps {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out
}
