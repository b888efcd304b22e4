package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/campuswork/campuswork/internal/domain/project"
)

// projectsKey is the fixed key the project collection blob lives under.
const projectsKey = "projects"

// ProjectStore implements repository.ProjectStore on the key/value blob
// table. The persisted record is a JSON array of projects; a missing or
// malformed blob degrades to "nothing persisted" rather than an error.
type ProjectStore struct {
	db       *DB
	defaults []project.Project
	logger   *slog.Logger
}

// NewProjectStore creates a ProjectStore. defaults is the built-in
// project set merged into every load, in its fixed order.
func NewProjectStore(db *DB, defaults []project.Project, logger *slog.Logger) *ProjectStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectStore{db: db, defaults: defaults, logger: logger}
}

// Load returns the visible collection: all defaults first, then every
// persisted project whose id does not collide with a default, in
// persisted order. Defaults win collisions. When nothing was persisted
// yet, the default set is written back so the next load is stable.
func (s *ProjectStore) Load(ctx context.Context) ([]project.Project, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM store WHERE key = ?`, projectsKey).Scan(&raw)
	if err == sql.ErrNoRows {
		merged := s.merge(nil)
		if err := s.Save(ctx, merged); err != nil {
			return nil, fmt.Errorf("seeding defaults: %w", err)
		}
		return merged, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	var saved []project.Project
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		// Malformed persisted data is not an error condition: treat it
		// as an empty persisted set.
		s.logger.Warn("discarding malformed project blob", "error", err)
		saved = nil
	}

	return s.merge(saved), nil
}

// Save overwrites the blob with the full given collection.
func (s *ProjectStore) Save(ctx context.Context, projects []project.Project) error {
	if projects == nil {
		projects = []project.Project{}
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, projectsKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}

	return nil
}

func (s *ProjectStore) merge(saved []project.Project) []project.Project {
	defaultIDs := make(map[string]struct{}, len(s.defaults))
	merged := make([]project.Project, 0, len(s.defaults)+len(saved))
	for _, p := range s.defaults {
		defaultIDs[p.ID] = struct{}{}
		merged = append(merged, p)
	}
	for _, p := range saved {
		if _, collides := defaultIDs[p.ID]; collides {
			continue
		}
		merged = append(merged, p)
	}
	return merged
}
