package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, seed []project.Project) (*project.Registry, *mocks.ProjectStore) {
	t.Helper()
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("Load", ctx).Return(seed, nil)

	reg := project.NewRegistry(store, nil)
	require.NoError(t, reg.Load(ctx))
	return reg, store
}

func TestRegistry_CreateAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, []project.Project{{ID: "1", Title: "Existing", Status: project.StatusOpen}})
	store.On("Save", ctx, mock.Anything).Return(nil)

	created, err := reg.Create(ctx, project.Project{Title: "New Site", Budget: 300, Deadline: "2024-06-01"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, project.StatusOpen, created.Status)

	list := reg.List()
	require.Len(t, list, 2)
	require.Equal(t, created, list[1], "created project is appended last")
	store.AssertCalled(t, "Save", ctx, list)
}

func TestRegistry_CreateValidation(t *testing.T) {
	reg, _ := newRegistry(t, nil)

	_, err := reg.Create(context.Background(), project.Project{Title: "  "})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestRegistry_UpdatePreservesID(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, []project.Project{{ID: "1", Title: "Old", Status: project.StatusOpen}})
	store.On("Save", ctx, mock.Anything).Return(nil)

	reg.Update(ctx, "1", func(p *project.Project) {
		p.Title = "New"
		p.ID = "mangled"
	})

	p, err := reg.Get("1")
	require.NoError(t, err)
	require.Equal(t, "New", p.Title)
}

func TestRegistry_MutationsOnAbsentIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	seed := []project.Project{{ID: "1", Title: "Only", Status: project.StatusOpen}}
	reg, store := newRegistry(t, seed)

	reg.Update(ctx, "missing", func(p *project.Project) { p.Title = "x" })
	reg.Delete(ctx, "missing")
	reg.SetStatus(ctx, "missing", project.StatusCancelled)
	reg.AssignTo(ctx, "missing", "Nobody")

	require.Equal(t, seed, reg.List())
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegistry_DeleteRemovesAndPersists(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, []project.Project{
		{ID: "1", Title: "Keep", Status: project.StatusOpen},
		{ID: "2", Title: "Drop", Status: project.StatusOpen},
	})
	store.On("Save", ctx, mock.Anything).Return(nil)

	reg.Delete(ctx, "2")

	require.Len(t, reg.List(), 1)
	_, err := reg.Get("2")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
	store.AssertNumberOfCalls(t, "Save", 1)
}

func TestRegistry_SetStatusIsUnguarded(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, []project.Project{{ID: "1", Title: "Done", Status: project.StatusCompleted}})
	store.On("Save", ctx, mock.Anything).Return(nil)

	// completed -> open has no real-world meaning and must still apply.
	reg.SetStatus(ctx, "1", project.StatusOpen)

	p, err := reg.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusOpen, p.Status)
}

func TestRegistry_AssignToForcesInProgress(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, []project.Project{{ID: "1", Title: "Site", Status: project.StatusOpen}})
	store.On("Save", ctx, mock.Anything).Return(nil)

	reg.AssignTo(ctx, "1", "Alice Smith")

	p, err := reg.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusInProgress, p.Status)
	require.Equal(t, "Alice Smith", p.AssignedTo)
}

func TestRegistry_SaveFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	reg, store := newRegistry(t, nil)
	store.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))

	created, err := reg.Create(ctx, project.Project{Title: "Best Effort"})
	require.NoError(t, err, "a failed write never surfaces to the caller")

	p, err := reg.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Best Effort", p.Title, "the in-memory mutation still applies")
}
