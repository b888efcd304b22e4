package lifecycle_test

import (
	"context"
	"testing"

	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/lifecycle"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/mailbox"
	"github.com/campuswork/campuswork/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	projects *project.Registry
	apps     *application.Registry
	inbox    *mailbox.Mailbox
	sink     *mocks.FeedbackSink
	engine   *lifecycle.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := &mocks.ProjectStore{}
	store.On("Load", ctx).Return([]project.Project{
		{ID: "1", Title: "Website Development", Status: project.StatusOpen, Applications: 3},
		{ID: "2", Title: "Mobile App Design", Status: project.StatusInProgress, Applications: 5, AssignedTo: "John Doe"},
	}, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	projects := project.NewRegistry(store, nil)
	require.NoError(t, projects.Load(ctx))

	apps := application.NewRegistry([]application.Application{
		{ID: "a1", ProjectID: "1", ProjectTitle: "Website Development", StudentName: "Alice Smith", Status: application.StatusPending},
		{ID: "a2", ProjectID: "1", ProjectTitle: "Website Development", StudentName: "Bob Johnson", Status: application.StatusPending},
	})

	inbox := mailbox.New()
	sink := &mocks.FeedbackSink{}
	engine := lifecycle.NewEngine(projects, apps, inbox, sink, nil)

	return &fixture{projects: projects, apps: apps, inbox: inbox, sink: sink, engine: engine}
}

func TestEngine_AcceptViaListRemovesApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	app, err := f.apps.Get("a1")
	require.NoError(t, err)
	f.engine.AcceptViaList(ctx, app)

	p, err := f.projects.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusInProgress, p.Status)
	require.Equal(t, "Alice Smith", p.AssignedTo)

	_, err = f.apps.Get("a1")
	require.ErrorIs(t, err, application.ErrApplicationNotFound, "the list path removes the application")
}

func TestEngine_AcceptViaMessageKeepsApplication(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.engine.AcceptViaMessage(ctx, mailbox.Message{
		Action:        mailbox.ActionAccept,
		ApplicationID: "a1",
		ProjectID:     "1",
		StudentName:   "Alice Smith",
	})

	p, err := f.projects.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusInProgress, p.Status)
	require.Equal(t, "Alice Smith", p.AssignedTo)

	app, err := f.apps.Get("a1")
	require.NoError(t, err, "the message path keeps the application")
	require.Equal(t, application.StatusAccepted, app.Status)
}

func TestEngine_RejectRemovesOnBothPaths(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.engine.RejectViaList(ctx, "a1")
	_, err := f.apps.Get("a1")
	require.ErrorIs(t, err, application.ErrApplicationNotFound)

	f.engine.RejectViaMessage(ctx, mailbox.Message{Action: mailbox.ActionReject, ApplicationID: "a2", ProjectID: "1"})
	_, err = f.apps.Get("a2")
	require.ErrorIs(t, err, application.ErrApplicationNotFound)

	p, err := f.projects.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusOpen, p.Status, "rejection leaves the project untouched")
	require.Empty(t, p.AssignedTo)
}

func TestEngine_AcceptWithDanglingProjectReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.engine.AcceptViaList(ctx, application.Application{
		ID:          "a1",
		ProjectID:   "gone",
		StudentName: "Alice Smith",
	})

	// The project side is a no-op; the removal still happens.
	_, err := f.apps.Get("a1")
	require.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestEngine_DrainInboxAppliesOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.inbox.Post(mailbox.Message{
		Action:        mailbox.ActionAccept,
		ApplicationID: "a1",
		ProjectID:     "1",
		StudentName:   "Alice Smith",
	})

	require.True(t, f.engine.DrainInbox(ctx))

	app, err := f.apps.Get("a1")
	require.NoError(t, err)
	require.Equal(t, application.StatusAccepted, app.Status)

	// A second drain (re-entry) must not reapply anything.
	require.False(t, f.engine.DrainInbox(ctx))
}

func TestEngine_DrainInboxRejectPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.inbox.Post(mailbox.Message{Action: mailbox.ActionReject, ApplicationID: "a2", ProjectID: "1"})

	require.True(t, f.engine.DrainInbox(ctx))
	_, err := f.apps.Get("a2")
	require.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestEngine_DrainInboxUnknownActionIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.inbox.Post(mailbox.Message{Action: "escalate", ApplicationID: "a1"})

	require.True(t, f.engine.DrainInbox(ctx), "the slot is still consumed")
	app, err := f.apps.Get("a1")
	require.NoError(t, err)
	require.Equal(t, application.StatusPending, app.Status)
}

func TestEngine_ManualStatusEditIsPermissive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.engine.ManualStatusEdit(ctx, "1", project.StatusCompleted)
	f.engine.ManualStatusEdit(ctx, "1", project.StatusOpen)

	p, err := f.projects.Get("1")
	require.NoError(t, err)
	require.Equal(t, project.StatusOpen, p.Status, "completed -> open is allowed")
}

func TestEngine_ManualStatusEditKeepsAssignee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.engine.ManualStatusEdit(ctx, "2", project.StatusCompleted)

	p, err := f.projects.Get("2")
	require.NoError(t, err)
	require.Equal(t, "John Doe", p.AssignedTo, "no transition clears assignedTo")
}

func TestEngine_SubmitFeedback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	want := lifecycle.Feedback{ProjectID: "2", Rating: 4, Comment: "solid work"}
	f.sink.On("Submit", ctx, want).Return(nil)

	require.NoError(t, f.engine.SubmitFeedback(ctx, "2", 4, "solid work"))
	f.sink.AssertCalled(t, "Submit", ctx, want)

	p, err := f.projects.Get("2")
	require.NoError(t, err)
	require.Equal(t, project.StatusInProgress, p.Status, "feedback mutates nothing")
}

func TestEngine_SubmitFeedbackRatingBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.engine.SubmitFeedback(ctx, "2", 0, ""), lifecycle.ErrInvalidRating)
	require.ErrorIs(t, f.engine.SubmitFeedback(ctx, "2", 6, ""), lifecycle.ErrInvalidRating)
	f.sink.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}
