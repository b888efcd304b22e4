package lifecycle

import (
	"context"
	"log/slog"

	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/mailbox"
)

// Engine owns both registries and enforces the coupling between the
// project and application lifecycles: accepting an application forces the
// project in-progress and binds it to the student.
//
// Accepting has two deliberately distinct paths. The list path removes
// the application outright; the message path keeps it and marks it
// accepted. Both reject paths remove it. This asymmetry matches the
// entry points it was modeled on and is not to be unified here.
type Engine struct {
	projects *project.Registry
	apps     *application.Registry
	inbox    *mailbox.Mailbox
	feedback FeedbackSink
	logger   *slog.Logger
}

// NewEngine creates a lifecycle engine.
func NewEngine(projects *project.Registry, apps *application.Registry, inbox *mailbox.Mailbox, feedback FeedbackSink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		projects: projects,
		apps:     apps,
		inbox:    inbox,
		feedback: feedback,
		logger:   logger,
	}
}

// AcceptViaList accepts an application from the dashboard list: the
// project is assigned to the student (status forced in-progress) and the
// application is removed entirely. A dangling project reference makes the
// project side a no-op; the removal still happens.
func (e *Engine) AcceptViaList(ctx context.Context, app application.Application) {
	e.projects.AssignTo(ctx, app.ProjectID, app.StudentName)
	e.apps.Remove(app.ID)
	e.logger.Info("application accepted", "application_id", app.ID, "project_id", app.ProjectID, "student", app.StudentName)
}

// RejectViaList removes an application. The project is untouched.
func (e *Engine) RejectViaList(ctx context.Context, applicationID string) {
	e.apps.Remove(applicationID)
	e.logger.Info("application rejected", "application_id", applicationID)
}

// AcceptViaMessage applies an accept decision carried by a cross-view
// message. The project side matches AcceptViaList, but the application
// survives with its status overwritten to accepted.
func (e *Engine) AcceptViaMessage(ctx context.Context, msg mailbox.Message) {
	e.projects.AssignTo(ctx, msg.ProjectID, msg.StudentName)
	e.apps.SetStatus(msg.ApplicationID, application.StatusAccepted)
	e.logger.Info("application accepted", "application_id", msg.ApplicationID, "project_id", msg.ProjectID, "student", msg.StudentName)
}

// RejectViaMessage removes the application named by the message, same as
// RejectViaList.
func (e *Engine) RejectViaMessage(ctx context.Context, msg mailbox.Message) {
	e.apps.Remove(msg.ApplicationID)
	e.logger.Info("application rejected", "application_id", msg.ApplicationID)
}

// DrainInbox consumes at most one pending decision message and applies
// it. The message is taken out of the slot before the transition runs, so
// a re-entry mid-apply finds the slot empty and does nothing. Returns
// true when a message was applied.
func (e *Engine) DrainInbox(ctx context.Context) bool {
	msg, ok := e.inbox.Drain()
	if !ok {
		return false
	}
	switch msg.Action {
	case mailbox.ActionAccept:
		e.AcceptViaMessage(ctx, msg)
	case mailbox.ActionReject:
		e.RejectViaMessage(ctx, msg)
	default:
		e.logger.Warn("dropping message with unknown action", "action", msg.Action, "application_id", msg.ApplicationID)
	}
	return true
}

// ManualStatusEdit overwrites a project's status with no transition
// validation: any declared status may follow any other, including moves
// out of completed or cancelled. The permissiveness is intentional.
func (e *Engine) ManualStatusEdit(ctx context.Context, projectID string, status project.Status) {
	e.projects.SetStatus(ctx, projectID, status)
}

// SubmitFeedback hands feedback to the sink. It never mutates project or
// application state; whether the project is completed is the caller's
// gate, not enforced here.
func (e *Engine) SubmitFeedback(ctx context.Context, projectID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return e.feedback.Submit(ctx, Feedback{
		ProjectID: projectID,
		Rating:    rating,
		Comment:   comment,
	})
}
