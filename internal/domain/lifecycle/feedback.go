package lifecycle

import (
	"context"
	"log/slog"
)

// Feedback is a client's rating of a completed project. Submitting it has
// no effect on project or application state; it is handed to a sink.
type Feedback struct {
	ProjectID string `json:"projectId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// FeedbackSink receives submitted feedback. The reporting backend is an
// external collaborator; only this contract is in scope.
type FeedbackSink interface {
	Submit(ctx context.Context, fb Feedback) error
}

// LogSink logs feedback and discards it.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Submit(_ context.Context, fb Feedback) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("feedback submitted", "project_id", fb.ProjectID, "rating", fb.Rating, "comment", fb.Comment)
	return nil
}
