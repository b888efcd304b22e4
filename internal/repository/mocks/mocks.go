package mocks

import (
	"context"

	"github.com/campuswork/campuswork/internal/domain/lifecycle"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectStore is a mock for repository.ProjectStore.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) Load(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]project.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectStore) Save(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// FeedbackSink is a mock for lifecycle.FeedbackSink.
type FeedbackSink struct {
	mock.Mock
}

func (m *FeedbackSink) Submit(ctx context.Context, fb lifecycle.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}
