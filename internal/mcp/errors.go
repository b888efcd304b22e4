package mcp

import (
	"errors"
	"fmt"

	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/lifecycle"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/domain/student"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Returns nil for errors
// with no dedicated code.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, application.ErrApplicationNotFound):
		return &APIError{Code: "APPLICATION_NOT_FOUND", Message: "application not found", RecoveryHint: "It may already have been accepted or rejected"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, application.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, lifecycle.ErrInvalidRating):
		return &APIError{Code: "INVALID_RATING", Message: "rating must be between 1 and 5"}
	case errors.Is(err, student.ErrSkillExists):
		return &APIError{Code: "SKILL_EXISTS", Message: "skill already present"}
	default:
		return nil
	}
}

func errUnauthorized(tool string) *APIError {
	return &APIError{
		Code:         "UNAUTHORIZED",
		Message:      fmt.Sprintf("current role may not call %s", tool),
		RecoveryHint: "Use a key for the matching role",
	}
}
