package project

// Status represents the lifecycle status of a project
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether s is one of the declared status literals.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project represents a posted unit of work with a budget and deadline.
// JSON field names match the persisted blob format: Applications is the
// informational application count and Deadline is a plain YYYY-MM-DD date.
type Project struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Budget       float64 `json:"budget"`
	Deadline     string  `json:"deadline"`
	Status       Status  `json:"status"`
	Applications int     `json:"applications"`
	AssignedTo   string  `json:"assignedTo,omitempty"`
}
