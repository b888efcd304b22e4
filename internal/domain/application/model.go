package application

// Status represents the review status of an application.
//
// StatusRejected is declared for display purposes only: rejection removes
// the application outright, so no operation ever stores it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the declared status literals.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a student's bid on a project. ProjectTitle is a
// denormalized copy of the project title at creation time and may drift
// from the live title. ProjectID is not a checked reference; dangling
// values are tolerated everywhere.
type Application struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	ProjectTitle string `json:"projectTitle"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	Proposal     string `json:"proposal"`
	Status       Status `json:"status"`
	AppliedDate  string `json:"appliedDate,omitempty"`
}
