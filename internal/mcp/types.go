package mcp

import (
	"github.com/campuswork/campuswork/internal/catalog"
	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/domain/student"
)

type EmptyParams struct{}

type Ack struct {
	OK bool `json:"ok"`
}

type PostProjectParams struct {
	ID          string  `json:"id,omitempty" jsonschema:"unique project identifier (optional, generated if not provided)"`
	Title       string  `json:"title" jsonschema:"project title"`
	Description string  `json:"description,omitempty" jsonschema:"project description"`
	Budget      float64 `json:"budget,omitempty" jsonschema:"non-negative budget amount"`
	Deadline    string  `json:"deadline,omitempty" jsonschema:"deadline date, YYYY-MM-DD"`
}

type EditProjectParams struct {
	ID          string   `json:"id" jsonschema:"project identifier"`
	Title       *string  `json:"title,omitempty" jsonschema:"new title"`
	Description *string  `json:"description,omitempty" jsonschema:"new description"`
	Budget      *float64 `json:"budget,omitempty" jsonschema:"new budget amount"`
	Deadline    *string  `json:"deadline,omitempty" jsonschema:"new deadline date, YYYY-MM-DD"`
}

type EditProjectResult struct {
	Applied bool             `json:"applied"`
	Project *project.Project `json:"project,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id" jsonschema:"project identifier"`
}

type UpdateProjectStatusParams struct {
	ID     string `json:"id" jsonschema:"project identifier"`
	Status string `json:"status" jsonschema:"new status (open, in-progress, completed, cancelled)"`
}

type ProjectsResult struct {
	Projects []project.Project `json:"projects"`
}

type ListApplicationsParams struct {
	ProjectID string `json:"project_id,omitempty" jsonschema:"filter by referenced project"`
}

type ApplicationsResult struct {
	Applications []application.Application `json:"applications"`
}

type AcceptApplicationParams struct {
	ID string `json:"id" jsonschema:"application identifier"`
}

type RejectApplicationParams struct {
	ID string `json:"id" jsonschema:"application identifier"`
}

type DecideApplicationParams struct {
	Action        string `json:"action" jsonschema:"decision, accept or reject"`
	ApplicationID string `json:"application_id" jsonschema:"application identifier"`
	ProjectID     string `json:"project_id" jsonschema:"referenced project identifier"`
	StudentName   string `json:"student_name" jsonschema:"applicant display name"`
}

type DashboardResult struct {
	DecisionApplied bool                      `json:"decision_applied"`
	Projects        []project.Project         `json:"projects"`
	Applications    []application.Application `json:"applications"`
}

type SubmitFeedbackParams struct {
	ProjectID string `json:"project_id" jsonschema:"project identifier"`
	Rating    int    `json:"rating" jsonschema:"rating from 1 to 5"`
	Comment   string `json:"comment,omitempty" jsonschema:"free-form comments"`
}

type BrowseListingsParams struct {
	Skill string `json:"skill,omitempty" jsonschema:"filter listings by skill (fuzzy match)"`
}

type ListingsResult struct {
	Listings []catalog.Listing `json:"listings"`
}

type SubmitApplicationParams struct {
	ProjectID    string `json:"project_id" jsonschema:"project to apply to"`
	StudentName  string `json:"student_name" jsonschema:"applicant display name"`
	StudentEmail string `json:"student_email,omitempty" jsonschema:"applicant email"`
	Proposal     string `json:"proposal,omitempty" jsonschema:"application proposal text"`
}

type ListMyApplicationsParams struct {
	StudentEmail string `json:"student_email,omitempty" jsonschema:"filter live submissions by applicant email"`
}

type MyApplicationsResult struct {
	Applications []catalog.TrackedApplication `json:"applications"`
}

type UpdateProfileParams struct {
	Name           string `json:"name,omitempty" jsonschema:"display name"`
	Email          string `json:"email,omitempty" jsonschema:"contact email"`
	Phone          string `json:"phone,omitempty" jsonschema:"phone number"`
	Location       string `json:"location,omitempty" jsonschema:"location"`
	Major          string `json:"major,omitempty" jsonschema:"field of study"`
	GraduationYear string `json:"graduation_year,omitempty" jsonschema:"expected graduation year"`
	Bio            string `json:"bio,omitempty" jsonschema:"short bio"`
	GPA            string `json:"gpa,omitempty" jsonschema:"grade point average"`
}

type SkillParams struct {
	Skill string `json:"skill" jsonschema:"skill name"`
}

type ProfileResult struct {
	Profile student.Profile `json:"profile"`
}
