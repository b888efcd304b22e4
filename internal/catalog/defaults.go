// Package catalog holds the built-in demo data: the default project set
// merged on every load, the seeded applications, and the static listings
// students browse.
package catalog

import (
	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/domain/student"
)

// DefaultProjects returns the built-in project set. Order is fixed: the
// merge-on-load rule places these first and they win id collisions, so
// changing this slice changes what every load observes.
func DefaultProjects() []project.Project {
	return []project.Project{
		{
			ID:           "1",
			Title:        "Website Development",
			Description:  "Create a responsive website for a local business",
			Budget:       500,
			Deadline:     "2024-05-01",
			Status:       project.StatusOpen,
			Applications: 3,
		},
		{
			ID:           "2",
			Title:        "Mobile App Design",
			Description:  "Design UI/UX for a fitness tracking app",
			Budget:       800,
			Deadline:     "2024-05-15",
			Status:       project.StatusInProgress,
			Applications: 5,
			AssignedTo:   "John Doe",
		},
	}
}

// SeedApplications returns the applications the registry starts with.
func SeedApplications() []application.Application {
	return []application.Application{
		{
			ID:           "1",
			ProjectID:    "1",
			ProjectTitle: "Website Development",
			StudentName:  "Alice Smith",
			StudentEmail: "alice@college.edu",
			Proposal:     "I have experience in React and Node.js...",
			Status:       application.StatusPending,
		},
		{
			ID:           "2",
			ProjectID:    "1",
			ProjectTitle: "Website Development",
			StudentName:  "Bob Johnson",
			StudentEmail: "bob@college.edu",
			Proposal:     "I specialize in full-stack development...",
			Status:       application.StatusPending,
		},
	}
}

// TrackedApplication is the student-side view of a submitted
// application, carrying the listing's budget and deadline alongside the
// review status.
type TrackedApplication struct {
	ID           string             `json:"id"`
	ProjectID    string             `json:"projectId"`
	ProjectTitle string             `json:"projectTitle"`
	Status       application.Status `json:"status"`
	AppliedDate  string             `json:"appliedDate"`
	Budget       float64            `json:"budget"`
	Deadline     string             `json:"deadline"`
}

// TrackedApplications returns the demo student's seeded application
// view. The entries reference the browse listings, not the client's
// project set; the two views are deliberately disconnected demo data.
func TrackedApplications() []TrackedApplication {
	return []TrackedApplication{
		{
			ID:           "1",
			ProjectID:    "1",
			ProjectTitle: "Website Development for Local Restaurant",
			Status:       application.StatusPending,
			AppliedDate:  "2024-03-15",
			Budget:       500,
			Deadline:     "2024-05-15",
		},
		{
			ID:           "2",
			ProjectID:    "2",
			ProjectTitle: "Mobile App for Campus Events",
			Status:       application.StatusAccepted,
			AppliedDate:  "2024-03-10",
			Budget:       800,
			Deadline:     "2024-06-01",
		},
	}
}

// SeedProfile returns the demo student profile.
func SeedProfile() student.Profile {
	return student.Profile{
		Name:           "John Doe",
		Email:          "john.doe@university.edu",
		Phone:          "(555) 123-4567",
		Location:       "San Francisco, CA",
		Major:          "Computer Science",
		GraduationYear: "2025",
		Skills:         []string{"React", "Node.js", "Python", "Machine Learning", "UI/UX Design"},
		Bio:            "Passionate computer science student with a focus on web development and machine learning. Experienced in building full-stack applications and working with modern technologies.",
		GPA:            "3.8",
		Projects: []student.ShowcaseProject{
			{
				Title:        "E-commerce Platform",
				Description:  "Built a full-stack e-commerce platform using React and Node.js",
				Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
			},
			{
				Title:        "ML Image Recognition",
				Description:  "Developed an image recognition system using Python and TensorFlow",
				Technologies: []string{"Python", "TensorFlow", "OpenCV", "NumPy"},
			},
		},
	}
}
