package mcp

import (
	"context"
	"errors"

	"github.com/campuswork/campuswork/internal/catalog"
	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/lifecycle"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/domain/student"
	"github.com/campuswork/campuswork/internal/mailbox"
)

// Handler implements the tool operations against the lifecycle manager.
type Handler struct {
	projects *project.Registry
	apps     *application.Registry
	engine   *lifecycle.Engine
	inbox    *mailbox.Mailbox
	profile  *student.Registry
}

// NewHandler creates a tool handler.
func NewHandler(projects *project.Registry, apps *application.Registry, engine *lifecycle.Engine, inbox *mailbox.Mailbox, profile *student.Registry) *Handler {
	return &Handler{
		projects: projects,
		apps:     apps,
		engine:   engine,
		inbox:    inbox,
		profile:  profile,
	}
}

// --- client-side tools ---

func (h *Handler) listProjects(ctx context.Context, _ EmptyParams) (ProjectsResult, error) {
	return ProjectsResult{Projects: h.projects.List()}, nil
}

func (h *Handler) postProject(ctx context.Context, req PostProjectParams) (project.Project, error) {
	return h.projects.Create(ctx, project.Project{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Status:      project.StatusOpen,
	})
}

func (h *Handler) editProject(ctx context.Context, req EditProjectParams) (EditProjectResult, error) {
	h.projects.Update(ctx, req.ID, func(p *project.Project) {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Budget != nil {
			p.Budget = *req.Budget
		}
		if req.Deadline != nil {
			p.Deadline = *req.Deadline
		}
	})
	p, err := h.projects.Get(req.ID)
	if errors.Is(err, project.ErrProjectNotFound) {
		// Absent ids are a silent no-op, not an error.
		return EditProjectResult{Applied: false}, nil
	}
	if err != nil {
		return EditProjectResult{}, err
	}
	return EditProjectResult{Applied: true, Project: &p}, nil
}

func (h *Handler) deleteProject(ctx context.Context, req DeleteProjectParams) (Ack, error) {
	h.projects.Delete(ctx, req.ID)
	return Ack{OK: true}, nil
}

func (h *Handler) updateProjectStatus(ctx context.Context, req UpdateProjectStatusParams) (Ack, error) {
	status := project.Status(req.Status)
	if !status.Valid() {
		return Ack{}, project.ErrInvalidInput
	}
	h.engine.ManualStatusEdit(ctx, req.ID, status)
	return Ack{OK: true}, nil
}

func (h *Handler) listApplications(ctx context.Context, req ListApplicationsParams) (ApplicationsResult, error) {
	if req.ProjectID != "" {
		return ApplicationsResult{Applications: h.apps.ListByProject(req.ProjectID)}, nil
	}
	return ApplicationsResult{Applications: h.apps.List()}, nil
}

func (h *Handler) acceptApplication(ctx context.Context, req AcceptApplicationParams) (Ack, error) {
	app, err := h.apps.Get(req.ID)
	if err != nil {
		return Ack{}, err
	}
	h.engine.AcceptViaList(ctx, app)
	return Ack{OK: true}, nil
}

func (h *Handler) rejectApplication(ctx context.Context, req RejectApplicationParams) (Ack, error) {
	h.engine.RejectViaList(ctx, req.ID)
	return Ack{OK: true}, nil
}

func (h *Handler) decideApplication(ctx context.Context, req DecideApplicationParams) (Ack, error) {
	action := mailbox.Action(req.Action)
	if action != mailbox.ActionAccept && action != mailbox.ActionReject {
		return Ack{}, application.ErrInvalidInput
	}
	h.inbox.Post(mailbox.Message{
		Action:        action,
		ApplicationID: req.ApplicationID,
		ProjectID:     req.ProjectID,
		StudentName:   req.StudentName,
	})
	return Ack{OK: true}, nil
}

func (h *Handler) openDashboard(ctx context.Context, _ EmptyParams) (DashboardResult, error) {
	applied := h.engine.DrainInbox(ctx)
	return DashboardResult{
		DecisionApplied: applied,
		Projects:        h.projects.List(),
		Applications:    h.apps.List(),
	}, nil
}

func (h *Handler) submitFeedback(ctx context.Context, req SubmitFeedbackParams) (Ack, error) {
	if err := h.engine.SubmitFeedback(ctx, req.ProjectID, req.Rating, req.Comment); err != nil {
		return Ack{}, err
	}
	return Ack{OK: true}, nil
}

// --- student-side tools ---

func (h *Handler) browseListings(ctx context.Context, req BrowseListingsParams) (ListingsResult, error) {
	return ListingsResult{Listings: catalog.MatchListings(req.Skill)}, nil
}

func (h *Handler) submitApplication(ctx context.Context, req SubmitApplicationParams) (application.Application, error) {
	// The project title is denormalized at creation time; a dangling
	// project reference leaves it empty rather than failing.
	title := ""
	if p, err := h.projects.Get(req.ProjectID); err == nil {
		title = p.Title
	}
	return h.apps.Add(application.Application{
		ProjectID:    req.ProjectID,
		ProjectTitle: title,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		Proposal:     req.Proposal,
		Status:       application.StatusPending,
	})
}

func (h *Handler) listMyApplications(ctx context.Context, req ListMyApplicationsParams) (MyApplicationsResult, error) {
	// Seeded demo entries first, then live submissions. Budget and
	// deadline for live entries come from the referenced project when it
	// still exists.
	out := catalog.TrackedApplications()
	for _, a := range h.apps.List() {
		if req.StudentEmail != "" && a.StudentEmail != req.StudentEmail {
			continue
		}
		tracked := catalog.TrackedApplication{
			ID:           a.ID,
			ProjectID:    a.ProjectID,
			ProjectTitle: a.ProjectTitle,
			Status:       a.Status,
			AppliedDate:  a.AppliedDate,
		}
		if p, err := h.projects.Get(a.ProjectID); err == nil {
			tracked.Budget = p.Budget
			tracked.Deadline = p.Deadline
		}
		out = append(out, tracked)
	}
	return MyApplicationsResult{Applications: out}, nil
}

func (h *Handler) getProfile(ctx context.Context, _ EmptyParams) (ProfileResult, error) {
	return ProfileResult{Profile: h.profile.Get()}, nil
}

func (h *Handler) updateProfile(ctx context.Context, req UpdateProfileParams) (ProfileResult, error) {
	updated := h.profile.Update(student.Profile{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Location:       req.Location,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Bio:            req.Bio,
		GPA:            req.GPA,
	})
	return ProfileResult{Profile: updated}, nil
}

func (h *Handler) addSkill(ctx context.Context, req SkillParams) (ProfileResult, error) {
	if err := h.profile.AddSkill(req.Skill); err != nil {
		return ProfileResult{}, err
	}
	return ProfileResult{Profile: h.profile.Get()}, nil
}

func (h *Handler) removeSkill(ctx context.Context, req SkillParams) (ProfileResult, error) {
	h.profile.RemoveSkill(req.Skill)
	return ProfileResult{Profile: h.profile.Get()}, nil
}
