package mcp

import (
	"context"

	"github.com/campuswork/campuswork/internal/auth"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools wires every tool to the handler, with role gating and
// domain error mapping applied uniformly.
func registerTools(server *sdkmcp.Server, h *Handler) {
	// Client-role tools
	addTool(server, "list_projects",
		"List the client's projects in posting order", h.listProjects)
	addTool(server, "post_project",
		"Post a new project to the marketplace", h.postProject)
	addTool(server, "edit_project",
		"Edit fields of an existing project (silent no-op for unknown ids)", h.editProject)
	addTool(server, "delete_project",
		"Delete a project posting", h.deleteProject)
	addTool(server, "update_project_status",
		"Manually overwrite a project's status; any status may follow any other", h.updateProjectStatus)
	addTool(server, "list_applications",
		"List applications, optionally filtered by project", h.listApplications)
	addTool(server, "accept_application",
		"Accept an application from the list: assigns the project and removes the application", h.acceptApplication)
	addTool(server, "reject_application",
		"Reject an application from the list: removes it, leaving the project untouched", h.rejectApplication)
	addTool(server, "decide_application",
		"Record an accept/reject decision from the application review view; it is applied on the next open_dashboard", h.decideApplication)
	addTool(server, "open_dashboard",
		"Enter the dashboard: applies at most one pending decision and returns current state", h.openDashboard)
	addTool(server, "submit_feedback",
		"Submit a 1-5 rating with comments for a completed project", h.submitFeedback)

	// Student-role tools
	addTool(server, "browse_listings",
		"Browse available project listings, optionally fuzzy-matched by skill", h.browseListings)
	addTool(server, "submit_application",
		"Apply to a project", h.submitApplication)
	addTool(server, "list_my_applications",
		"List the student's submitted applications", h.listMyApplications)
	addTool(server, "get_profile",
		"Get the student profile", h.getProfile)
	addTool(server, "update_profile",
		"Update student profile fields (empty fields are left unchanged)", h.updateProfile)
	addTool(server, "add_skill",
		"Add a skill to the student profile", h.addSkill)
	addTool(server, "remove_skill",
		"Remove a skill from the student profile", h.removeSkill)
}

func addTool[In, Out any](server *sdkmcp.Server, name, description string, fn func(ctx context.Context, in In) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		var zero Out
		if !auth.CanCall(getRole(ctx), name) {
			return nil, zero, errUnauthorized(name)
		}
		out, err := fn(ctx, in)
		if err != nil {
			if apiErr := MapError(err); apiErr != nil {
				return nil, zero, apiErr
			}
			return nil, zero, err
		}
		return nil, out, nil
	})
}
