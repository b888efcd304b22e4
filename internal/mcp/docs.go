package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `CampusWork is a two-sided project marketplace: clients post projects,
students apply to them.

Roles: every key resolves to a student or client role; each tool is
available to exactly one role.

Client flow: list_projects shows the dashboard. Review applications with
list_applications, then either act directly (accept_application /
reject_application) or record a decision from the review view with
decide_application and apply it by calling open_dashboard, which drains
the pending decision exactly once. Accepting assigns the project to the
student and moves it in-progress. update_project_status overwrites status
with no transition rules. submit_feedback is for completed projects.

Student flow: browse_listings (optionally by skill), submit_application,
list_my_applications, and the profile tools.

Projects persist across restarts; applications and profiles are demo
data and reset to their seeds.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "campuswork://guide/lifecycle",
		Name:        "lifecycle-guide",
		Title:       "Project lifecycle guide",
		Description: "How project and application statuses move",
		Content: `# Project lifecycle

Projects start open. Accepting an application (either path) moves the
project in-progress and binds assignedTo. completed and cancelled are
reached only through update_project_status, which accepts any move —
including out of completed or cancelled.

Applications start pending. accept_application removes the application;
a decision applied through open_dashboard keeps it and marks it
accepted. Rejection removes it on both paths. The rejected status exists
only as a display category.

A decision recorded with decide_application is delivered at most once:
the first open_dashboard consumes it, later calls find nothing.`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
