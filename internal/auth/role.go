// Package auth models the marketplace's tri-state caller role and which
// operations each role may invoke. The gate is a trust boundary only:
// roles are asserted, never verified, and the lifecycle engine itself
// performs no authorization.
package auth

// Role is the caller's asserted marketplace role.
type Role string

const (
	RoleNone    Role = ""
	RoleStudent Role = "student"
	RoleClient  Role = "client"
)

// Valid reports whether r is a recognized logged-in role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleClient
}

// clientTools are the dashboard-side operations.
var clientTools = map[string]struct{}{
	"list_projects":         {},
	"post_project":          {},
	"edit_project":          {},
	"delete_project":        {},
	"update_project_status": {},
	"list_applications":     {},
	"accept_application":    {},
	"reject_application":    {},
	"decide_application":    {},
	"open_dashboard":        {},
	"submit_feedback":       {},
}

// studentTools are the applicant-side operations.
var studentTools = map[string]struct{}{
	"browse_listings":      {},
	"submit_application":   {},
	"list_my_applications": {},
	"get_profile":          {},
	"update_profile":       {},
	"add_skill":            {},
	"remove_skill":         {},
}

// CanCall reports whether role may invoke the named tool.
func CanCall(role Role, tool string) bool {
	switch role {
	case RoleClient:
		_, ok := clientTools[tool]
		return ok
	case RoleStudent:
		_, ok := studentTools[tool]
		return ok
	default:
		return false
	}
}
