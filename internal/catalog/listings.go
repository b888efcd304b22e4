package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Listing is a browsable project posting with the skills it calls for.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      float64  `json:"budget"`
	Deadline    string   `json:"deadline"`
	Skills      []string `json:"skills"`
}

// Listings returns the static browse catalog.
func Listings() []Listing {
	return []Listing{
		{
			ID:          "1",
			Title:       "Website Development for Local Restaurant",
			Description: "Looking for a student to develop a responsive website for a local restaurant. The website should include menu, reservation system, and contact information.",
			Budget:      500,
			Deadline:    "2024-05-15",
			Skills:      []string{"React", "Node.js", "MongoDB", "UI/UX Design"},
		},
		{
			ID:          "2",
			Title:       "Mobile App for Campus Events",
			Description: "Need a student to create a mobile app that helps students discover and track campus events. Features should include event calendar, notifications, and social sharing.",
			Budget:      800,
			Deadline:    "2024-06-01",
			Skills:      []string{"React Native", "Firebase", "JavaScript", "Mobile Development"},
		},
	}
}

// maxSkillDistance is the edit-distance tolerance for fuzzy skill
// matching, enough to absorb typos like "Reactt" or "node.js".
const maxSkillDistance = 2

// MatchListings returns the listings whose skills match the query,
// case-insensitively, by substring or small edit distance. An empty query
// matches everything.
func MatchListings(query string) []Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	all := Listings()
	if query == "" {
		return all
	}
	var out []Listing
	for _, l := range all {
		for _, skill := range l.Skills {
			if matchesSkill(query, strings.ToLower(skill)) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

func matchesSkill(query, skill string) bool {
	if strings.Contains(skill, query) {
		return true
	}
	return levenshtein.ComputeDistance(query, skill) <= maxSkillDistance
}
