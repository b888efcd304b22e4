// Package student holds the student profile. Like applications, profiles
// are demo data: in-memory only, reset to the seed on restart.
package student

import (
	"errors"
	"strings"
	"sync"
)

// ErrSkillExists indicates the skill is already on the profile.
var ErrSkillExists = errors.New("skill already present")

// ShowcaseProject is a portfolio entry on a profile.
type ShowcaseProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Profile is a student's public profile.
type Profile struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Location       string            `json:"location"`
	Major          string            `json:"major"`
	GraduationYear string            `json:"graduationYear"`
	Skills         []string          `json:"skills"`
	Bio            string            `json:"bio"`
	GPA            string            `json:"gpa"`
	Projects       []ShowcaseProject `json:"projects"`
}

// Registry holds the current profile.
type Registry struct {
	mu      sync.Mutex
	profile Profile
}

// NewRegistry creates a registry seeded with profile.
func NewRegistry(profile Profile) *Registry {
	return &Registry{profile: profile}
}

// Get returns the current profile.
func (r *Registry) Get() Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cloneLocked()
}

// Update replaces the editable fields of the profile. Empty fields are
// left unchanged; skills and showcase projects are managed separately.
func (r *Registry) Update(p Profile) Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(&r.profile.Name, p.Name)
	set(&r.profile.Email, p.Email)
	set(&r.profile.Phone, p.Phone)
	set(&r.profile.Location, p.Location)
	set(&r.profile.Major, p.Major)
	set(&r.profile.GraduationYear, p.GraduationYear)
	set(&r.profile.Bio, p.Bio)
	set(&r.profile.GPA, p.GPA)
	return r.cloneLocked()
}

// AddSkill appends a skill, rejecting duplicates.
func (r *Registry) AddSkill(skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.profile.Skills {
		if strings.EqualFold(s, skill) {
			return ErrSkillExists
		}
	}
	r.profile.Skills = append(r.profile.Skills, skill)
	return nil
}

// RemoveSkill deletes a skill. No-op if absent.
func (r *Registry) RemoveSkill(skill string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.profile.Skills {
		if strings.EqualFold(s, skill) {
			r.profile.Skills = append(r.profile.Skills[:i], r.profile.Skills[i+1:]...)
			return
		}
	}
}

func (r *Registry) cloneLocked() Profile {
	p := r.profile
	p.Skills = append([]string(nil), r.profile.Skills...)
	p.Projects = append([]ShowcaseProject(nil), r.profile.Projects...)
	return p
}
