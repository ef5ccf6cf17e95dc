// Package model holds the resume data passed between classification, generation and export.
package model

import "strings"

// ResumeFieldSet is the structured candidate profile used as template input.
type ResumeFieldSet struct {
	Name           string            `json:"name" validate:"required"`
	Title          string            `json:"title,omitempty"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Links          []string          `json:"links,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience" validate:"min=1,dive"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Projects       []ProjectEntry    `json:"projects,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
}

// ExperienceEntry represents a work history entry. Either Company or Role must be set.
type ExperienceEntry struct {
	Company    string   `json:"company" validate:"required_without=Role"`
	Role       string   `json:"role" validate:"required_without=Company"`
	Location   string   `json:"location,omitempty"`
	Start      string   `json:"start,omitempty"`
	End        string   `json:"end,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationEntry represents an education entry.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
}

// ProjectEntry represents a notable project.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Clean returns a copy with surrounding whitespace trimmed and blank list
// entries dropped. Experience entries with neither company nor role are removed.
func (f ResumeFieldSet) Clean() ResumeFieldSet {
	out := ResumeFieldSet{
		Name:           trim(f.Name),
		Title:          trim(f.Title),
		Email:          trim(f.Email),
		Phone:          trim(f.Phone),
		Location:       trim(f.Location),
		Links:          cleanList(f.Links),
		Summary:        trim(f.Summary),
		Skills:         dedupeFold(cleanList(f.Skills)),
		Certifications: cleanList(f.Certifications),
	}
	for _, exp := range f.Experience {
		exp.Company = trim(exp.Company)
		exp.Role = trim(exp.Role)
		if exp.Company == "" && exp.Role == "" {
			continue
		}
		exp.Location = trim(exp.Location)
		exp.Start = trim(exp.Start)
		exp.End = trim(exp.End)
		exp.Highlights = cleanList(exp.Highlights)
		out.Experience = append(out.Experience, exp)
	}
	for _, edu := range f.Education {
		edu.Institution = trim(edu.Institution)
		edu.Degree = trim(edu.Degree)
		edu.Field = trim(edu.Field)
		edu.Start = trim(edu.Start)
		edu.End = trim(edu.End)
		if edu.Institution == "" && edu.Degree == "" {
			continue
		}
		out.Education = append(out.Education, edu)
	}
	for _, p := range f.Projects {
		p.Name = trim(p.Name)
		p.Description = trim(p.Description)
		p.Highlights = cleanList(p.Highlights)
		if p.Name == "" && p.Description == "" {
			continue
		}
		out.Projects = append(out.Projects, p)
	}
	return out
}

// IsZero reports whether no field carries any content.
func (f ResumeFieldSet) IsZero() bool {
	c := f.Clean()
	return c.Name == "" && c.Title == "" && c.Email == "" && c.Phone == "" && c.Location == "" &&
		c.Summary == "" && len(c.Links) == 0 && len(c.Skills) == 0 && len(c.Experience) == 0 &&
		len(c.Education) == 0 && len(c.Projects) == 0 && len(c.Certifications) == 0
}

// Headline renders "Role at Company" for an experience entry.
func (e ExperienceEntry) Headline() string {
	switch {
	case e.Role != "" && e.Company != "":
		return e.Role + " at " + e.Company
	case e.Role != "":
		return e.Role
	default:
		return e.Company
	}
}

// Period renders "Start - End" when either bound is known.
func (e ExperienceEntry) Period() string {
	switch {
	case e.Start != "" && e.End != "":
		return e.Start + " - " + e.End
	case e.Start != "":
		return e.Start + " - Present"
	default:
		return e.End
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func dedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
