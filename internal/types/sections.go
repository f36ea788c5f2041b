// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Canonical resume section names produced by extraction.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// SectionNames lists the canonical sections in display order.
func SectionNames() []string {
	return []string{SectionSummary, SectionExperience, SectionEducation, SectionSkills, SectionProjects}
}

// SectionMap maps canonical section names to their raw text content.
type SectionMap map[string]string

// NonEmptyCount returns the number of sections with non-blank content.
func (m SectionMap) NonEmptyCount() int {
	count := 0
	for _, name := range SectionNames() {
		if strings.TrimSpace(m[name]) != "" {
			count++
		}
	}
	return count
}

// ContactInfo holds contact details extracted from the resume header.
type ContactInfo struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ProjectEntry is a single project parsed from the projects section.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
}

// ResumeProfile is the structured output of the section extraction stage.
type ResumeProfile struct {
	FullText    string         `json:"-"`
	Sections    SectionMap     `json:"sections"`
	Contact     ContactInfo    `json:"contact"`
	Skills      []string       `json:"skills"`
	Projects    []ProjectEntry `json:"projects"`
	Keywords    []string       `json:"keywords"`
	ActionVerbs []string       `json:"action_verbs"`
}
