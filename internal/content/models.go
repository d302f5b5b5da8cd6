// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the portfolio's static tables: navigation targets,
// skills, projects, education and profile copy. Tables are immutable once
// loaded; a reload swaps in a whole new Content value.
package content

import (
	"encoding/json"
	"time"
)

// Content is one complete, validated snapshot of the portfolio tables.
type Content struct {
	Profile        Profile            `yaml:"profile" json:"profile"`
	Navigation     []NavigationTarget `yaml:"navigation" json:"navigation"`
	Scroll         ScrollSpec         `yaml:"scroll" json:"scroll"`
	Skills         []SkillCategory    `yaml:"skills" json:"skills"`
	CodingProfiles []CodingProfile    `yaml:"coding_profiles" json:"coding_profiles"`
	Projects       []Project          `yaml:"projects" json:"projects"`
	Education      []Education        `yaml:"education" json:"education"`
}

// NavigationTarget identifies a scroll destination.
type NavigationTarget struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// ScrollSpec is what the client-side scroll helper needs for every link.
type ScrollSpec struct {
	Offset   int           `yaml:"offset" json:"offset"`
	Duration time.Duration `yaml:"duration" json:"-"`
	Smooth   bool          `yaml:"smooth" json:"smooth"`
	Spy      bool          `yaml:"spy" json:"spy"`
}

// MarshalJSON reports the duration in milliseconds, the unit browsers use.
func (s ScrollSpec) MarshalJSON() ([]byte, error) {
	type alias ScrollSpec
	return json.Marshal(struct {
		alias
		DurationMS int64 `json:"duration_ms"`
	}{alias(s), s.Duration.Milliseconds()})
}

// SkillCategory groups skill badges under a heading.
type SkillCategory struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

// Project is one showcase card.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image"`
	GitHub       string   `yaml:"github" json:"github"`
}

// Profile is the hero and about copy.
type Profile struct {
	Name    string       `yaml:"name" json:"name"`
	Tagline string       `yaml:"tagline" json:"tagline"`
	About   []string     `yaml:"about" json:"about"`
	Links   []SocialLink `yaml:"links" json:"links"`
}

// SocialLink is an external profile shown under the hero.
type SocialLink struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Period      string `yaml:"period" json:"period"`
	Grade       string `yaml:"grade" json:"grade"`
}

// CodingProfile links to a competitive programming profile.
type CodingProfile struct {
	Site   string `yaml:"site" json:"site"`
	Handle string `yaml:"handle" json:"handle"`
	URL    string `yaml:"url" json:"url"`
}

// Section returns the navigation target with the given id.
func (c *Content) Section(id string) (NavigationTarget, bool) {
	for _, n := range c.Navigation {
		if n.ID == id {
			return n, true
		}
	}
	return NavigationTarget{}, false
}
