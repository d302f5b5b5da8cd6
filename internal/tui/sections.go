// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/tui/components/card"
	"github.com/noldarim/portfolio/internal/tui/layout"
	"github.com/noldarim/portfolio/internal/viewstate"
)

// Section identifiers shared with the content navigation table.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// sectionRenderer turns content tables into terminal text for one theme and
// width. The glamour renderer is rebuilt whenever either changes.
type sectionRenderer struct {
	theme  viewstate.Theme
	width  int
	styles layout.Styles
	md     *glamour.TermRenderer
}

func newSectionRenderer(theme viewstate.Theme, width int) *sectionRenderer {
	r := &sectionRenderer{theme: theme, width: width, styles: layout.NewStyles(theme)}
	style := "dark"
	if theme == viewstate.ThemeLight {
		style = "light"
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		getLog().Warn().Err(err).Msg("Markdown renderer unavailable, falling back to plain text")
	} else {
		r.md = md
	}
	return r
}

// Render returns the body of section id.
func (r *sectionRenderer) Render(c *content.Content, id string) string {
	switch id {
	case SectionHome:
		return r.home(c)
	case SectionAbout:
		return r.about(c)
	case SectionSkills:
		return r.skills(c)
	case SectionProjects:
		return r.projects(c)
	}
	return r.styles.Muted.Render(fmt.Sprintf("Nothing to show for %q", id))
}

func (r *sectionRenderer) home(c *content.Content) string {
	p := c.Profile
	links := lo.Map(p.Links, func(l content.SocialLink, _ int) string {
		return r.styles.HelpKey.Render(l.Label) + " " + r.styles.Muted.Render(l.URL)
	})

	name := lipgloss.NewStyle().Foreground(r.styles.Palette.Primary).Bold(true).Render(p.Name)
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Muted.Render("Hi, I'm"),
		name,
		r.styles.Title.Render(p.Tagline),
		"",
		strings.Join(links, "\n"),
	))
}

func (r *sectionRenderer) markdown(src string) string {
	if r.md == nil {
		return lipgloss.NewStyle().Width(max(r.width-4, 20)).Render(src)
	}
	out, err := r.md.Render(src)
	if err != nil {
		getLog().Warn().Err(err).Msg("Markdown render failed")
		return src
	}
	return strings.TrimRight(out, "\n")
}

func (r *sectionRenderer) about(c *content.Content) string {
	var b strings.Builder
	b.WriteString("# About Me\n\n")
	for _, para := range c.Profile.About {
		b.WriteString(para)
		b.WriteString("\n\n")
	}

	if len(c.Education) > 0 {
		b.WriteString("## Education\n\n")
		for _, e := range c.Education {
			fmt.Fprintf(&b, "- **%s**, %s (%s)", e.Degree, e.Institution, e.Period)
			if e.Grade != "" {
				fmt.Fprintf(&b, ", %s", e.Grade)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(c.CodingProfiles) > 0 {
		b.WriteString("## Coding Profiles\n\n")
		for _, cp := range c.CodingProfiles {
			fmt.Fprintf(&b, "- [%s %s](%s)\n", cp.Site, cp.Handle, cp.URL)
		}
	}
	return r.markdown(b.String())
}

func (r *sectionRenderer) badges(items []string) []string {
	return lo.Map(items, func(s string, _ int) string {
		return r.styles.Badge.Render(s)
	})
}

func (r *sectionRenderer) skills(c *content.Content) string {
	style := card.StyleFor(r.styles.Palette, r.width-4)
	cards := make([]string, 0, len(c.Skills)+1)
	cards = append(cards, r.styles.SectionHeader.Render("Skills"))
	for _, cat := range c.Skills {
		cards = append(cards, card.Render(cat.Category, "", r.badges(cat.Items), style))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func (r *sectionRenderer) projects(c *content.Content) string {
	style := card.StyleFor(r.styles.Palette, r.width-4)
	cards := make([]string, 0, len(c.Projects)+1)
	cards = append(cards, r.styles.SectionHeader.Render("Projects"))
	for _, p := range c.Projects {
		body := p.Description
		if p.GitHub != "" {
			body += "\n" + r.styles.Muted.Render(p.GitHub)
		}
		cards = append(cards, card.Render(p.Title, body, r.badges(p.Technologies), style))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}
