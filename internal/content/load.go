// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML content file. Top-level keys missing from the file
// keep their built-in values, so a file may override just the projects.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Content, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and means "all defaults".
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return c, nil
}

// Marshal renders c as YAML, the format LoadFile accepts.
func Marshal(c *Content) ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks the tables the page and the scroll helper depend on.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return errors.New("profile name is required")
	}
	if len(c.Navigation) == 0 {
		return errors.New("at least one navigation target is required")
	}

	for i, n := range c.Navigation {
		if n.ID == "" {
			return fmt.Errorf("navigation %d: id is required", i+1)
		}
		if n.Label == "" {
			return fmt.Errorf("navigation %d (%s): label is required", i+1, n.ID)
		}
	}
	ids := lo.Map(c.Navigation, func(n NavigationTarget, _ int) string { return n.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return fmt.Errorf("duplicate navigation ids: %s", strings.Join(dups, ", "))
	}
	if _, ok := c.Section("contact"); !ok {
		return errors.New("navigation must include the contact section")
	}

	if c.Scroll.Duration < 0 {
		return fmt.Errorf("scroll duration must not be negative, got %s", c.Scroll.Duration)
	}

	for i, s := range c.Skills {
		if s.Category == "" {
			return fmt.Errorf("skill category %d: name is required", i+1)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d: title is required", i+1)
		}
	}
	titles := lo.Map(c.Projects, func(p Project, _ int) string { return p.Title })
	if dups := lo.FindDuplicates(titles); len(dups) > 0 {
		return fmt.Errorf("duplicate project titles: %s", strings.Join(dups, ", "))
	}
	return nil
}

// SectionIDs lists navigation ids in display order.
func (c *Content) SectionIDs() []string {
	return lo.Map(c.Navigation, func(n NavigationTarget, _ int) string { return n.ID })
}
