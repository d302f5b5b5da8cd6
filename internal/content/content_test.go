// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, []string{"home", "about", "skills", "projects", "contact"}, c.SectionIDs())
	assert.Equal(t, -100, c.Scroll.Offset)
	assert.Equal(t, 500*time.Millisecond, c.Scroll.Duration)
	assert.Len(t, c.Skills, 5)
	assert.Len(t, c.Projects, 2)
	assert.Len(t, c.Education, 2)
	assert.Equal(t, "Kavi Raj Vedi", c.Profile.Name)

	t.Run("returns independent copies", func(t *testing.T) {
		a, b := Default(), Default()
		a.Navigation[0].Label = "Changed"
		assert.Equal(t, "Home", b.Navigation[0].Label)
	})
}

func TestParse(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		c, err := Parse(nil)
		require.NoError(t, err)
		if diff := cmp.Diff(Default(), c); diff != "" {
			t.Errorf("content mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("partial override replaces only named tables", func(t *testing.T) {
		c, err := Parse([]byte(`
projects:
  - title: Portfolio Server
    description: This site, in Go.
    technologies: [Go, chi]
    github: https://github.com/example/portfolio
scroll:
  offset: -80
  duration: 300ms
  smooth: true
`))
		require.NoError(t, err)
		require.Len(t, c.Projects, 1)
		assert.Equal(t, "Portfolio Server", c.Projects[0].Title)
		assert.Equal(t, []string{"Go", "chi"}, c.Projects[0].Technologies)
		assert.Equal(t, 300*time.Millisecond, c.Scroll.Duration)
		assert.Equal(t, -80, c.Scroll.Offset)
		assert.Equal(t, Default().Skills, c.Skills)
	})

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{name: "unknown key", yaml: "projcts: []\n", want: "failed to parse content YAML"},
		{name: "duplicate nav", yaml: "navigation:\n  - {id: home, label: Home}\n  - {id: home, label: Again}\n  - {id: contact, label: Contact}\n", want: "duplicate navigation ids: home"},
		{name: "missing contact", yaml: "navigation:\n  - {id: home, label: Home}\n", want: "contact section"},
		{name: "empty nav id", yaml: "navigation:\n  - {id: '', label: Home}\n", want: "id is required"},
		{name: "untitled project", yaml: "projects:\n  - description: x\n", want: "title is required"},
		{name: "duplicate project", yaml: "projects:\n  - title: Blog\n  - title: Shop\n  - title: Blog\n", want: "duplicate project titles: Blog"},
		{name: "no name", yaml: "profile:\n  name: ' '\n", want: "profile name is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollSpecJSON(t *testing.T) {
	data, err := json.Marshal(Default().Scroll)
	require.NoError(t, err)
	assert.JSONEq(t, `{"offset":-100,"smooth":true,"spy":true,"duration_ms":500}`, string(data))
}

func TestStore(t *testing.T) {
	t.Run("built-in content", func(t *testing.T) {
		s, err := NewStore("")
		require.NoError(t, err)
		assert.Equal(t, 1, s.Version())
		assert.Equal(t, "Kavi Raj Vedi", s.Snapshot().Profile.Name)
	})

	t.Run("bad reload keeps previous snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: First\n"), 0644))

		s, err := NewStore(path)
		require.NoError(t, err)
		assert.Equal(t, "First", s.Snapshot().Profile.Name)

		require.NoError(t, os.WriteFile(path, []byte("navigation: [\n"), 0644))
		require.Error(t, s.Reload())
		assert.Equal(t, "First", s.Snapshot().Profile.Name)
		assert.Equal(t, 1, s.Version())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewStore(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Before\n"), 0644))

	s, err := NewStore(path)
	require.NoError(t, err)

	w, err := NewWatcher(s)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: After\n"), 0644))

	select {
	case v := <-w.Reloaded:
		assert.GreaterOrEqual(t, v, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("content was not reloaded")
	}
	assert.Equal(t, "After", s.Snapshot().Profile.Name)
}

func TestNewWatcher_RequiresFile(t *testing.T) {
	_, err := NewWatcher(NewStaticStore(Default()))
	require.Error(t, err)
}
