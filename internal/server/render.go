// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/viewstate"
)

//go:embed web/templates/*.tmpl web/static/*
var webFS embed.FS

// PageData is what the page templates render.
type PageData struct {
	Theme    string
	MenuOpen bool
	Content  *content.Content
	Contact  contact.Snapshot
}

// newPageData returns the state of a freshly loaded page.
func newPageData(c *content.Content) PageData {
	vs := viewstate.New(viewstate.ThemeDark)
	return PageData{
		Theme:    vs.Theme().String(),
		MenuOpen: vs.MenuOpen(),
		Content:  c,
		Contact:  contact.NewFlow().Snapshot(),
	}
}

var funcMap = template.FuncMap{
	"millis": func(d time.Duration) int64 { return d.Milliseconds() },
	"year":   func() int { return time.Now().Year() },
	"initials": initials,
}

// initials is the upper-cased first letter of each word in name.
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Renderer executes the page templates. With a templates directory it
// re-parses from disk on every request; otherwise it uses the embedded copy
// parsed once.
type Renderer struct {
	dir    string
	cached *template.Template
}

// NewRenderer parses the embedded templates, or validates dir when set.
func NewRenderer(dir string) (*Renderer, error) {
	r := &Renderer{dir: dir}
	t, err := r.parse()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		r.cached = t
	}
	return r, nil
}

func (r *Renderer) parse() (*template.Template, error) {
	var fsys fs.FS
	if r.dir != "" {
		fsys = os.DirFS(r.dir)
	} else {
		sub, err := fs.Sub(webFS, "web/templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}
	t, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Render writes the full page. The output is buffered so a template error
// still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, data PageData) {
	t := r.cached
	if t == nil {
		var err error
		if t, err = r.parse(); err != nil {
			getLog().Error().Err(err).Msg("Template parse failed")
			http.Error(w, "template parse error", http.StatusInternalServerError)
			return
		}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		getLog().Error().Err(err).Msg("Template execution failed")
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// assetsHandler serves the embedded stylesheet and script under /assets/.
func assetsHandler() http.Handler {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	files := http.FileServer(http.FS(sub))
	return http.StripPrefix("/assets", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	}))
}
