// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageHome   = "home"
	pageDetail = "detail"
)

// Renderer executes the page templates
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"formatDate":   FormatDate,
	"relativeTime": RelativeTime,
}

// NewRenderer parses the layout and components once, then one clone per page
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/card.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageHome, pageDetail} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		page, err := clone.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s page: %w", name, err)
		}
		r.pages[name] = page
	}

	return r, nil
}

// RenderHome writes the landing page
func (r *Renderer) RenderHome(w io.Writer, page HomePage) error {
	return r.render(w, pageHome, layoutData{
		Title:   "Phck - An open source hackathon management",
		Refresh: page.State == HomeLoading,
		Page:    page,
	})
}

// RenderDetail writes the public page of one hackathon
func (r *Renderer) RenderDetail(w io.Writer, page DetailPage) error {
	title := "Hackathon not found"
	switch page.State {
	case DetailLoading:
		title = "Loading hackathon..."
	case DetailOngoing, DetailFinishedNoWinners, DetailFinishedWithWinners:
		title = page.Name
	}
	return r.render(w, pageDetail, layoutData{
		Title:   title,
		Refresh: page.State == DetailLoading,
		Page:    page,
	})
}

// RenderCard writes a single card, outside any page
func (r *Renderer) RenderCard(w io.Writer, card Card) error {
	return r.pages[pageHome].ExecuteTemplate(w, "card", card)
}

type layoutData struct {
	Title string
	// Refresh makes the browser reload while a query is still loading
	Refresh bool
	Page    any
}

func (r *Renderer) render(w io.Writer, name string, data layoutData) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// Static serves the embedded images under /images/
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}
