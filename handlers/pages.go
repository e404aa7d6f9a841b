// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hackathons/cliparse"
	"github.com/danielhkuo/hackathons/models"
	"github.com/danielhkuo/hackathons/query"
	"github.com/danielhkuo/hackathons/views"
)

// Query keys, named after the procedures they call
const (
	KeyRecentHackathons     = "hackathon.getRecentHackathons"
	KeyHackathonWithWinners = "hackathon.getHackathonWithWinners"
)

type PageHandler struct {
	source   Source
	renderer *views.Renderer
	cache    *query.Cache
	cfg      cliparse.Config
}

func NewPageHandler(source Source, renderer *views.Renderer, cache *query.Cache, cfg cliparse.Config) *PageHandler {
	return &PageHandler{source: source, renderer: renderer, cache: cache, cfg: cfg}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	res := query.Fetch(r.Context(), h.cache, KeyRecentHackathons, h.cfg.RenderTimeout, h.source.GetRecentHackathons)
	logQueryError(KeyRecentHackathons, res.Err)

	page := views.NewHomePage(res)

	var buf bytes.Buffer
	if err := h.renderer.RenderHome(&buf, page); err != nil {
		slog.Error("failed to render home page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, http.StatusOK, page.Loading(), &buf)
}

// Hackathon handles GET /hackathon/{url}
// Missing hackathons and failed lookups both render the not-found state.
func (h *PageHandler) Hackathon(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("url")

	// The query stays pending until the slug is known
	res := query.Loading[*models.HackathonWithWinners]()
	if slug != "" {
		key := KeyHackathonWithWinners + ":" + slug
		res = query.Fetch(r.Context(), h.cache, key, h.cfg.RenderTimeout,
			func(ctx context.Context) (*models.HackathonWithWinners, error) {
				return h.source.GetHackathonWithWinners(ctx, slug)
			})
		logQueryError(key, res.Err)
	}

	page := views.NewDetailPage(res)

	var buf bytes.Buffer
	if err := h.renderer.RenderDetail(&buf, page); err != nil {
		slog.Error("failed to render hackathon page", "url", slug, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, page.StatusCode(), page.Loading(), &buf)
}

func logQueryError(key string, err error) {
	if err == nil || errors.Is(err, models.ErrNotFound) {
		return
	}
	slog.Warn("query failed", "key", key, "error", err)
}

func writeHTML(w http.ResponseWriter, status int, loading bool, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if loading {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.WriteHeader(status)
	buf.WriteTo(w)
}
