// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/hackathons/cliparse"
	"github.com/danielhkuo/hackathons/client"
	"github.com/danielhkuo/hackathons/handlers"
	"github.com/danielhkuo/hackathons/middleware"
	"github.com/danielhkuo/hackathons/query"
	"github.com/danielhkuo/hackathons/views"
)

func NewRouter(source handlers.Source, cfg cliparse.Config) (*http.ServeMux, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	cache := query.NewCache(cfg.CacheTTL, cfg.FetchTimeout)
	pageHandler := handlers.NewPageHandler(source, renderer, cache, cfg)
	apiHandler := handlers.NewAPIHandler(source)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	mux.HandleFunc("GET /hackathon/{url}", middleware.WithLogging(pageHandler.Hackathon))

	// JSON procedures, same paths client.Client calls
	mux.HandleFunc("GET "+client.PathRecentHackathons, middleware.WithLogging(apiHandler.GetRecentHackathons))
	mux.HandleFunc("GET "+client.PathHackathonWithWinners, middleware.WithLogging(apiHandler.GetHackathonWithWinners))

	// Embedded assets
	mux.Handle("GET /images/", views.Static())

	return mux, nil
}
