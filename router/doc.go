// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the hackathon site.

# Route Registration

NewRouter creates a configured http.ServeMux over a data source:

	mux, err := router.NewRouter(store.New(db, cfg.RecentLimit), cfg)

It fails only when the embedded templates do not parse.

# Endpoints

Health:

	GET /health

Pages:

	GET /                - Landing page with recent hackathons
	GET /hackathon/{url} - Public results of one hackathon

JSON procedures:

	GET /api/hackathon.getRecentHackathons
	GET /api/hackathon.getHackathonWithWinners?input={"url":"..."}

Assets:

	GET /images/phck_logo.svg

Links to /auth and /app/{url} point at the organizer app and are not served
here.

# Handler Initialization

The router shares one query.Cache between the page handlers. The source is
either a *store.Store or a *client.Client pointed at another instance.
*/
package router
