// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the hackathon site.

# Handler Types

Both handlers read through a Source, implemented by *store.Store (SQL) and
*client.Client (a remote instance of the same API):

  - APIHandler: the JSON procedures
  - PageHandler: the server-rendered pages

# JSON API

	GET /api/hackathon.getRecentHackathons
	GET /api/hackathon.getHackathonWithWinners?input={"url":"slug"}

The second answers 400 for missing or invalid input, 404 when no hackathon
has the slug, and lists winners only once the hackathon is finished.

# Pages

	GET /                → Home
	GET /hackathon/{url} → Hackathon

Pages read through a query.Cache. A query that does not settle within the
render timeout renders the loading state, which reloads itself. Errors never
reach the page: the home page shows its empty state and the detail page
shows "Hackathon not found" with status 404.

# Error Responses

API errors return JSON with error and message fields:

	{"error": "Not Found", "message": "Hackathon not found"}
*/
package handlers
