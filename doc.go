// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the public hackathon site.

The site lists recent hackathons and shows the results of each one: an
ongoing banner, or the ranked winners with their average judge score once
the hackathon is finished. Hackathons are created and judged in the
organizer app; this server only reads them.

# Starting the Server

Read from a database:

	DATABASE_URL=hackathons.db go run .
	go run . -t postgres -d "postgres://..."

Or from another instance's JSON API:

	API_URL=https://hackathons.example.com go run .

# Configuration

One of these is required:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - API_URL (-api): base URL of a remote instance

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - APP_ENV (-e): production switches logs to JSON
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

See package cliparse for the cache and timeout settings.

# Architecture

  - handlers: JSON procedures and HTML pages
  - router: Route definitions using Go 1.22+ routing
  - views: Templates, card component, podium and score formatting
  - query: Cached query results with loading/error/success states
  - store: SQL reads; client: the same reads over HTTP
  - middleware: CORS, logging, JSON helpers
  - models: Hackathon and winner types
  - db: Connections and schema
  - logger: Structured logging setup
  - cliparse: Configuration parsing

SIGINT and SIGTERM drain in-flight requests before exit. deploy/ holds the
systemd unit used in production.
*/
package main
