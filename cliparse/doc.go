// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present; values
already set in the process environment win over the file.

# CLI Flags

	-p               Server port (default: 3000)
	-e               Environment: production or development
	-d               Database URL
	-t               Database type: sqlite or postgres (default: sqlite)
	-api             Base URL of a remote hackathon API
	-recent          Recent hackathons on the home page (default: 6)
	-cache-ttl       Query result freshness (default: 30s)
	-render-timeout  Wait before a page shows its loading state (default: 2s)
	-fetch-timeout   Upper bound for one fetch (default: 10s)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	APP_ENV        → -e
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	API_URL        → -api
	RECENT_LIMIT   → -recent
	CACHE_TTL      → -cache-ttl
	RENDER_TIMEOUT → -render-timeout
	FETCH_TIMEOUT  → -fetch-timeout

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if neither DATABASE_URL nor API_URL is set,
if the database type is unknown, if a numeric or duration value
does not parse, or if a cache or timeout duration is not positive.
*/
package cliparse
