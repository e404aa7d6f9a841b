// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names match the wire format consumed by the pages
(is_finished, updatedAt, creatorName, project_url, averageScore,
totalScores). Optional text fields are pointers and encode as null.

# Domain Types

  - Hackathon: event metadata and the is_finished lifecycle flag
  - RecentHackathon: list projection for the home page
  - Winner: ranked, scored submission of a finished hackathon

# Request and Response Types

  - GetHackathonWithWinnersInput: url
  - HackathonWithWinners: hackathon, winners (sorted by rank)
  - ErrorResponse: error, message

# Errors

ErrNotFound marks a slug that resolves to no hackathon.
*/
package models
