// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import "net/url"

// Card is a presentational tile. A non-empty URL makes it a link into the
// organizer app at /app/{url}.
type Card struct {
	Name        string
	Description string
	URL         string
	ShowCode    bool
}

// Href is the link target, or "" when the card is not linked
func (c Card) Href() string {
	if c.URL == "" {
		return ""
	}
	return "/app/" + url.PathEscape(c.URL)
}

// HomeFeatures are the static cards on the landing page
var HomeFeatures = []Card{
	{
		Name:        "✨ Simple, as it should be",
		Description: "Create hackathons in no time, review and decide who wins your event",
	},
	{
		Name:        "🚀 Share and participate",
		Description: "Share with friends and power your event with organization",
	},
}
