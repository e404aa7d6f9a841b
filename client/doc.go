// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a typed HTTP client for the hackathon read procedures.

	c := client.New("https://hackathons.example.com", nil)
	recent, err := c.GetRecentHackathons(ctx)
	data, err := c.GetHackathonWithWinners(ctx, "spring-hack")

A 404 answer maps to models.ErrNotFound; any other non-2xx answer is an
*APIError carrying the status code and the server's message.
*/
package client
