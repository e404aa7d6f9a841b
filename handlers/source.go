// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/hackathons/models"
)

// Source answers the two hackathon queries. *store.Store and *client.Client
// both implement it.
type Source interface {
	GetRecentHackathons(ctx context.Context) ([]models.RecentHackathon, error)
	GetHackathonWithWinners(ctx context.Context, url string) (*models.HackathonWithWinners, error)
}
