// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/hackathons/cliparse"
	"github.com/danielhkuo/hackathons/models"
	"github.com/danielhkuo/hackathons/query"
	"github.com/danielhkuo/hackathons/testutil"
	"github.com/danielhkuo/hackathons/views"
)

var errUnavailable = errors.New("upstream unavailable")

// fakeSource serves fixed data. A non-nil release channel blocks every call
// until it is closed.
type fakeSource struct {
	recent     []models.RecentHackathon
	recentErr  error
	hackathons map[string]*models.HackathonWithWinners
	detailErr  error
	release    chan struct{}

	recentCalls atomic.Int32
	detailCalls atomic.Int32
}

func (f *fakeSource) wait(ctx context.Context) error {
	if f.release == nil {
		return nil
	}
	select {
	case <-f.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeSource) GetRecentHackathons(ctx context.Context) ([]models.RecentHackathon, error) {
	f.recentCalls.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recent, nil
}

func (f *fakeSource) GetHackathonWithWinners(ctx context.Context, url string) (*models.HackathonWithWinners, error) {
	f.detailCalls.Add(1)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	h, ok := f.hackathons[url]
	if !ok {
		return nil, models.ErrNotFound
	}
	return h, nil
}

func newTestPageHandler(t *testing.T, source Source) (*PageHandler, cliparse.Config) {
	t.Helper()

	cfg := testutil.GetTestConfig()
	cfg.RenderTimeout = 200 * time.Millisecond

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	cache := query.NewCache(cfg.CacheTTL, cfg.FetchTimeout)
	return NewPageHandler(source, renderer, cache, cfg), cfg
}

func finishedHackathon(name, url string, winners ...models.Winner) *models.HackathonWithWinners {
	if winners == nil {
		winners = []models.Winner{}
	}
	return &models.HackathonWithWinners{
		Hackathon: models.Hackathon{
			ID:         "h-" + url,
			Name:       name,
			URL:        url,
			IsFinished: true,
			UpdatedAt:  time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
		},
		Winners: winners,
	}
}
