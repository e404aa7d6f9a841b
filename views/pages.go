// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/hackathons/models"
	"github.com/danielhkuo/hackathons/query"
)

// HomeState selects what the recent hackathons section shows
type HomeState int

const (
	HomeLoading HomeState = iota
	// HomeEmpty covers both a failed query and an empty list
	HomeEmpty
	HomeList
)

// HackathonTile is one entry of the recent hackathons grid
type HackathonTile struct {
	Name        string
	URL         string
	Description string
	IsFinished  bool
	UpdatedAt   time.Time
}

func (t HackathonTile) Href() string {
	return HackathonPath(t.URL)
}

type HomePage struct {
	State      HomeState
	Features   []Card
	Hackathons []HackathonTile
}

func (p HomePage) Loading() bool { return p.State == HomeLoading }
func (p HomePage) Listing() bool { return p.State == HomeList }

// NewHomePage maps the recent hackathons query onto the page, keeping the
// source order
func NewHomePage(res query.Result[[]models.RecentHackathon]) HomePage {
	page := HomePage{Features: HomeFeatures}

	switch {
	case res.IsLoading():
		page.State = HomeLoading
	case res.IsError() || len(res.Data) == 0:
		page.State = HomeEmpty
	default:
		page.State = HomeList
		page.Hackathons = make([]HackathonTile, 0, len(res.Data))
		for _, h := range res.Data {
			page.Hackathons = append(page.Hackathons, HackathonTile{
				Name:        h.Name,
				URL:         h.URL,
				Description: deref(h.Description),
				IsFinished:  h.IsFinished,
				UpdatedAt:   h.UpdatedAt,
			})
		}
	}

	return page
}

// DetailState is the public hackathon page's state
type DetailState int

const (
	DetailLoading DetailState = iota
	// DetailNotFound covers a failed query and an absent hackathon alike
	DetailNotFound
	DetailOngoing
	DetailFinishedNoWinners
	DetailFinishedWithWinners
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailNotFound:
		return "not_found"
	case DetailOngoing:
		return "ongoing"
	case DetailFinishedNoWinners:
		return "finished_no_winners"
	case DetailFinishedWithWinners:
		return "finished_with_winners"
	default:
		return "unknown"
	}
}

type WinnerEntry struct {
	ID           string
	Rank         int
	Title        string
	CreatorName  string
	Description  string
	ProjectURL   string
	AverageScore float64
	TotalScores  int
}

func (w WinnerEntry) Icon() string      { return PodiumIcon(w.Rank) }
func (w WinnerEntry) TierClass() string { return TierFor(w.Rank).Class() }
func (w WinnerEntry) Score() string     { return FormatScore(w.AverageScore) }
func (w WinnerEntry) Judges() string    { return JudgeLabel(w.TotalScores) }

type DetailPage struct {
	State       DetailState
	Name        string
	Description string
	Rules       string
	Criteria    string
	IsFinished  bool
	UpdatedAt   time.Time
	Winners     []WinnerEntry
}

// NewDetailPage resolves the page state from the query result. Winners are
// kept in the order the source returned them and only for finished
// hackathons.
func NewDetailPage(res query.Result[*models.HackathonWithWinners]) DetailPage {
	if res.IsLoading() {
		return DetailPage{State: DetailLoading}
	}
	if res.IsError() || res.Data == nil {
		return DetailPage{State: DetailNotFound}
	}

	h := res.Data.Hackathon
	page := DetailPage{
		Name:        h.Name,
		Description: deref(h.Description),
		Rules:       deref(h.Rules),
		Criteria:    deref(h.Criteria),
		IsFinished:  h.IsFinished,
		UpdatedAt:   h.UpdatedAt,
	}

	switch {
	case !h.IsFinished:
		page.State = DetailOngoing
	case len(res.Data.Winners) == 0:
		page.State = DetailFinishedNoWinners
	default:
		page.State = DetailFinishedWithWinners
		page.Winners = make([]WinnerEntry, 0, len(res.Data.Winners))
		for _, w := range res.Data.Winners {
			page.Winners = append(page.Winners, WinnerEntry{
				ID:           w.ID,
				Rank:         w.Rank,
				Title:        w.Title,
				CreatorName:  w.CreatorName,
				Description:  deref(w.Description),
				ProjectURL:   deref(w.ProjectURL),
				AverageScore: w.AverageScore,
				TotalScores:  w.TotalScores,
			})
		}
	}

	return page
}

func (p DetailPage) Loading() bool    { return p.State == DetailLoading }
func (p DetailPage) NotFound() bool   { return p.State == DetailNotFound }
func (p DetailPage) Ongoing() bool    { return p.State == DetailOngoing }
func (p DetailPage) HasWinners() bool { return p.State == DetailFinishedWithWinners }

// HasRulesOrCriteria reports whether the rules/criteria grid is shown
func (p DetailPage) HasRulesOrCriteria() bool {
	return p.Rules != "" || p.Criteria != ""
}

// StatusCode is the HTTP status the page is served with
func (p DetailPage) StatusCode() int {
	if p.State == DetailNotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

// HackathonPath is the public page of a hackathon
func HackathonPath(slug string) string {
	return "/hackathon/" + url.PathEscape(slug)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
