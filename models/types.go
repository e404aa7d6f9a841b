package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by data sources when no hackathon has the slug
var ErrNotFound = errors.New("hackathon not found")

// Request types

// GetHackathonWithWinnersInput is the procedure input, passed as ?input=<json>
type GetHackathonWithWinnersInput struct {
	URL string `json:"url"`
}

// Domain types

type Hackathon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	Rules       *string   `json:"rules"`
	Criteria    *string   `json:"criteria"`
	IsFinished  bool      `json:"is_finished"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecentHackathon is the list projection served on the home page
type RecentHackathon struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	IsFinished  bool      `json:"is_finished"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Winner is a ranked submission of a finished hackathon.
// Rank is 1-based; TotalScores is the number of judges who scored it.
type Winner struct {
	ID           string  `json:"id"`
	Rank         int     `json:"rank"`
	Title        string  `json:"title"`
	CreatorName  string  `json:"creatorName"`
	Description  *string `json:"description"`
	ProjectURL   *string `json:"project_url"`
	AverageScore float64 `json:"averageScore"`
	TotalScores  int     `json:"totalScores"`
}

// Response types

// Winners are sorted by rank ascending
type HackathonWithWinners struct {
	Hackathon Hackathon `json:"hackathon"`
	Winners   []Winner  `json:"winners"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
