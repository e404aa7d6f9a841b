// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/hackathons/models"
)

// Store serves the hackathon read procedures from a SQL database
type Store struct {
	db          *sql.DB
	recentLimit int
}

func New(db *sql.DB, recentLimit int) *Store {
	return &Store{db: db, recentLimit: recentLimit}
}

// GetRecentHackathons returns the most recently updated hackathons, newest first
func (s *Store) GetRecentHackathons(ctx context.Context) ([]models.RecentHackathon, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, url, description, is_finished, updated_at
		FROM hackathon
		ORDER BY updated_at DESC, id
		LIMIT $1
	`, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent hackathons: %w", err)
	}
	defer rows.Close()

	hackathons := []models.RecentHackathon{}
	for rows.Next() {
		var h models.RecentHackathon
		var description sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &h.URL, &description, &h.IsFinished, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hackathon: %w", err)
		}
		h.Description = nullString(description)
		hackathons = append(hackathons, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hackathons: %w", err)
	}

	return hackathons, nil
}

// GetHackathonWithWinners returns the hackathon addressed by url and,
// once it is finished, its winners ordered by rank.
// Returns models.ErrNotFound if no hackathon has that slug.
func (s *Store) GetHackathonWithWinners(ctx context.Context, url string) (*models.HackathonWithWinners, error) {
	var h models.Hackathon
	var description, rules, criteria sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, url, description, rules, criteria, is_finished, updated_at
		FROM hackathon
		WHERE url = $1
	`, url).Scan(
		&h.ID, &h.Name, &h.URL, &description, &rules, &criteria,
		&h.IsFinished, &h.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query hackathon: %w", err)
	}
	h.Description = nullString(description)
	h.Rules = nullString(rules)
	h.Criteria = nullString(criteria)

	winners := []models.Winner{}
	if h.IsFinished {
		winners, err = s.getWinners(ctx, h.ID)
		if err != nil {
			return nil, err
		}
	}

	return &models.HackathonWithWinners{
		Hackathon: h,
		Winners:   winners,
	}, nil
}

func (s *Store) getWinners(ctx context.Context, hackathonID string) ([]models.Winner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rank, title, creator_name, description, project_url,
		       average_score, total_scores
		FROM winner
		WHERE hackathon_id = $1
		ORDER BY rank ASC
	`, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query winners: %w", err)
	}
	defer rows.Close()

	winners := []models.Winner{}
	for rows.Next() {
		var w models.Winner
		var description, projectURL sql.NullString
		if err := rows.Scan(
			&w.ID, &w.Rank, &w.Title, &w.CreatorName, &description, &projectURL,
			&w.AverageScore, &w.TotalScores,
		); err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		w.Description = nullString(description)
		w.ProjectURL = nullString(projectURL)
		winners = append(winners, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate winners: %w", err)
	}

	return winners, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
