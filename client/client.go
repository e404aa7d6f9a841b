// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/hackathons/models"
)

// Procedure paths, relative to the API base URL
const (
	PathRecentHackathons     = "/api/hackathon.getRecentHackathons"
	PathHackathonWithWinners = "/api/hackathon.getHackathonWithWinners"
)

// APIError is a non-2xx answer other than 404
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hackathon api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("hackathon api: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the hackathon read procedures of a remote server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) GetRecentHackathons(ctx context.Context) ([]models.RecentHackathon, error) {
	var hackathons []models.RecentHackathon
	if err := c.get(ctx, PathRecentHackathons, nil, &hackathons); err != nil {
		return nil, err
	}
	if hackathons == nil {
		hackathons = []models.RecentHackathon{}
	}
	return hackathons, nil
}

// GetHackathonWithWinners returns models.ErrNotFound when the server has no
// hackathon for hackathonURL
func (c *Client) GetHackathonWithWinners(ctx context.Context, hackathonURL string) (*models.HackathonWithWinners, error) {
	input, err := json.Marshal(models.GetHackathonWithWinnersInput{URL: hackathonURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode input: %w", err)
	}

	var data models.HackathonWithWinners
	if err := c.get(ctx, PathHackathonWithWinners, url.Values{"input": {string(input)}}, &data); err != nil {
		return nil, err
	}
	if data.Winners == nil {
		data.Winners = []models.Winner{}
	}
	return &data, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		apiErr.Message = errResp.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
