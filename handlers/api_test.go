// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/hackathons/models"
	"github.com/danielhkuo/hackathons/store"
	"github.com/danielhkuo/hackathons/testutil"
)

func withInput(raw string) string {
	return "/api/hackathon.getHackathonWithWinners?input=" + url.QueryEscape(raw)
}

func TestGetRecentHackathons(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreateTestHackathon(t, db, testutil.HackathonFixture{Name: "Old", URL: "old", UpdatedAt: base})
	testutil.CreateTestHackathon(t, db, testutil.HackathonFixture{
		Name: "New", URL: "new", Description: testutil.StrPtr("Fresh"), IsFinished: true, UpdatedAt: base.Add(time.Hour),
	})

	handler := NewAPIHandler(store.New(db, 6))

	req := httptest.NewRequest("GET", "/api/hackathon.getRecentHackathons", nil)
	w := httptest.NewRecorder()

	handler.GetRecentHackathons(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.RecentHackathon
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 2 {
		t.Fatalf("Expected 2 hackathons, got %d", len(resp))
	}
	if resp[0].URL != "new" || resp[1].URL != "old" {
		t.Errorf("Expected newest first, got %s then %s", resp[0].URL, resp[1].URL)
	}
	if !resp[0].IsFinished {
		t.Error("Expected first hackathon to be finished")
	}
	if resp[0].Description == nil || *resp[0].Description != "Fresh" {
		t.Errorf("Expected description 'Fresh', got %v", resp[0].Description)
	}
}

func TestGetRecentHackathons_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAPIHandler(store.New(db, 6))

	req := httptest.NewRequest("GET", "/api/hackathon.getRecentHackathons", nil)
	w := httptest.NewRecorder()

	handler.GetRecentHackathons(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}

func TestGetRecentHackathons_SourceError(t *testing.T) {
	handler := NewAPIHandler(&fakeSource{recentErr: errUnavailable})

	req := httptest.NewRequest("GET", "/api/hackathon.getRecentHackathons", nil)
	w := httptest.NewRecorder()

	handler.GetRecentHackathons(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Database error" {
		t.Errorf("Expected 'Database error', got '%s'", resp.Message)
	}
}

func TestGetHackathonWithWinners(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	id := testutil.CreateTestHackathon(t, db, testutil.HackathonFixture{
		Name:       "Spring Hack",
		URL:        "spring-hack",
		Rules:      testutil.StrPtr("Be kind"),
		IsFinished: true,
	})
	testutil.AddTestWinner(t, db, id, models.Winner{Rank: 2, Title: "Second", CreatorName: "Bo", AverageScore: 8.25, TotalScores: 1})
	testutil.AddTestWinner(t, db, id, models.Winner{Rank: 1, Title: "First", CreatorName: "Ana", AverageScore: 9.5, TotalScores: 3})

	handler := NewAPIHandler(store.New(db, 6))

	req := httptest.NewRequest("GET", withInput(`{"url":"spring-hack"}`), nil)
	w := httptest.NewRecorder()

	handler.GetHackathonWithWinners(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HackathonWithWinners
	testutil.AssertJSON(t, w, &resp)

	if resp.Hackathon.Name != "Spring Hack" {
		t.Errorf("Expected name 'Spring Hack', got '%s'", resp.Hackathon.Name)
	}
	if resp.Hackathon.Rules == nil || *resp.Hackathon.Rules != "Be kind" {
		t.Errorf("Expected rules 'Be kind', got %v", resp.Hackathon.Rules)
	}
	if resp.Hackathon.Criteria != nil {
		t.Errorf("Expected no criteria, got %q", *resp.Hackathon.Criteria)
	}
	if len(resp.Winners) != 2 {
		t.Fatalf("Expected 2 winners, got %d", len(resp.Winners))
	}
	if resp.Winners[0].Rank != 1 || resp.Winners[0].Title != "First" {
		t.Errorf("Expected rank 1 first, got %+v", resp.Winners[0])
	}
	if resp.Winners[0].TotalScores != 3 {
		t.Errorf("Expected 3 scores, got %d", resp.Winners[0].TotalScores)
	}
}

func TestGetHackathonWithWinners_Ongoing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	id := testutil.CreateTestHackathon(t, db, testutil.HackathonFixture{Name: "Live", URL: "live"})
	testutil.AddTestWinner(t, db, id, models.Winner{Rank: 1, Title: "Early", CreatorName: "Cy", AverageScore: 7, TotalScores: 1})

	handler := NewAPIHandler(store.New(db, 6))

	req := httptest.NewRequest("GET", withInput(`{"url":"live"}`), nil)
	w := httptest.NewRecorder()

	handler.GetHackathonWithWinners(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HackathonWithWinners
	testutil.AssertJSON(t, w, &resp)

	if resp.Hackathon.IsFinished {
		t.Error("Expected ongoing hackathon")
	}
	if resp.Winners == nil || len(resp.Winners) != 0 {
		t.Errorf("Expected empty winners list, got %v", resp.Winners)
	}
}

func TestGetHackathonWithWinners_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAPIHandler(store.New(db, 6))

	testCases := []struct {
		name       string
		path       string
		statusCode int
		message    string
	}{
		{"missing input", "/api/hackathon.getHackathonWithWinners", http.StatusBadRequest, "input is required"},
		{"invalid JSON", withInput(`{url`), http.StatusBadRequest, "Invalid JSON input"},
		{"empty url", withInput(`{"url":""}`), http.StatusBadRequest, "url is required"},
		{"unknown url", withInput(`{"url":"nope"}`), http.StatusNotFound, "Hackathon not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			handler.GetHackathonWithWinners(w, req)

			testutil.AssertStatus(t, w, tc.statusCode)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestGetHackathonWithWinners_SourceError(t *testing.T) {
	handler := NewAPIHandler(&fakeSource{detailErr: errUnavailable})

	req := httptest.NewRequest("GET", withInput(`{"url":"x"}`), nil)
	w := httptest.NewRecorder()

	handler.GetHackathonWithWinners(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
