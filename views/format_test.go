// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"testing"
	"time"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{9.666, "9.7/10"},
		{10, "10.0/10"},
		{0, "0.0/10"},
		{7.25, "7.3/10"},
		{8.04, "8.0/10"},
		{8.25, "8.3/10"},
		{8.45, "8.4/10"},
		{169.0 / 20, "8.4/10"},
		{0.15, "0.1/10"},
		{0.25, "0.3/10"},
		{1.05, "1.1/10"},
		{9.95, "9.9/10"},
		{9.75, "9.8/10"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.avg); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestJudgeLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 judges"},
		{1, "1 judge"},
		{2, "2 judges"},
		{11, "11 judges"},
	}

	for _, tt := range tests {
		if got := JudgeLabel(tt.n); got != tt.want {
			t.Errorf("JudgeLabel(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 18, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "3/7/2025" {
		t.Errorf("FormatDate = %q, want 3/7/2025", got)
	}
}

func TestRelativeTime(t *testing.T) {
	got := RelativeTime(time.Now().Add(-3 * 24 * time.Hour))
	if got != "3 days ago" {
		t.Errorf("RelativeTime = %q, want '3 days ago'", got)
	}
}
