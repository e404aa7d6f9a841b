// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatScore renders an average score out of ten with one decimal:
// 9.666 → "9.7/10", 10 → "10.0/10". The stored value is rounded as is, so
// 8.45 (stored just below the half) gives "8.4/10". Exact halves such as
// 8.25 round away from zero.
func FormatScore(avg float64) string {
	if tie, ok := halfTenths(avg); ok {
		return strconv.FormatFloat(float64(tie)/10, 'f', 1, 64) + "/10"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64) + "/10"
}

// halfTenths reports whether avg lies exactly halfway between two tenths and
// returns the tenth away from zero. avg*20 is computed without rounding.
func halfTenths(avg float64) (int64, bool) {
	if math.IsInf(avg, 0) || math.IsNaN(avg) {
		return 0, false
	}
	x := new(big.Float).SetPrec(128).SetFloat64(avg)
	x.Mul(x, big.NewFloat(20))
	if !x.IsInt() {
		return 0, false
	}
	n, acc := x.Int64()
	if acc != big.Exact || n%2 == 0 {
		return 0, false
	}
	if n > 0 {
		return (n + 1) / 2, true
	}
	return (n - 1) / 2, true
}

// JudgeLabel returns "1 judge" or "N judges"
func JudgeLabel(n int) string {
	if n == 1 {
		return "1 judge"
	}
	return fmt.Sprintf("%d judges", n)
}

// FormatDate renders a date the way an en-US locale does (M/D/YYYY)
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// RelativeTime renders t relative to now, e.g. "3 days ago"
func RelativeTime(t time.Time) string {
	return humanize.Time(t)
}
