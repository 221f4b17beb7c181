package bidding

import (
	"errors"
	"sort"
	"time"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

const (
	// DefaultShiftStart is used when neither per-day times nor the vacancy carry a start
	DefaultShiftStart = "06:30"
	// DefaultResponseWindowMinutes applies when settings omit responseWindows.h4to24
	DefaultResponseWindowMinutes = 30
)

var (
	ErrNoWorkingDays    = errors.New("vacancy has no working days")
	ErrInvalidStartTime = errors.New("invalid shift start time")
)

var anchorLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// WorkingDays returns a sorted, de-duplicated copy of the vacancy's working days.
// A vacancy without WorkingDays falls back to its single Date.
func WorkingDays(v models.Vacancy) []string {
	src := v.WorkingDays
	if len(src) == 0 && v.Date != "" {
		src = []string{v.Date}
	}

	seen := make(map[string]bool, len(src))
	days := make([]string, 0, len(src))
	for _, d := range src {
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	// ISO dates sort chronologically as strings
	sort.Strings(days)
	return days
}

// StartTimeForDay resolves the start time of one working day:
// per-day times, then the vacancy's shift start, then DefaultShiftStart.
func StartTimeForDay(v models.Vacancy, day string) string {
	if t, ok := v.PerDayTimes[day]; ok && t.Start != "" {
		return t.Start
	}
	if v.ShiftStart != "" {
		return v.ShiftStart
	}
	return DefaultShiftStart
}

// ResponseWindowMinutes returns the configured h4to24 window or the default
func ResponseWindowMinutes(settings models.Settings) int {
	if settings.ResponseWindows.H4to24 != nil {
		return *settings.ResponseWindows.H4to24
	}
	return DefaultResponseWindowMinutes
}

// DeadlineForRange computes the time by which bids on the vacancy must be
// resolved: the start of its first working day minus the response window.
func DeadlineForRange(v models.Vacancy, settings models.Settings) (time.Time, error) {
	days := WorkingDays(v)
	if len(days) == 0 {
		return time.Time{}, ErrNoWorkingDays
	}

	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}

	anchor := days[0] + "T" + StartTimeForDay(v, days[0])
	var start time.Time
	var err error
	for _, layout := range anchorLayouts {
		start, err = time.ParseInLocation(layout, anchor, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrInvalidStartTime
	}

	return start.Add(-time.Duration(ResponseWindowMinutes(settings)) * time.Minute), nil
}

// BidCoversAllDays reports whether a bid claims full coverage and its selected
// days match the vacancy's working days exactly.
func BidCoversAllDays(v models.Vacancy, bid models.Bid) bool {
	if bid.CoverageType != models.CoverageFull {
		return false
	}

	days := WorkingDays(v)
	required := make(map[string]bool, len(days))
	for _, d := range days {
		required[d] = true
	}

	selected := make(map[string]bool, len(bid.SelectedDays))
	for _, d := range bid.SelectedDays {
		if !required[d] {
			return false
		}
		selected[d] = true
	}
	return len(selected) == len(required)
}
