package bidding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

func intPtr(n int) *int { return &n }

func TestWorkingDays_SortsWithoutMutating(t *testing.T) {
	v := models.Vacancy{ID: "r1", WorkingDays: []string{"2025-01-03", "2025-01-01", "2025-01-02", "2025-01-01"}}

	days := WorkingDays(v)
	require.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, days)
	require.Equal(t, []string{"2025-01-03", "2025-01-01", "2025-01-02", "2025-01-01"}, v.WorkingDays)

	days[0] = "changed"
	require.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03"}, WorkingDays(v))
}

func TestWorkingDays_FallsBackToDate(t *testing.T) {
	require.Equal(t, []string{"2025-02-10"}, WorkingDays(models.Vacancy{Date: "2025-02-10"}))
	require.Empty(t, WorkingDays(models.Vacancy{}))
}

func TestDeadlineForRange(t *testing.T) {
	v := models.Vacancy{
		WorkingDays: []string{"2025-01-03", "2025-01-01", "2025-01-02"},
		PerDayTimes: map[string]models.DayTimes{"2025-01-01": {Start: "07:00", End: "15:00"}},
	}
	settings := models.Settings{ResponseWindows: models.ResponseWindows{H4to24: intPtr(60)}}

	deadline, err := DeadlineForRange(v, settings)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T06:00:00", deadline.Format("2006-01-02T15:04:05"))
}

func TestDeadlineForRange_StartTimeFallbacks(t *testing.T) {
	cases := []struct {
		name string
		v    models.Vacancy
		want string
	}{
		{
			name: "shift start",
			v:    models.Vacancy{WorkingDays: []string{"2025-03-04"}, ShiftStart: "19:00"},
			want: "2025-03-04T18:30:00",
		},
		{
			name: "per-day entry without start",
			v: models.Vacancy{
				WorkingDays: []string{"2025-03-04"},
				PerDayTimes: map[string]models.DayTimes{"2025-03-04": {End: "23:00"}},
				ShiftStart:  "15:00",
			},
			want: "2025-03-04T14:30:00",
		},
		{
			name: "literal default",
			v:    models.Vacancy{Date: "2025-03-04"},
			want: "2025-03-04T06:00:00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deadline, err := DeadlineForRange(tc.v, models.Settings{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, deadline.Format("2006-01-02T15:04:05"))
		})
	}
}

func TestDeadlineForRange_CrossesMidnight(t *testing.T) {
	v := models.Vacancy{WorkingDays: []string{"2025-03-01"}, ShiftStart: "00:15"}
	settings := models.Settings{ResponseWindows: models.ResponseWindows{H4to24: intPtr(45)}}

	deadline, err := DeadlineForRange(v, settings)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28T23:30:00", deadline.Format("2006-01-02T15:04:05"))
}

func TestDeadlineForRange_UsesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	v := models.Vacancy{Date: "2025-01-01", ShiftStart: "07:00:00"}

	deadline, err := DeadlineForRange(v, models.Settings{Location: loc})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T06:30:00-05:00", deadline.Format(time.RFC3339))
}

func TestDeadlineForRange_Errors(t *testing.T) {
	_, err := DeadlineForRange(models.Vacancy{}, models.Settings{})
	require.ErrorIs(t, err, ErrNoWorkingDays)

	_, err = DeadlineForRange(models.Vacancy{Date: "2025-01-01", ShiftStart: "7am"}, models.Settings{})
	require.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestBidCoversAllDays(t *testing.T) {
	v := models.Vacancy{WorkingDays: []string{"2025-01-02", "2025-01-01", "2025-01-03"}}

	cases := []struct {
		name string
		bid  models.Bid
		want bool
	}{
		{"exact set any order", models.Bid{CoverageType: models.CoverageFull, SelectedDays: []string{"2025-01-03", "2025-01-01", "2025-01-02"}}, true},
		{"strict subset", models.Bid{CoverageType: models.CoverageFull, SelectedDays: []string{"2025-01-01", "2025-01-02"}}, false},
		{"strict superset", models.Bid{CoverageType: models.CoverageFull, SelectedDays: []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"}}, false},
		{"same size different days", models.Bid{CoverageType: models.CoverageFull, SelectedDays: []string{"2025-01-01", "2025-01-02", "2025-01-09"}}, false},
		{"duplicated selection", models.Bid{CoverageType: models.CoverageFull, SelectedDays: []string{"2025-01-01", "2025-01-01", "2025-01-02"}}, false},
		{"some-days with full set", models.Bid{CoverageType: models.CoverageSomeDays, SelectedDays: []string{"2025-01-01", "2025-01-02", "2025-01-03"}}, false},
		{"partial-day", models.Bid{CoverageType: models.CoveragePartialDay, SelectedDays: []string{"2025-01-01", "2025-01-02", "2025-01-03"}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BidCoversAllDays(v, tc.bid))
		})
	}
}
