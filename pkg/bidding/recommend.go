package bidding

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

// NoEligibleBidders is the sole reason reported when nobody qualifies
const NoEligibleBidders = "No eligible bidders"

// rankSentinel stands in for a missing seniority rank, i.e. least senior
const rankSentinel = math.MaxInt

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

type candidate struct {
	bid      models.Bid
	employee models.Employee
	order    int
	placed   time.Time
	hasTime  bool
}

func (c candidate) hours() float64 {
	if c.employee.SeniorityHours == nil {
		return 0
	}
	return *c.employee.SeniorityHours
}

func (c candidate) rank() int {
	if c.employee.SeniorityRank == nil {
		return rankSentinel
	}
	return *c.employee.SeniorityRank
}

// outranks applies the tie-break chain: hours, rank, bid time, bid order.
// Bid time only counts when both bids carry one, so with a mix of timed and
// untimed bids the relation is not transitive. The result is still fixed by
// input order because the sort is stable.
func outranks(a, b candidate) bool {
	if ah, bh := a.hours(), b.hours(); ah != bh {
		return ah > bh
	}
	if ar, br := a.rank(), b.rank(); ar != br {
		return ar < br
	}
	if a.hasTime && b.hasTime && !a.placed.Equal(b.placed) {
		return a.placed.Before(b.placed)
	}
	return a.order < b.order
}

// Eligible reports whether an employee may win a vacancy
func Eligible(v models.Vacancy, e models.Employee) bool {
	return e.Active && e.Classification == v.Classification
}

// Candidates returns the eligible bids on a vacancy, best first
func Candidates(v models.Vacancy, allBids []models.Bid, employeesByID map[string]models.Employee) []models.Bid {
	ranked := rankCandidates(v, allBids, employeesByID)
	bids := make([]models.Bid, len(ranked))
	for i, c := range ranked {
		bids[i] = c.bid
	}
	return bids
}

// Recommend picks the winning bidder for a vacancy. When no bid is eligible
// the result has no ID and a single NoEligibleBidders reason.
func Recommend(v models.Vacancy, allBids []models.Bid, employeesByID map[string]models.Employee) models.Recommendation {
	ranked := rankCandidates(v, allBids, employeesByID)
	if len(ranked) == 0 {
		return models.Recommendation{Why: []string{NoEligibleBidders}}
	}

	winner := ranked[0].employee
	why := []string{"Bidder"}
	if winner.SeniorityHours != nil {
		why = append(why, "Hours "+strconv.FormatFloat(*winner.SeniorityHours, 'f', -1, 64))
	} else if winner.SeniorityRank != nil {
		why = append(why, fmt.Sprintf("Rank %d", *winner.SeniorityRank))
	} else {
		why = append(why, "Rank ?")
	}
	why = append(why, "Class "+string(winner.Classification))

	return models.Recommendation{ID: winner.ID, Why: why}
}

func rankCandidates(v models.Vacancy, allBids []models.Bid, employeesByID map[string]models.Employee) []candidate {
	var cands []candidate
	for i, bid := range allBids {
		if bid.VacancyID != v.ID {
			continue
		}
		emp, ok := employeesByID[bid.BidderEmployeeID]
		if !ok || !Eligible(v, emp) {
			continue
		}
		placed, hasTime := bidTime(bid)
		cands = append(cands, candidate{
			bid:      bid,
			employee: emp,
			order:    i,
			placed:   placed,
			hasTime:  hasTime,
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return outranks(cands[i], cands[j])
	})
	return cands
}

func bidTime(bid models.Bid) (time.Time, bool) {
	raw := bid.PlacedAt
	if raw == "" {
		raw = bid.BidTimestamp
	}
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
