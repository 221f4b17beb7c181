package bidding

import "github.com/arnavshah/vacancy-bidding-api/pkg/models"

const (
	WarningSameDayConflict = "Bidder has another bid on at least one selected day."
	WarningStatDay         = "Reminder: One or more selected days are stat/holiday."
)

// EvaluateBidWarnings returns advisory warnings for a candidate bid. The
// conflict check always runs before the holiday check.
func EvaluateBidWarnings(bid models.Bid, allBids []models.Bid, statDays []string) []string {
	warnings := []string{}

	selected := make(map[string]bool, len(bid.SelectedDays))
	for _, d := range bid.SelectedDays {
		selected[d] = true
	}

	if hasSameDayConflict(bid, allBids, selected) {
		warnings = append(warnings, WarningSameDayConflict)
	}

	for _, d := range statDays {
		if selected[d] {
			warnings = append(warnings, WarningStatDay)
			break
		}
	}

	return warnings
}

func hasSameDayConflict(bid models.Bid, allBids []models.Bid, selected map[string]bool) bool {
	for _, other := range allBids {
		if other.VacancyID == bid.VacancyID || other.BidderEmployeeID != bid.BidderEmployeeID {
			continue
		}
		for _, d := range other.SelectedDays {
			if selected[d] {
				return true
			}
		}
	}
	return false
}
