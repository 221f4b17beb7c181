package bidding

import "github.com/arnavshah/vacancy-bidding-api/pkg/models"

// TargetSet resolves the vacancy ids a bulk apply touches: the requested ids
// in order, then (with applyToBundles) every other member of their bundles in
// collection order.
func TargetSet(all []models.Vacancy, vacancyIDs []string, applyToBundles bool) []string {
	seen := make(map[string]bool, len(vacancyIDs))
	targets := make([]string, 0, len(vacancyIDs))
	for _, id := range vacancyIDs {
		if !seen[id] {
			seen[id] = true
			targets = append(targets, id)
		}
	}
	if !applyToBundles {
		return targets
	}

	index := indexByID(all)
	bundles := make(map[string]bool)
	for _, id := range targets {
		if i, ok := index[id]; ok && all[i].BundleID != "" {
			bundles[all[i].BundleID] = true
		}
	}
	for _, v := range all {
		if bundles[v.BundleID] && !seen[v.ID] {
			seen[v.ID] = true
			targets = append(targets, v.ID)
		}
	}
	return targets
}

// AddBidsToVacancies records every employee as a bidder on each targeted
// vacancy. An existing bid from the same employee is replaced. Without
// SameRank the rank counter runs across all vacancies of the call.
func AddBidsToVacancies(all []models.Vacancy, vacancyIDs []string, employees []models.Employee, opts models.BulkOptions) []models.Vacancy {
	return ApplyBids(all, TargetSet(all, vacancyIDs, opts.ApplyToBundles), employees, opts)
}

// ApplyBids is AddBidsToVacancies over an already resolved target set.
// ApplyToBundles is ignored here.
func ApplyBids(all []models.Vacancy, targets []string, employees []models.Employee, opts models.BulkOptions) []models.Vacancy {
	out := make([]models.Vacancy, len(all))
	copy(out, all)

	index := indexByID(out)
	rank := 1
	for _, id := range targets {
		i, ok := index[id]
		if !ok {
			continue
		}

		var bids []models.VacancyBid
		if !opts.Overwrite {
			bids = append(bids, out[i].Bids...)
		}
		if bids == nil {
			bids = []models.VacancyBid{}
		}

		for _, emp := range employees {
			bidRank := 1
			if !opts.SameRank {
				bidRank = rank
				rank++
			}
			bids = withoutEmployee(bids, emp.ID)
			bids = append(bids, models.VacancyBid{
				EmployeeID: emp.ID,
				Note:       opts.Note,
				Rank:       bidRank,
			})
		}
		out[i].Bids = bids
	}
	return out
}

func withoutEmployee(bids []models.VacancyBid, employeeID string) []models.VacancyBid {
	kept := bids[:0]
	for _, b := range bids {
		if b.EmployeeID != employeeID {
			kept = append(kept, b)
		}
	}
	return kept
}
