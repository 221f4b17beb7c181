package bidding

import "github.com/arnavshah/vacancy-bidding-api/pkg/models"

// EnsureBundleID returns the vacancy's bundle id, assigning a fresh one first
// if it has none.
func EnsureBundleID(v *models.Vacancy, newID IDGenerator) string {
	if v.BundleID == "" {
		v.BundleID = newID()
	}
	return v.BundleID
}

// BundleMembers returns the vacancies sharing bundleID, in collection order
func BundleMembers(all []models.Vacancy, bundleID string) []models.Vacancy {
	if bundleID == "" {
		return nil
	}
	var members []models.Vacancy
	for _, v := range all {
		if v.BundleID == bundleID {
			members = append(members, v)
		}
	}
	return members
}

// AttachVacanciesToTargetBundle moves every vacancy in attachIDs into the
// target's bundle, creating the bundle if the target has none. An unknown
// target leaves the collection untouched; unknown attach ids are skipped.
func AttachVacanciesToTargetBundle(all []models.Vacancy, targetID string, attachIDs []string, newID IDGenerator) []models.Vacancy {
	out := make([]models.Vacancy, len(all))
	copy(out, all)

	index := indexByID(out)
	ti, ok := index[targetID]
	if !ok {
		return out
	}
	bundleID := EnsureBundleID(&out[ti], newID)

	for _, id := range attachIDs {
		if id == targetID {
			continue
		}
		if i, ok := index[id]; ok {
			out[i].BundleID = bundleID
		}
	}
	return out
}

// indexByID maps vacancy ids to positions. The first occurrence wins.
func indexByID(all []models.Vacancy) map[string]int {
	index := make(map[string]int, len(all))
	for i, v := range all {
		if _, seen := index[v.ID]; !seen {
			index[v.ID] = i
		}
	}
	return index
}
