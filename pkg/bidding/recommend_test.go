package bidding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

func hoursPtr(h float64) *float64 { return &h }

func rn(id string) models.Employee {
	return models.Employee{ID: id, Classification: models.ClassificationRN, Active: true}
}

func byID(emps ...models.Employee) map[string]models.Employee {
	m := make(map[string]models.Employee, len(emps))
	for _, e := range emps {
		m[e.ID] = e
	}
	return m
}

func TestRecommend_HigherHoursWins(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	a := rn("A")
	a.SeniorityHours = hoursPtr(120)
	b := rn("B")
	b.SeniorityHours = hoursPtr(140)

	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "A"},
		{VacancyID: "V1", BidderEmployeeID: "B"},
	}

	got := Recommend(v, bids, byID(a, b))
	require.Equal(t, "B", got.ID)
	require.Equal(t, []string{"Bidder", "Hours 140", "Class RN"}, got.Why)
}

func TestRecommend_NoEligibleBidders(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	inactive := rn("I")
	inactive.Active = false
	lpn := models.Employee{ID: "L", Classification: models.ClassificationLPN, Active: true}

	cases := map[string][]models.Bid{
		"empty":          nil,
		"inactive":       {{VacancyID: "V1", BidderEmployeeID: "I"}},
		"class mismatch": {{VacancyID: "V1", BidderEmployeeID: "L"}},
		"unknown":        {{VacancyID: "V1", BidderEmployeeID: "ghost"}},
		"other vacancy":  {{VacancyID: "V2", BidderEmployeeID: "A"}},
	}

	for name, bids := range cases {
		t.Run(name, func(t *testing.T) {
			got := Recommend(v, bids, byID(inactive, lpn, rn("A")))
			assert.Empty(t, got.ID)
			assert.Equal(t, []string{NoEligibleBidders}, got.Why)
		})
	}
}

func TestRecommend_HoursBeatRankTimeAndOrder(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	junior := rn("junior")
	junior.SeniorityHours = hoursPtr(10)
	junior.SeniorityRank = intPtr(1)
	senior := rn("senior")
	senior.SeniorityHours = hoursPtr(10.5)
	senior.SeniorityRank = intPtr(99)

	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "junior", PlacedAt: "2025-01-01T08:00:00Z"},
		{VacancyID: "V1", BidderEmployeeID: "senior", PlacedAt: "2025-01-02T08:00:00Z"},
	}

	got := Recommend(v, bids, byID(junior, senior))
	require.Equal(t, "senior", got.ID)
	require.Equal(t, []string{"Bidder", "Hours 10.5", "Class RN"}, got.Why)
}

func TestRecommend_RankWhenHoursTied(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	a := rn("A")
	a.SeniorityRank = intPtr(7)
	b := rn("B")
	b.SeniorityRank = intPtr(3)
	c := rn("C")

	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "C"},
		{VacancyID: "V1", BidderEmployeeID: "A"},
		{VacancyID: "V1", BidderEmployeeID: "B"},
	}

	got := Recommend(v, bids, byID(a, b, c))
	require.Equal(t, "B", got.ID)
	require.Equal(t, []string{"Bidder", "Rank 3", "Class RN"}, got.Why)

	order := Candidates(v, bids, byID(a, b, c))
	require.Len(t, order, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{order[0].BidderEmployeeID, order[1].BidderEmployeeID, order[2].BidderEmployeeID})
}

func TestRecommend_EarlierTimestampWins(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "late", PlacedAt: "2025-01-01T10:00:00Z"},
		{VacancyID: "V1", BidderEmployeeID: "early", BidTimestamp: "2025-01-01T09:00:00Z"},
	}

	got := Recommend(v, bids, byID(rn("late"), rn("early")))
	require.Equal(t, "early", got.ID)
	require.Equal(t, []string{"Bidder", "Rank ?", "Class RN"}, got.Why)
}

func TestRecommend_BidOrderBreaksRemainingTies(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "first", PlacedAt: "2025-01-01T10:00:00Z"},
		{VacancyID: "V1", BidderEmployeeID: "second"},
		{VacancyID: "V1", BidderEmployeeID: "third", PlacedAt: "not a date"},
	}
	emps := byID(rn("first"), rn("second"), rn("third"))

	require.Equal(t, "first", Recommend(v, bids, emps).ID)

	reordered := []models.Bid{bids[2], bids[1], bids[0]}
	require.Equal(t, "third", Recommend(v, reordered, emps).ID)
}

func TestRecommend_Deterministic(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "A"},
		{VacancyID: "V2", BidderEmployeeID: "B"},
		{VacancyID: "V1", BidderEmployeeID: "C"},
	}
	emps := byID(rn("A"), rn("B"), rn("C"))

	first := Recommend(v, bids, emps)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Recommend(v, bids, emps))
	}
	require.Equal(t, "A", first.ID)
}

func TestRecommend_MixedTimestampsFollowInputOrder(t *testing.T) {
	v := models.Vacancy{ID: "V1", Classification: models.ClassificationRN}
	// A beats B on order, B beats C on order, C beats A on time
	bids := []models.Bid{
		{VacancyID: "V1", BidderEmployeeID: "A", PlacedAt: "2025-01-01T10:00:00Z"},
		{VacancyID: "V1", BidderEmployeeID: "B"},
		{VacancyID: "V1", BidderEmployeeID: "C", PlacedAt: "2025-01-01T05:00:00Z"},
	}
	emps := byID(rn("A"), rn("B"), rn("C"))

	for i := 0; i < 5; i++ {
		require.Equal(t, "A", Recommend(v, bids, emps).ID)
	}
}
