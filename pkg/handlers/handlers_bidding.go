package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/vacancy-bidding-api/pkg/audit"
	"github.com/arnavshah/vacancy-bidding-api/pkg/bidding"
	"github.com/arnavshah/vacancy-bidding-api/pkg/metrics"
	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

const deadlineLayout = "2006-01-02T15:04:05"

// RecommendRequest is the body of POST /api/recommend
type RecommendRequest struct {
	Vacancy   models.Vacancy    `json:"vacancy"`
	Bids      []models.Bid      `json:"bids"`
	Employees []models.Employee `json:"employees"`
}

// Recommend picks the winning bidder for one vacancy
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employees := make(map[string]models.Employee, len(req.Employees))
	for _, e := range req.Employees {
		employees[e.ID] = e
	}

	rec := bidding.Recommend(req.Vacancy, req.Bids, employees)
	outcome := "winner"
	if rec.ID == "" {
		outcome = "none"
	}
	metrics.Recommendations.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, rec)
}

// RangeRequest is the body of the /api/ranges routes
type RangeRequest struct {
	Range    models.Vacancy   `json:"range"`
	Bid      models.Bid       `json:"bid"`
	Settings *models.Settings `json:"settings"`
}

// Deadline returns the sorted working days and the bid response deadline
func (h *Handler) Deadline(c *gin.Context) {
	var req RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := h.Settings
	if req.Settings != nil {
		settings.ResponseWindows = req.Settings.ResponseWindows
	}

	deadline, err := bidding.DeadlineForRange(req.Range, settings)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workingDays": bidding.WorkingDays(req.Range),
		"deadline":    deadline.Format(deadlineLayout),
	})
}

// Coverage reports whether the bid covers every working day of the range
func (h *Handler) Coverage(c *gin.Context) {
	var req RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coversAllDays": bidding.BidCoversAllDays(req.Range, req.Bid)})
}

// WarningsRequest is the body of POST /api/bids/warnings
type WarningsRequest struct {
	Bid      models.Bid   `json:"bid"`
	AllBids  []models.Bid `json:"allBids"`
	StatDays []string     `json:"statDays"`
}

// Warnings returns advisory warnings for a candidate bid
func (h *Handler) Warnings(c *gin.Context) {
	var req WarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statDays := req.StatDays
	if statDays == nil {
		statDays = h.Settings.StatDays
	}
	c.JSON(http.StatusOK, gin.H{"warnings": bidding.EvaluateBidWarnings(req.Bid, req.AllBids, statDays)})
}

// BulkRequest is the body of POST /api/bids/bulk
type BulkRequest struct {
	Vacancies  []models.Vacancy   `json:"vacancies" binding:"required"`
	VacancyIDs []string           `json:"vacancyIds" binding:"required"`
	Employees  []models.Employee  `json:"employees" binding:"required"`
	Options    models.BulkOptions `json:"options"`
}

// BulkApply adds the employees as bidders on the targeted vacancies
func (h *Handler) BulkApply(c *gin.Context) {
	var req BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets := bidding.TargetSet(req.Vacancies, req.VacancyIDs, req.Options.ApplyToBundles)
	updated := bidding.ApplyBids(req.Vacancies, targets, req.Employees, req.Options)
	if !anyKnown(req.Vacancies, targets) {
		c.JSON(http.StatusOK, gin.H{"vacancies": updated, "targets": targets})
		return
	}
	metrics.BulkBids.Add(float64(len(targets) * len(req.Employees)))

	warning := h.record(c, audit.Event{
		Actor:      actor(c),
		Action:     models.ActionBidsBulkApplied,
		TargetType: "vacancy",
		TargetID:   firstOrEmpty(req.VacancyIDs),
		Details: map[string]any{
			"vacancyIds": targets,
			"employees":  len(req.Employees),
			"overwrite":  req.Options.Overwrite,
			"sameRank":   req.Options.SameRank,
		},
	})
	if c.IsAborted() {
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacancies": updated, "targets": targets, "warning": warning})
}

func anyKnown(vacancies []models.Vacancy, ids []string) bool {
	for _, id := range ids {
		for _, v := range vacancies {
			if v.ID == id {
				return true
			}
		}
	}
	return false
}

// AttachRequest is the body of POST /api/bundles/attach
type AttachRequest struct {
	Vacancies []models.Vacancy `json:"vacancies" binding:"required"`
	TargetID  string           `json:"targetId" binding:"required"`
	AttachIDs []string         `json:"attachIds"`
}

// AttachBundle puts the listed vacancies into the target's bundle
func (h *Handler) AttachBundle(c *gin.Context) {
	var req AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated := bidding.AttachVacanciesToTargetBundle(req.Vacancies, req.TargetID, req.AttachIDs, h.NewID)

	var bundleID string
	for _, v := range updated {
		if v.ID == req.TargetID {
			bundleID = v.BundleID
			break
		}
	}

	var warning string
	if bundleID != "" {
		warning = h.record(c, audit.Event{
			Actor:      actor(c),
			Action:     models.ActionBundleAttached,
			TargetType: "vacancy",
			TargetID:   req.TargetID,
			Details:    map[string]any{"bundleId": bundleID, "attachIds": req.AttachIDs},
		})
		if c.IsAborted() {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"vacancies": updated, "bundleId": bundleID, "warning": warning})
}

// record appends an audit entry. A storage failure aborts the request with 500.
func (h *Handler) record(c *gin.Context, ev audit.Event) string {
	_, warning, err := h.Audit.Append(c.Request.Context(), ev)
	if err != nil {
		h.Log.Error("audit append failed", zap.String("action", string(ev.Action)), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not write audit log"})
		return ""
	}
	return warning
}

func firstOrEmpty(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
