package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arnavshah/vacancy-bidding-api/pkg/audit"
	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

// OfferingRequest is the body of POST /api/vacancies/offering
type OfferingRequest struct {
	Vacancy models.Vacancy `json:"vacancy"`
	To      string         `json:"to" binding:"required"`
	Reason  string         `json:"reason"`
	Note    string         `json:"note"`
}

// ChangeOffering moves a vacancy to another offering tier and logs the change
func (h *Handler) ChangeOffering(c *gin.Context) {
	var req OfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Vacancy.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vacancy.id is required"})
		return
	}

	entry, warning, err := h.Audit.LogOfferingChange(c.Request.Context(), audit.OfferingChange{
		VacancyID: req.Vacancy.ID,
		From:      req.Vacancy.OfferingTier,
		To:        req.To,
		Actor:     actor(c),
		Reason:    req.Reason,
		Note:      req.Note,
	})
	if err != nil {
		h.Log.Error("offering change not logged", zap.String("vacancy_id", req.Vacancy.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not write audit log"})
		return
	}

	vacancy := req.Vacancy
	vacancy.OfferingTier = req.To
	c.JSON(http.StatusOK, gin.H{"vacancy": vacancy, "entry": entry, "warning": warning})
}

// ListAudit returns audit entries, optionally filtered by date and vacancyId
func (h *Handler) ListAudit(c *gin.Context) {
	var f audit.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Audit.FilterAuditLogs(c.Request.Context(), f))
}

// ClearAudit empties the audit log
func (h *Handler) ClearAudit(c *gin.Context) {
	if err := h.Audit.ClearAuditLogs(c.Request.Context()); err != nil {
		h.Log.Error("audit clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear audit log"})
		return
	}
	h.Log.Info("audit log cleared", zap.String("actor", actor(c)))
	c.JSON(http.StatusOK, gin.H{"message": "Audit log cleared"})
}
