package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
	"github.com/arnavshah/vacancy-bidding-api/pkg/validation"
)

// ValidateRequest is the body of POST /api/validate
type ValidateRequest struct {
	Employees []models.Employee `json:"employees"`
	Vacancies []models.Vacancy  `json:"vacancies"`
}

// ValidateInput checks roster and vacancy records and reports every problem
func (h *Handler) ValidateInput(c *gin.Context) {
	var input ValidateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	errs := validation.ValidateAll(input.Employees, input.Vacancies)

	// Check for duplicate IDs
	empIDs := make(map[string]bool)
	for _, e := range input.Employees {
		if e.ID != "" && empIDs[e.ID] {
			errs = append(errs, "Duplicate employee ID: "+e.ID)
		}
		empIDs[e.ID] = true
	}
	vacIDs := make(map[string]bool)
	for _, v := range input.Vacancies {
		if v.ID != "" && vacIDs[v.ID] {
			errs = append(errs, "Duplicate vacancy ID: "+v.ID)
		}
		vacIDs[v.ID] = true
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
		"stats": gin.H{
			"employee_count": len(input.Employees),
			"vacancy_count":  len(input.Vacancies),
		},
	})
}
