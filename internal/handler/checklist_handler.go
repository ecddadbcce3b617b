package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cob-engineering/plan-review-api/internal/models"
	"github.com/cob-engineering/plan-review-api/internal/repository"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
	"github.com/cob-engineering/plan-review-api/pkg/response"
)

// ChecklistHandler exposes the static checklist catalog.
type ChecklistHandler struct {
	checklists *repository.ChecklistRepository
}

// NewChecklistHandler constructs handler.
func NewChecklistHandler(checklists *repository.ChecklistRepository) *ChecklistHandler {
	return &ChecklistHandler{checklists: checklists}
}

// ReviewTypes lists the supported permit review categories.
func (h *ChecklistHandler) ReviewTypes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.checklists.ReviewTypes(), nil)
}

// Reviewers lists the known reviewer initials.
func (h *ChecklistHandler) Reviewers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.checklists.ReviewerInitials(), nil)
}

// Sections returns checklist sections, optionally filtered to one review type.
func (h *ChecklistHandler) Sections(c *gin.Context) {
	reviewType := c.Query("review_type")
	if reviewType == "" {
		response.JSON(c, http.StatusOK, h.checklists.Sections(), nil)
		return
	}
	rt := models.ReviewType(reviewType)
	if !rt.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown review type "+reviewType))
		return
	}
	response.JSON(c, http.StatusOK, h.checklists.SectionsForReviewType(rt), nil)
}

// Item returns one checklist item by its identifier.
func (h *ChecklistHandler) Item(c *gin.Context) {
	item, err := h.checklists.Item(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}
