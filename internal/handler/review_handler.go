package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cob-engineering/plan-review-api/internal/dto"
	"github.com/cob-engineering/plan-review-api/internal/service"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
	"github.com/cob-engineering/plan-review-api/pkg/response"
)

// ReviewHandler exposes review session endpoints.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler constructs handler.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create starts a new review session.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	session, err := h.reviews.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Get returns one review session.
func (h *ReviewHandler) Get(c *gin.Context) {
	session, err := h.reviews.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// List pages through review sessions.
func (h *ReviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	sessions, pagination, err := h.reviews.ListSessions(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, pagination)
}

// Delete removes a review session and its answers.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviews.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Checklist returns the sections applicable to the session's review type.
func (h *ReviewHandler) Checklist(c *gin.Context) {
	sections, err := h.reviews.Checklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// Answer records the verdict for one checklist item.
func (h *ReviewHandler) Answer(c *gin.Context) {
	var req dto.AnswerItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	answer, err := h.reviews.AnswerItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, answer, nil)
}

// Summary aggregates verdict counts and the resolved comment list.
func (h *ReviewHandler) Summary(c *gin.Context) {
	summary, err := h.reviews.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := dto.ReviewSummaryResponse{
		Session:    summary.Session,
		YesCount:   summary.YesCount,
		NoCount:    summary.NoCount,
		NACount:    summary.NACount,
		Answered:   summary.Answered,
		TotalItems: summary.TotalItem,
		Comments:   summary.Comments,
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Comments returns the resolved comment list for a session.
func (h *ReviewHandler) Comments(c *gin.Context) {
	comments, err := h.reviews.ResolveComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments, nil)
}
