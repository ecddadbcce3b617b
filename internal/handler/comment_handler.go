package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cob-engineering/plan-review-api/internal/repository"
	"github.com/cob-engineering/plan-review-api/pkg/response"
)

// CommentHandler exposes the standard comment library.
type CommentHandler struct {
	comments *repository.CommentRepository
}

// NewCommentHandler constructs handler.
func NewCommentHandler(comments *repository.CommentRepository) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List returns standard comments, filtered by an optional search term.
func (h *CommentHandler) List(c *gin.Context) {
	if term := c.Query("search"); term != "" {
		response.JSON(c, http.StatusOK, h.comments.Search(term), nil)
		return
	}
	response.JSON(c, http.StatusOK, h.comments.List(), nil)
}

// Get returns one standard comment by its identifier.
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.comments.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comment, nil)
}
