package repository

import (
	"sort"
	"strings"

	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

// CommentRepository serves the standard review comment table.
type CommentRepository struct {
	comments map[string]string
	ids      []string
}

// NewCommentRepository constructs the repository with IDs sorted for
// stable listing.
func NewCommentRepository() *CommentRepository {
	ids := make([]string, 0, len(standardComments))
	for id := range standardComments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &CommentRepository{comments: standardComments, ids: ids}
}

// Get returns a single comment by its ID.
func (r *CommentRepository) Get(id string) (models.Comment, error) {
	text, ok := r.comments[id]
	if !ok {
		return models.Comment{}, appErrors.ErrUnknownComment
	}
	return models.Comment{ID: id, Text: text}, nil
}

// Exists reports whether the comment ID is in the standard set.
func (r *CommentRepository) Exists(id string) bool {
	_, ok := r.comments[id]
	return ok
}

// List returns all comments in ID order.
func (r *CommentRepository) List() []models.Comment {
	out := make([]models.Comment, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, models.Comment{ID: id, Text: r.comments[id]})
	}
	return out
}

// Search returns comments whose text contains the term, case-insensitive,
// in ID order. An empty term matches nothing.
func (r *CommentRepository) Search(term string) []models.Comment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	out := make([]models.Comment, 0)
	for _, id := range r.ids {
		text := r.comments[id]
		if strings.Contains(strings.ToLower(text), term) {
			out = append(out, models.Comment{ID: id, Text: text})
		}
	}
	return out
}
