package dto

import "github.com/cob-engineering/plan-review-api/internal/models"

// CreateReviewRequest captures POST /reviews payload.
type CreateReviewRequest struct {
	ReviewType   models.ReviewType `json:"review_type" validate:"required"`
	PermitNumber string            `json:"permit_number" validate:"required,max=64"`
	Address      string            `json:"address" validate:"required,max=256"`
	Reviewer     string            `json:"reviewer" validate:"omitempty,max=16"`
}

// AnswerItemRequest captures PUT /reviews/:id/answers payload.
type AnswerItemRequest struct {
	ItemID     string            `json:"item_id" validate:"required"`
	Status     models.ItemStatus `json:"status" validate:"required,item_status"`
	CommentIDs []string          `json:"comment_ids" validate:"omitempty,dive,required"`
	CustomNote string            `json:"custom_note" validate:"omitempty,max=4000"`
}

// ReviewSummaryResponse exposes the summary with its resolved comments.
type ReviewSummaryResponse struct {
	Session    models.ReviewSession `json:"session"`
	YesCount   int                  `json:"yes_count"`
	NoCount    int                  `json:"no_count"`
	NACount    int                  `json:"na_count"`
	Answered   int                  `json:"answered"`
	TotalItems int                  `json:"total_items"`
	Comments   []string             `json:"comments"`
}
