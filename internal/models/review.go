package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ReviewType enumerates the permit review categories handled by the service.
type ReviewType string

const (
	ReviewTypeTransitional ReviewType = "Transitional Lot"
	ReviewTypeHillside     ReviewType = "Hillside Protection Lot"
	ReviewTypeStandard     ReviewType = "Standard Lot"
	ReviewTypePool         ReviewType = "Pool Permit"
	ReviewTypeFence        ReviewType = "Fence Permit"
)

// AllReviewTypes lists review types in presentation order.
var AllReviewTypes = []ReviewType{
	ReviewTypeTransitional,
	ReviewTypeHillside,
	ReviewTypeStandard,
	ReviewTypePool,
	ReviewTypeFence,
}

// Valid reports whether the review type is one of the known categories.
func (r ReviewType) Valid() bool {
	for _, t := range AllReviewTypes {
		if r == t {
			return true
		}
	}
	return false
}

// ItemStatus captures the reviewer's verdict on a single checklist item.
type ItemStatus string

const (
	ItemStatusYes ItemStatus = "yes"
	ItemStatusNo  ItemStatus = "no"
	ItemStatusNA  ItemStatus = "na"
)

// Valid reports whether the status is one of yes/no/na.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusYes, ItemStatusNo, ItemStatusNA:
		return true
	}
	return false
}

// ReviewSession is one in-progress or completed plan review.
type ReviewSession struct {
	ID           string     `db:"id" json:"id"`
	ReviewType   ReviewType `db:"review_type" json:"review_type"`
	PermitNumber string     `db:"permit_number" json:"permit_number"`
	Address      string     `db:"address" json:"address"`
	Reviewer     string     `db:"reviewer" json:"reviewer"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ReviewAnswer records the verdict for one checklist item within a session.
// CommentIDs holds the standard comments the reviewer selected when the
// verdict is "no"; CustomNote carries free-form text appended after them.
type ReviewAnswer struct {
	SessionID  string     `db:"session_id" json:"session_id"`
	ItemID     string     `db:"item_id" json:"item_id"`
	Status     ItemStatus `db:"status" json:"status"`
	CommentIDs StringList `db:"comment_ids" json:"comment_ids"`
	CustomNote string     `db:"custom_note" json:"custom_note"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// ReviewSummary aggregates verdict counts and the resolved comment list
// for a session. Comments are ordered section by section, item by item,
// selected standard comments before the custom note.
type ReviewSummary struct {
	Session   ReviewSession `json:"session"`
	YesCount  int           `json:"yes_count"`
	NoCount   int           `json:"no_count"`
	NACount   int           `json:"na_count"`
	Answered  int           `json:"answered"`
	TotalItem int           `json:"total_items"`
	Comments  []string      `json:"comments"`
}

// StringList persists a []string as a JSON column.
type StringList []string

// Value marshals the list to JSON for persistence.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSON payload into the list.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}
	return nil
}
