package models

// ChecklistItem is one question on the review checklist. An empty
// AppliesTo list means the item applies to every review type.
type ChecklistItem struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	CommentIDs  []string     `json:"comment_ids"`
	AppliesTo   []ReviewType `json:"applies_to"`
}

// AppliesToType reports whether the item is applicable to the review type.
func (i ChecklistItem) AppliesToType(rt ReviewType) bool {
	if len(i.AppliesTo) == 0 {
		return true
	}
	for _, t := range i.AppliesTo {
		if t == rt {
			return true
		}
	}
	return false
}

// ChecklistSection groups related checklist items.
type ChecklistSection struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Items []ChecklistItem `json:"items"`
}
