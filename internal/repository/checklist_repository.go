package repository

import (
	"github.com/cob-engineering/plan-review-api/internal/models"
	appErrors "github.com/cob-engineering/plan-review-api/pkg/errors"
)

// ChecklistRepository serves the static review checklist. Sections and
// items keep their authoring order.
type ChecklistRepository struct {
	sections []models.ChecklistSection
	items    map[string]models.ChecklistItem
}

// NewChecklistRepository constructs the repository and indexes items by ID.
func NewChecklistRepository() *ChecklistRepository {
	items := make(map[string]models.ChecklistItem)
	for _, section := range checklistSections {
		for _, item := range section.Items {
			items[item.ID] = item
		}
	}
	return &ChecklistRepository{sections: checklistSections, items: items}
}

// Sections returns every checklist section.
func (r *ChecklistRepository) Sections() []models.ChecklistSection {
	return r.sections
}

// SectionsForReviewType returns the sections applicable to the review
// type, each filtered to its applicable items. Sections left with no
// items are omitted.
func (r *ChecklistRepository) SectionsForReviewType(rt models.ReviewType) []models.ChecklistSection {
	out := make([]models.ChecklistSection, 0, len(r.sections))
	for _, section := range r.sections {
		applicable := make([]models.ChecklistItem, 0, len(section.Items))
		for _, item := range section.Items {
			if item.AppliesToType(rt) {
				applicable = append(applicable, item)
			}
		}
		if len(applicable) == 0 {
			continue
		}
		out = append(out, models.ChecklistSection{
			ID:    section.ID,
			Name:  section.Name,
			Items: applicable,
		})
	}
	return out
}

// Item returns the checklist item with the given ID.
func (r *ChecklistRepository) Item(id string) (models.ChecklistItem, error) {
	item, ok := r.items[id]
	if !ok {
		return models.ChecklistItem{}, appErrors.ErrNotFound
	}
	return item, nil
}

// ReviewTypes returns the supported review types in presentation order.
func (r *ChecklistRepository) ReviewTypes() []models.ReviewType {
	return models.AllReviewTypes
}

// ReviewerInitials returns the known reviewer initials.
func (r *ChecklistRepository) ReviewerInitials() []string {
	return Reviewers
}
