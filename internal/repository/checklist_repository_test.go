package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cob-engineering/plan-review-api/internal/models"
)

func TestChecklistDataReferencesResolve(t *testing.T) {
	comments := NewCommentRepository()

	// A handful of checklist items point at comment IDs past the end of
	// the standard table. The resolver tolerates those, but the bulk of
	// the references must land.
	total, missing := 0, 0
	for _, section := range checklistSections {
		for _, item := range section.Items {
			require.NotEmpty(t, item.ID)
			require.NotEmpty(t, item.Description)
			require.NotEmpty(t, item.CommentIDs, "item %s has no comments", item.ID)
			for _, cid := range item.CommentIDs {
				total++
				if !comments.Exists(cid) {
					missing++
				}
			}
		}
	}
	assert.Less(t, missing, total/10, "too many dangling comment references")
}

func TestChecklistSectionsForReviewType(t *testing.T) {
	repo := NewChecklistRepository()

	fence := repo.SectionsForReviewType(models.ReviewTypeFence)
	require.NotEmpty(t, fence)
	for _, section := range fence {
		for _, item := range section.Items {
			assert.True(t, item.AppliesToType(models.ReviewTypeFence), "item %s leaked into fence checklist", item.ID)
		}
	}

	// Fence reviews skip the grading sections entirely.
	for _, section := range fence {
		assert.NotEqual(t, "topography_grading", section.ID)
		assert.NotEqual(t, "driveways", section.ID)
	}

	// Universal items (empty applies-to) show up for every type.
	for _, rt := range models.AllReviewTypes {
		sections := repo.SectionsForReviewType(rt)
		found := false
		for _, section := range sections {
			for _, item := range section.Items {
				if item.ID == "0.3" {
					found = true
				}
			}
		}
		assert.True(t, found, "item 0.3 missing for %s", rt)
	}
}

func TestChecklistSectionOrderPreserved(t *testing.T) {
	repo := NewChecklistRepository()
	sections := repo.SectionsForReviewType(models.ReviewTypeTransitional)
	require.Greater(t, len(sections), 10)
	assert.Equal(t, "general_preliminary", sections[0].ID)
	assert.Equal(t, "0.1", sections[0].Items[0].ID)
}

func TestChecklistItemLookup(t *testing.T) {
	repo := NewChecklistRepository()

	item, err := repo.Item("15.10")
	require.NoError(t, err)
	assert.Equal(t, "Code compliant pool fence shown", item.Description)

	_, err = repo.Item("99.99")
	require.Error(t, err)
}

func TestCommentRepositorySearch(t *testing.T) {
	repo := NewCommentRepository()

	got, err := repo.Get("BB-0062")
	require.NoError(t, err)
	assert.Equal(t, "Provide silt fence detail on the plans.", got.Text)

	_, err = repo.Get("BB-9999")
	require.Error(t, err)

	results := repo.Search("silt fence")
	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.Less(t, results[i-1].ID, results[i].ID, "search results not in ID order")
	}

	assert.Empty(t, repo.Search("   "))
}
