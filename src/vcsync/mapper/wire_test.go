package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
)

func TestRecipeStartedToActiveRecipe(t *testing.T) {
	got := RecipeStartedToActiveRecipe(&wire.RecipeStarted{
		SessionID:   "s-1",
		RecipeID:    "fix-tests",
		Label:       "Fix failing tests",
		CurrentStep: 1,
		StepCount:   4,
	})
	assert.Equal(t, entity.ActiveRecipe{
		SessionID:   "s-1",
		RecipeID:    "fix-tests",
		Label:       "Fix failing tests",
		CurrentStep: 1,
		StepCount:   4,
	}, got)
}

func TestResourceEntriesToEntities(t *testing.T) {
	t.Run("empty payload yields empty slice", func(t *testing.T) {
		got := ResourceEntriesToEntities(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("entries map field for field", func(t *testing.T) {
		got := ResourceEntriesToEntities([]wire.ResourceEntry{
			{Filename: "notes.md", Path: "/srv/uploads/notes.md", Size: 512, Timestamp: "2026-08-20T10:00:00Z"},
		})
		assert.Equal(t, []entity.Resource{
			{Filename: "notes.md", Path: "/srv/uploads/notes.md", Size: 512, Timestamp: "2026-08-20T10:00:00Z"},
		}, got)
	})
}

func TestFileUploadedToResult(t *testing.T) {
	got := FileUploadedToResult(&wire.FileUploaded{
		Filename:  "spec.pdf",
		Path:      "/srv/uploads/spec.pdf",
		Size:      2048,
		Timestamp: "2026-08-20T11:30:00Z",
	})
	assert.Equal(t, entity.UploadResult{Filename: "spec.pdf", Success: true}, got)
}
