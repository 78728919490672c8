package mapper

import (
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
)

// RecipeStartedToActiveRecipe maps a recipe_started event to the registry
// entry it installs.
func RecipeStartedToActiveRecipe(msg *wire.RecipeStarted) entity.ActiveRecipe {
	return entity.ActiveRecipe{
		SessionID:   msg.SessionID,
		RecipeID:    msg.RecipeID,
		Label:       msg.Label,
		CurrentStep: msg.CurrentStep,
		StepCount:   msg.StepCount,
	}
}

// ResourceEntriesToEntities maps a resources_list payload to domain
// resources. A nil or empty payload maps to an empty, non-nil slice.
func ResourceEntriesToEntities(entries []wire.ResourceEntry) []entity.Resource {
	out := make([]entity.Resource, 0, len(entries))
	for _, e := range entries {
		out = append(out, entity.Resource{
			Filename:  e.Filename,
			Path:      e.Path,
			Size:      e.Size,
			Timestamp: e.Timestamp,
		})
	}
	return out
}

// FileUploadedToResult maps an upload confirmation to the single-slot upload
// outcome. Arrival of the confirmation itself is what signals success.
func FileUploadedToResult(msg *wire.FileUploaded) entity.UploadResult {
	return entity.UploadResult{
		Filename: msg.Filename,
		Success:  true,
	}
}
