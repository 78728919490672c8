package entity

// ActiveRecipe is the running recipe for one backend session. At most one
// exists per session; a newer start supersedes it.
type ActiveRecipe struct {
	SessionID   string `json:"sessionId" zap:"sessionId"`
	RecipeID    string `json:"recipeId" zap:"recipeId"`
	Label       string `json:"label" zap:"label"`
	CurrentStep int    `json:"currentStep" zap:"currentStep"`
	StepCount   int    `json:"stepCount" zap:"stepCount"`
}

// Finished reports whether the recipe's current step has reached the final
// step. Display hint only; removal is driven by backend completion events.
func (r *ActiveRecipe) Finished() bool {
	return r.StepCount > 0 && r.CurrentStep >= r.StepCount
}
