// Package recipes tracks the recipe runs currently executing on the backend.
// The backend is authoritative; this registry mirrors its lifecycle events
// and publishes coalesced snapshots for the UI layer.
package recipes

import (
	"context"
	"sort"
	"sync"

	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "recipes"

	_gaugeActive = "active_recipes"
)

// Controller mirrors backend recipe lifecycle events.
type Controller interface {
	// ApplyStarted records a new run, replacing any run already tracked for
	// the same session.
	ApplyStarted(ctx context.Context, recipe entity.ActiveRecipe)

	// ApplyStepAdvanced moves an existing run to the given step. A session
	// with no tracked run yields an OrphanSessionError.
	ApplyStepAdvanced(ctx context.Context, sessionID string, currentStep int, stepCount int) error

	// ApplyEnded removes the run for the session. Unknown sessions are
	// ignored, so completion and cancellation stay idempotent.
	ApplyEnded(ctx context.Context, sessionID string)

	// Active returns the published snapshot, ordered by session id.
	Active(ctx context.Context) []entity.ActiveRecipe
}

// Params are inbound parameters to initialize the registry.
type Params struct {
	fx.In

	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Publisher statepub.Publisher
}

type controller struct {
	logger    *zap.SugaredLogger
	stats     tally.Scope
	publisher statepub.Publisher

	mu        sync.RWMutex
	active    map[string]entity.ActiveRecipe
	published map[string]entity.ActiveRecipe
}

// New creates a recipe registry and registers its publication topic.
func New(p Params) Controller {
	c := &controller{
		logger:    p.Logger.With("component", _nameKey),
		stats:     p.Stats.SubScope(_nameKey),
		publisher: p.Publisher,
		active:    make(map[string]entity.ActiveRecipe),
		published: make(map[string]entity.ActiveRecipe),
	}
	p.Publisher.Register(c)
	return c
}

// Topic identifies this registry's publication.
func (c *controller) Topic() statepub.Topic {
	return statepub.TopicRecipes
}

// Commit snapshots the authoritative state into the published view. Called
// by the publisher during a flush.
func (c *controller) Commit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make(map[string]entity.ActiveRecipe, len(c.active))
	for id, recipe := range c.active {
		snapshot[id] = recipe
	}
	c.published = snapshot
}

func (c *controller) ApplyStarted(ctx context.Context, recipe entity.ActiveRecipe) {
	defer c.updateMetrics()
	c.mu.Lock()
	if prev, ok := c.active[recipe.SessionID]; ok {
		c.logger.Debugw("replacing tracked recipe run", "sessionId", recipe.SessionID, "previousRecipeId", prev.RecipeID)
	}
	c.active[recipe.SessionID] = recipe
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicRecipes)
}

func (c *controller) ApplyStepAdvanced(ctx context.Context, sessionID string, currentStep int, stepCount int) error {
	defer c.updateMetrics()
	c.mu.Lock()
	recipe, ok := c.active[sessionID]
	if !ok {
		c.mu.Unlock()
		return &errors.OrphanSessionError{SessionID: sessionID, Event: "recipe_step"}
	}
	recipe.CurrentStep = currentStep
	recipe.StepCount = stepCount
	c.active[sessionID] = recipe
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicRecipes)
	return nil
}

func (c *controller) ApplyEnded(ctx context.Context, sessionID string) {
	defer c.updateMetrics()
	c.mu.Lock()
	if _, ok := c.active[sessionID]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.active, sessionID)
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicRecipes)
}

func (c *controller) Active(ctx context.Context) []entity.ActiveRecipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.ActiveRecipe, 0, len(c.published))
	for _, recipe := range c.published {
		out = append(out, recipe)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SessionID < out[j].SessionID })
	return out
}

func (c *controller) updateMetrics() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.stats.Gauge(_gaugeActive).Update(float64(len(c.active)))
}
