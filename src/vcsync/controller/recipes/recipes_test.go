package recipes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/clock"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub/statepubmock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestController(t *testing.T) (*controller, *statepubmock.MockPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	publisher := statepubmock.NewMockPublisher(ctrl)
	publisher.EXPECT().Register(gomock.Any())
	c := New(Params{
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
		Publisher: publisher,
	})
	return c.(*controller), publisher
}

func sampleRecipe(sessionID string) entity.ActiveRecipe {
	return entity.ActiveRecipe{
		SessionID:   sessionID,
		RecipeID:    "deploy-service",
		Label:       "Deploy Service",
		CurrentStep: 1,
		StepCount:   4,
	}
}

func TestNewRegistersTopic(t *testing.T) {
	c, _ := newTestController(t)
	assert.Equal(t, statepub.TopicRecipes, c.Topic())
}

func TestApplyStarted(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicRecipes)
	c.ApplyStarted(ctx, sampleRecipe("session-a"))

	// The published view lags until the publisher commits.
	assert.Empty(t, c.Active(ctx))
	c.Commit()
	active := c.Active(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "deploy-service", active[0].RecipeID)
}

func TestApplyStartedReplacesRun(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicRecipes).Times(2)
	c.ApplyStarted(ctx, sampleRecipe("session-a"))

	next := sampleRecipe("session-a")
	next.RecipeID = "run-tests"
	next.Label = "Run Tests"
	c.ApplyStarted(ctx, next)

	c.Commit()
	active := c.Active(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "run-tests", active[0].RecipeID)
}

func TestApplyStepAdvanced(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicRecipes).Times(2)
	c.ApplyStarted(ctx, sampleRecipe("session-a"))
	require.NoError(t, c.ApplyStepAdvanced(ctx, "session-a", 3, 4))

	c.Commit()
	active := c.Active(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active[0].CurrentStep)
	assert.Equal(t, 4, active[0].StepCount)
	assert.Equal(t, "deploy-service", active[0].RecipeID)
}

func TestApplyStepAdvancedOrphanSession(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t)

	// No MarkDirty: nothing changed.
	err := c.ApplyStepAdvanced(ctx, "session-unknown", 2, 4)
	require.Error(t, err)
	var orphan *errors.OrphanSessionError
	require.ErrorAs(t, err, &orphan)
	assert.Equal(t, "session-unknown", orphan.SessionID)
}

func TestApplyEnded(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicRecipes).Times(2)
	c.ApplyStarted(ctx, sampleRecipe("session-a"))
	c.ApplyEnded(ctx, "session-a")

	// Repeats and unknown sessions are silently ignored.
	c.ApplyEnded(ctx, "session-a")
	c.ApplyEnded(ctx, "session-never-seen")

	c.Commit()
	assert.Empty(t, c.Active(ctx))
}

func TestActiveOrderedBySession(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicRecipes).Times(3)
	c.ApplyStarted(ctx, sampleRecipe("session-c"))
	c.ApplyStarted(ctx, sampleRecipe("session-a"))
	c.ApplyStarted(ctx, sampleRecipe("session-b"))

	c.Commit()
	active := c.Active(ctx)
	require.Len(t, active, 3)
	assert.Equal(t, "session-a", active[0].SessionID)
	assert.Equal(t, "session-b", active[1].SessionID)
	assert.Equal(t, "session-c", active[2].SessionID)
}

func TestTwoStartsWithinOneWindow(t *testing.T) {
	ctx := context.Background()
	provider, err := config.NewStaticProvider(map[string]interface{}{
		"publish": map[string]interface{}{
			"debounceMs": 20,
		},
	})
	require.NoError(t, err)

	publisher, err := statepub.New(statepub.Params{
		Clock:     clock.New(),
		Config:    provider,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
		Lifecycle: fxtest.NewLifecycle(t),
	})
	require.NoError(t, err)
	defer publisher.Close()

	c := New(Params{
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
		Publisher: publisher,
	})

	first := sampleRecipe("session-a")
	second := entity.ActiveRecipe{
		SessionID:   "session-b",
		RecipeID:    "run-tests",
		Label:       "Run Tests",
		CurrentStep: 2,
		StepCount:   3,
	}
	c.ApplyStarted(ctx, first)
	c.ApplyStarted(ctx, second)

	// Both starts land inside one debounce window; one flush publishes both.
	assert.Eventually(t, func() bool {
		return len(c.Active(ctx)) == 2
	}, time.Second, 5*time.Millisecond)

	active := c.Active(ctx)
	require.Len(t, active, 2)
	assert.Equal(t, first, active[0])
	assert.Equal(t, second, active[1])
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
