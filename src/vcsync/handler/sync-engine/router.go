package syncengine

import (
	"context"

	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
)

// route dispatches one decoded message to exactly one controller method.
// Completion and cancellation both end the session's recipe; the registry
// removal is keyed, so the two wire names share a path.
func (h *handler) route(ctx context.Context, msg wire.Message) error {
	switch m := msg.(type) {
	case *wire.ClearContextConfirmed:
		return h.engine.ApplyClearConfirmed(ctx, m)

	case *wire.RecipeStarted:
		h.engine.ApplyRecipeStarted(ctx, m)

	case *wire.RecipeStepAdvanced:
		return h.engine.ApplyRecipeStepAdvanced(ctx, m)

	case *wire.RecipeCompleted:
		h.engine.ApplyRecipeEnded(ctx, m.SessionID)

	case *wire.RecipeCancelled:
		h.engine.ApplyRecipeEnded(ctx, m.SessionID)

	case *wire.ResourcesList:
		h.engine.ApplyResourcesList(ctx, m)

	case *wire.ResourceDeleted:
		h.engine.ApplyResourceDeleted(ctx, m)

	case *wire.FileUploaded:
		h.engine.ApplyFileUploaded(ctx, m)

	case *wire.Connected:
		h.engine.HandleGreeting(ctx, m)

	case *wire.Ack:
		h.engine.HandleAck(ctx, m)

	case *wire.BackendError:
		h.engine.HandleBackendError(ctx, m)

	case *wire.Pong:
		h.engine.HandlePong(ctx)

	case *wire.Unrecognized:
		h.stats.Counter(_counterFramesIgnored).Inc(1)
		h.logger.Debugw("ignoring unrecognized frame", "type", m.Type)
	}
	return nil
}
