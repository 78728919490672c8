// Package contextclear coordinates the clear-context round trip with the
// backend. A clear is requested on the user's behalf but applied only when
// the backend confirms it, so local workstream state never runs ahead of the
// session that owns the conversation. The coordinator also publishes the
// workstream collection snapshot for the UI layer.
package contextclear

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	backendclient "github.com/voicecode/vcsync/src/vcsync/gateway/backend-client"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"github.com/voicecode/vcsync/src/vcsync/repository/workstream"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "context_clear"

	_gaugeWorkstreams = "workstreams"
	_counterRequested = "clear_requests"
	_counterCleared   = "sessions_cleared"
)

// Controller coordinates context clears and owns the published workstream
// snapshot.
type Controller interface {
	// RequestClear asks the backend to clear the workstream's conversation
	// context. Local state is untouched until the backend confirms.
	RequestClear(ctx context.Context, workstreamID uuid.UUID) error

	// ApplyCleared applies a confirmed clear: the session detaches and the
	// conversation counters reset, everything else is preserved.
	// Confirmations for unknown workstreams are absorbed.
	ApplyCleared(ctx context.Context, workstreamID uuid.UUID) error

	// Workstreams returns the published snapshot in creation order.
	Workstreams(ctx context.Context) []*entity.Workstream
}

// Params are inbound parameters to initialize the coordinator.
type Params struct {
	fx.In

	Logger      *zap.SugaredLogger
	Stats       tally.Scope
	Publisher   statepub.Publisher
	Workstreams workstream.Repository
	Backend     backendclient.Gateway
}

type controller struct {
	logger    *zap.SugaredLogger
	stats     tally.Scope
	publisher statepub.Publisher
	repo      workstream.Repository
	backend   backendclient.Gateway

	mu        sync.RWMutex
	published []*entity.Workstream
}

// New creates a context-clear coordinator and registers the workstream
// publication topic.
func New(p Params) Controller {
	c := &controller{
		logger:    p.Logger.With("component", _nameKey),
		stats:     p.Stats.SubScope(_nameKey),
		publisher: p.Publisher,
		repo:      p.Workstreams,
		backend:   p.Backend,
	}
	p.Publisher.Register(c)
	return c
}

// Topic identifies the workstream collection publication.
func (c *controller) Topic() statepub.Topic {
	return statepub.TopicWorkstreams
}

// Commit reloads the published snapshot from the store. Called by the
// publisher during a flush. A failed load keeps the previous snapshot so
// observers stay on the last consistent view.
func (c *controller) Commit() {
	snapshot, err := c.repo.List(context.Background())
	if err != nil {
		c.logger.Warnw("listing workstreams for publication", "error", err)
		return
	}
	c.mu.Lock()
	c.published = snapshot
	c.mu.Unlock()
	c.stats.Gauge(_gaugeWorkstreams).Update(float64(len(snapshot)))
}

func (c *controller) RequestClear(ctx context.Context, workstreamID uuid.UUID) error {
	ws, err := c.repo.Get(ctx, workstreamID)
	if err != nil {
		return err
	}
	if ws.IsCleared() {
		// Still forwarded: the backend may hold context the daemon never
		// attached a session for.
		c.logger.Debugw("clear requested for workstream with no session", "workstreamId", workstreamID)
	}
	if err := c.backend.SendClearContext(ctx, workstreamID); err != nil {
		return err
	}
	c.stats.Counter(_counterRequested).Inc(1)
	return nil
}

func (c *controller) ApplyCleared(ctx context.Context, workstreamID uuid.UUID) error {
	err := c.repo.ClearSession(ctx, workstreamID)
	if id, ok := errors.NotFoundWorkstream(err); ok {
		// The record may have been deleted while the confirmation was in
		// flight.
		c.logger.Debugw("clear confirmed for unknown workstream", "workstreamId", id)
		return nil
	}
	if err != nil {
		return err
	}
	c.stats.Counter(_counterCleared).Inc(1)
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) Workstreams(ctx context.Context) []*entity.Workstream {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Workstream, len(c.published))
	copy(out, c.published)
	return out
}
