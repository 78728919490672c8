// Package syncengine implements the vcsync daemon's socket-facing handler:
// it owns frame decoding and routes each decoded message to the controller.
package syncengine

import (
	"context"

	tally "github.com/uber-go/tally"
	controller "github.com/voicecode/vcsync/src/vcsync/controller/sync-engine"
	"github.com/voicecode/vcsync/src/vcsync/internal/socketfx"
	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "router"

	_counterFramesDropped = "frames_dropped"
	_counterFramesIgnored = "frames_ignored"
)

// Handler receives the socket's lifecycle events and inbound frames.
type Handler = socketfx.FrameHandler

// Params are inbound parameters to initialize the handler.
type Params struct {
	fx.In

	Controller controller.Controller
	Socket     socketfx.SocketModule
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type handler struct {
	engine controller.Controller
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New constructs the frame handler and registers it on the socket.
func New(p Params) (Handler, error) {
	h := &handler{
		engine: p.Controller,
		logger: p.Logger.With("component", _nameKey),
		stats:  p.Stats.SubScope(_nameKey),
	}
	if err := p.Socket.RegisterFrameHandler(h); err != nil {
		return nil, err
	}
	return h, nil
}

// HandleConnect reports an established backend connection.
func (h *handler) HandleConnect(ctx context.Context) {
	h.engine.HandleSocketConnected(ctx)
}

// HandleFrame decodes one inbound frame and routes it. A frame that fails to
// decode or apply is dropped; the stream continues either way.
func (h *handler) HandleFrame(ctx context.Context, payload []byte) {
	msg, err := wire.Decode(payload)
	if err != nil {
		h.stats.Counter(_counterFramesDropped).Inc(1)
		h.logger.Warnw("dropping malformed frame", "error", err)
		return
	}
	if err := h.route(ctx, msg); err != nil {
		h.stats.Counter(_counterFramesDropped).Inc(1)
		h.logger.Warnw("dropping frame after apply failure", "error", err)
	}
}

// HandleDisconnect reports a lost backend connection.
func (h *handler) HandleDisconnect(ctx context.Context, err error) {
	h.engine.HandleSocketDisconnected(ctx, err)
}
