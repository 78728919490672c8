// Package backendclient sends protocol messages to the voice backend. It
// owns the wire encoding of outbound traffic; callers deal in domain values
// only. Sends while disconnected fail fast and are safe to retry once the
// socket reconnects.
package backendclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/internal/socketfx"
	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_errSendToBackend = "sending %q message to backend: %w"

	_uploadsConfigKey = "uploads"

	_counterSent         = "sent"
	_counterSendFailures = "send_failures"
)

// UploadsConfig is the uploads configuration block.
type UploadsConfig struct {
	StorageLocation string `yaml:"storageLocation"`
}

// Gateway is used to send outbound messages to the backend.
type Gateway interface {
	// SendClearContext asks the backend to clear the workstream's
	// conversation. State changes only on the backend's confirmation.
	SendClearContext(ctx context.Context, workstreamID uuid.UUID) error

	// SendStartRecipe asks the backend to run a recipe under the given
	// session in the given directory.
	SendStartRecipe(ctx context.Context, sessionID uuid.UUID, recipeID string, workingDirectory string) error

	// SendUploadFile pushes file content to the backend's configured
	// storage location.
	SendUploadFile(ctx context.Context, filename string, content []byte) error

	// SendSetDirectory switches the backend's working directory.
	SendSetDirectory(ctx context.Context, path string) error

	// SendPrompt forwards one user utterance to the backend.
	SendPrompt(ctx context.Context, text string) error

	// SendPing checks backend liveness at the protocol level.
	SendPing(ctx context.Context) error
}

// Params are inbound parameters to construct the gateway.
type Params struct {
	fx.In

	Socket socketfx.SocketModule
	Config config.Provider
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	socket          socketfx.SocketModule
	storageLocation string
	logger          *zap.SugaredLogger
	stats           tally.Scope
}

// New returns a Gateway for sending backend messages.
func New(p Params) (Gateway, error) {
	var cfg UploadsConfig
	if err := p.Config.Get(_uploadsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("populate uploads config: %w", err)
	}
	return &gateway{
		socket:          p.Socket,
		storageLocation: cfg.StorageLocation,
		logger:          p.Logger.With("component", "backend_client"),
		stats:           p.Stats.SubScope("backend_client"),
	}, nil
}

func (g *gateway) SendClearContext(ctx context.Context, workstreamID uuid.UUID) error {
	return g.send(ctx, wire.TypeClearContext, wire.NewClearContext(workstreamID))
}

func (g *gateway) SendStartRecipe(ctx context.Context, sessionID uuid.UUID, recipeID string, workingDirectory string) error {
	return g.send(ctx, wire.TypeStartRecipe, wire.NewStartRecipe(sessionID, recipeID, workingDirectory))
}

func (g *gateway) SendUploadFile(ctx context.Context, filename string, content []byte) error {
	return g.send(ctx, wire.TypeUploadFile, wire.NewUploadFile(filename, content, g.storageLocation))
}

func (g *gateway) SendSetDirectory(ctx context.Context, path string) error {
	return g.send(ctx, wire.TypeSetDirectory, wire.NewSetDirectory(path))
}

func (g *gateway) SendPrompt(ctx context.Context, text string) error {
	return g.send(ctx, wire.TypePrompt, wire.NewPrompt(text))
}

func (g *gateway) SendPing(ctx context.Context) error {
	return g.send(ctx, wire.TypePing, wire.NewPing())
}

func (g *gateway) send(ctx context.Context, msgType string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf(_errSendToBackend, msgType, err)
	}
	if err := g.socket.WriteFrame(ctx, payload); err != nil {
		g.stats.Counter(_counterSendFailures).Inc(1)
		return fmt.Errorf(_errSendToBackend, msgType, err)
	}
	g.stats.Counter(_counterSent).Inc(1)
	g.logger.Debugw("message sent", "type", msgType)
	return nil
}
