// Package syncengine implements the vcsync daemon business logic. Inbound
// backend events are applied to the registries and the workstream store in
// arrival order; user-facing operations build the matching backend commands
// and send them through the gateway, bypassing the publisher.
package syncengine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	contextclear "github.com/voicecode/vcsync/src/vcsync/controller/context-clear"
	"github.com/voicecode/vcsync/src/vcsync/controller/recipes"
	"github.com/voicecode/vcsync/src/vcsync/controller/resources"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	backendclient "github.com/voicecode/vcsync/src/vcsync/gateway/backend-client"
	"github.com/voicecode/vcsync/src/vcsync/internal/clientinfofile"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"github.com/voicecode/vcsync/src/vcsync/internal/wire"
	"github.com/voicecode/vcsync/src/vcsync/mapper"
	"github.com/voicecode/vcsync/src/vcsync/repository/workstream"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "sync_engine"

	// Configuration keys
	_socketURLKey = "socket.url"

	// Info file fields
	_infoKeyURL         = "url"
	_infoKeyConnected   = "connected"
	_infoKeyLastConnect = "lastConnectedAt"

	// Conversation previews keep the head of the prompt only.
	_previewMaxLen = 120

	_counterRecipesStarted = "recipes_started"
	_counterPrompts        = "prompts"
	_counterBackendErrors  = "backend_errors"
)

// Controller orchestrates the business logic for each protocol event.
type Controller interface {
	// Inbound events, routed by the frame handler in arrival order.
	ApplyClearConfirmed(ctx context.Context, msg *wire.ClearContextConfirmed) error
	ApplyRecipeStarted(ctx context.Context, msg *wire.RecipeStarted)
	ApplyRecipeStepAdvanced(ctx context.Context, msg *wire.RecipeStepAdvanced) error
	ApplyRecipeEnded(ctx context.Context, sessionID string)
	ApplyResourcesList(ctx context.Context, msg *wire.ResourcesList)
	ApplyResourceDeleted(ctx context.Context, msg *wire.ResourceDeleted)
	ApplyFileUploaded(ctx context.Context, msg *wire.FileUploaded)

	// Session-layer events.
	HandleSocketConnected(ctx context.Context)
	HandleSocketDisconnected(ctx context.Context, reason error)
	HandleGreeting(ctx context.Context, msg *wire.Connected)
	HandleAck(ctx context.Context, msg *wire.Ack)
	HandleBackendError(ctx context.Context, msg *wire.BackendError)
	HandlePong(ctx context.Context)

	// Backend commands on the user's behalf.
	ClearContext(ctx context.Context, workstreamID uuid.UUID) error
	StartRecipe(ctx context.Context, workstreamID uuid.UUID, recipeID string) (uuid.UUID, error)
	UploadFile(ctx context.Context, filename string, content []byte) error
	SetDirectory(ctx context.Context, path string) error
	Prompt(ctx context.Context, workstreamID uuid.UUID, text string) error
	Ping(ctx context.Context) error

	// Workstream management.
	CreateWorkstream(ctx context.Context, name string, workingDirectory string) (*entity.Workstream, error)
	DeleteWorkstream(ctx context.Context, workstreamID uuid.UUID) error
	SetPriority(ctx context.Context, workstreamID uuid.UUID, label entity.PriorityLabel, order int64) error
	ClearPriority(ctx context.Context, workstreamID uuid.UUID) error
	MarkRead(ctx context.Context, workstreamID uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	Config       config.Provider
	Workstreams  workstream.Repository
	Recipes      recipes.Controller
	Resources    resources.Controller
	ContextClear contextclear.Controller
	Backend      backendclient.Gateway
	Publisher    statepub.Publisher
	InfoFile     clientinfofile.ClientInfoFile
}

type controller struct {
	logger       *zap.SugaredLogger
	stats        tally.Scope
	repo         workstream.Repository
	recipes      recipes.Controller
	resources    resources.Controller
	contextClear contextclear.Controller
	backend      backendclient.Gateway
	publisher    statepub.Publisher
	infoFile     clientinfofile.ClientInfoFile
}

// New constructs the top-level controller for the daemon.
func New(p Params) (Controller, error) {
	var socketURL string
	if err := p.Config.Get(_socketURLKey).Populate(&socketURL); err != nil {
		return nil, fmt.Errorf("unable to get socket url from config: %w", err)
	}

	c := &controller{
		logger:       p.Logger.With("component", _nameKey),
		stats:        p.Stats.SubScope(_nameKey),
		repo:         p.Workstreams,
		recipes:      p.Recipes,
		resources:    p.Resources,
		contextClear: p.ContextClear,
		backend:      p.Backend,
		publisher:    p.Publisher,
		infoFile:     p.InfoFile,
	}

	if socketURL != "" {
		if err := c.infoFile.UpdateField(_infoKeyURL, socketURL); err != nil {
			c.logger.Warnw("recording socket url in info file", "error", err)
		}
	}
	return c, nil
}

func (c *controller) ApplyClearConfirmed(ctx context.Context, msg *wire.ClearContextConfirmed) error {
	id, err := uuid.FromString(msg.WorkstreamID)
	if err != nil {
		return &errors.MalformedMessageError{
			MessageType: wire.TypeClearContextConfirmed,
			Reason:      fmt.Sprintf("workstream_id %q is not a uuid", msg.WorkstreamID),
		}
	}
	return c.contextClear.ApplyCleared(ctx, id)
}

func (c *controller) ApplyRecipeStarted(ctx context.Context, msg *wire.RecipeStarted) {
	c.recipes.ApplyStarted(ctx, mapper.RecipeStartedToActiveRecipe(msg))
}

func (c *controller) ApplyRecipeStepAdvanced(ctx context.Context, msg *wire.RecipeStepAdvanced) error {
	return c.recipes.ApplyStepAdvanced(ctx, msg.SessionID, msg.CurrentStep, msg.StepCount)
}

func (c *controller) ApplyRecipeEnded(ctx context.Context, sessionID string) {
	c.recipes.ApplyEnded(ctx, sessionID)
}

func (c *controller) ApplyResourcesList(ctx context.Context, msg *wire.ResourcesList) {
	c.resources.ReplaceAll(ctx, msg.StorageLocation, mapper.ResourceEntriesToEntities(msg.Resources))
}

func (c *controller) ApplyResourceDeleted(ctx context.Context, msg *wire.ResourceDeleted) {
	c.resources.RemoveByFilename(ctx, msg.Filename)
}

func (c *controller) ApplyFileUploaded(ctx context.Context, msg *wire.FileUploaded) {
	c.resources.RecordUploadOutcome(ctx, mapper.FileUploadedToResult(msg))
}

func (c *controller) HandleSocketConnected(ctx context.Context) {
	c.recordConnectionState(true)
}

func (c *controller) HandleSocketDisconnected(ctx context.Context, reason error) {
	c.logger.Debugw("backend session interrupted", "error", reason)
	c.recordConnectionState(false)
}

func (c *controller) HandleGreeting(ctx context.Context, msg *wire.Connected) {
	c.logger.Infow("backend greeting received", "message", msg.Message)
}

func (c *controller) HandleAck(ctx context.Context, msg *wire.Ack) {
	c.logger.Debugw("backend acknowledged command", "message", msg.Message)
}

func (c *controller) HandleBackendError(ctx context.Context, msg *wire.BackendError) {
	c.stats.Counter(_counterBackendErrors).Inc(1)
	c.logger.Warnw("backend reported error", "message", msg.Message)
}

func (c *controller) HandlePong(ctx context.Context) {
	c.logger.Debugw("backend pong")
}

func (c *controller) ClearContext(ctx context.Context, workstreamID uuid.UUID) error {
	return c.contextClear.RequestClear(ctx, workstreamID)
}

// StartRecipe launches a recipe for the workstream. A cleared workstream gets
// a fresh session attached first; an active one reuses its session, so two
// recipes started back to back land in the same backend conversation.
func (c *controller) StartRecipe(ctx context.Context, workstreamID uuid.UUID, recipeID string) (uuid.UUID, error) {
	ws, err := c.repo.Get(ctx, workstreamID)
	if err != nil {
		return uuid.Nil, err
	}

	var sessionID uuid.UUID
	if ws.ActiveSessionID != nil {
		sessionID = *ws.ActiveSessionID
	} else {
		sessionID, err = uuid.NewV4()
		if err != nil {
			return uuid.Nil, err
		}
		if err := c.repo.AttachSession(ctx, workstreamID, sessionID); err != nil {
			return uuid.Nil, err
		}
		c.publisher.MarkDirty(statepub.TopicWorkstreams)
	}

	if err := c.backend.SendStartRecipe(ctx, sessionID, recipeID, ws.WorkingDirectory); err != nil {
		return uuid.Nil, err
	}
	c.stats.Counter(_counterRecipesStarted).Inc(1)
	c.logger.Infow("recipe start requested",
		"workstreamId", workstreamID,
		"sessionId", sessionID,
		"recipeId", recipeID,
	)
	return sessionID, nil
}

func (c *controller) UploadFile(ctx context.Context, filename string, content []byte) error {
	if filename == "" {
		return errors.New("upload filename is required")
	}
	return c.backend.SendUploadFile(ctx, filename, content)
}

func (c *controller) SetDirectory(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("directory path is required")
	}
	return c.backend.SendSetDirectory(ctx, path)
}

// Prompt forwards the user's prompt to the workstream's active session and
// bumps its conversation counters. The bump is what a later confirmed clear
// resets.
func (c *controller) Prompt(ctx context.Context, workstreamID uuid.UUID, text string) error {
	ws, err := c.repo.Get(ctx, workstreamID)
	if err != nil {
		return err
	}
	if ws.IsCleared() {
		return errors.NoActiveSessionError
	}

	if err := c.backend.SendPrompt(ctx, text); err != nil {
		return err
	}
	if err := c.repo.BumpMessage(ctx, workstreamID, preview(text)); err != nil {
		return err
	}
	c.stats.Counter(_counterPrompts).Inc(1)
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) Ping(ctx context.Context) error {
	return c.backend.SendPing(ctx)
}

func (c *controller) CreateWorkstream(ctx context.Context, name string, workingDirectory string) (*entity.Workstream, error) {
	if name == "" {
		return nil, errors.New("workstream name is required")
	}
	if workingDirectory == "" {
		return nil, errors.New("workstream working directory is required")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	ws := &entity.Workstream{
		ID:               id,
		Name:             name,
		WorkingDirectory: workingDirectory,
	}
	if err := c.repo.Create(ctx, ws); err != nil {
		return nil, err
	}
	c.publisher.MarkDirty(statepub.TopicWorkstreams)

	// Read back so the caller sees the stored defaults.
	return c.repo.Get(ctx, id)
}

func (c *controller) DeleteWorkstream(ctx context.Context, workstreamID uuid.UUID) error {
	if err := c.repo.Delete(ctx, workstreamID); err != nil {
		return err
	}
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) SetPriority(ctx context.Context, workstreamID uuid.UUID, label entity.PriorityLabel, order int64) error {
	if err := c.repo.SetPriority(ctx, workstreamID, label, order); err != nil {
		return err
	}
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) ClearPriority(ctx context.Context, workstreamID uuid.UUID) error {
	if err := c.repo.ClearPriority(ctx, workstreamID); err != nil {
		return err
	}
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) MarkRead(ctx context.Context, workstreamID uuid.UUID) error {
	if err := c.repo.MarkRead(ctx, workstreamID); err != nil {
		return err
	}
	c.publisher.MarkDirty(statepub.TopicWorkstreams)
	return nil
}

func (c *controller) recordConnectionState(connected bool) {
	if err := c.infoFile.UpdateField(_infoKeyConnected, strconv.FormatBool(connected)); err != nil {
		c.logger.Warnw("recording connection state", "error", err)
		return
	}
	if !connected {
		return
	}
	if err := c.infoFile.UpdateField(_infoKeyLastConnect, time.Now().UTC().Format(time.RFC3339)); err != nil {
		c.logger.Warnw("recording connect time", "error", err)
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= _previewMaxLen {
		return text
	}
	return string(runes[:_previewMaxLen])
}
