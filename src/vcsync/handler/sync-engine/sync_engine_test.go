package syncengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/controller/sync-engine/syncenginemock"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/internal/socketfx/socketfxmock"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*handler, *syncenginemock.MockController) {
	ctrl := gomock.NewController(t)
	engine := syncenginemock.NewMockController(ctrl)
	h := &handler{
		engine: engine,
		logger: zap.NewNop().Sugar(),
		stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
	}
	return h, engine
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := syncenginemock.NewMockController(ctrl)
	logger := zap.NewNop().Sugar()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	t.Run("registers on the socket", func(t *testing.T) {
		socket := socketfxmock.NewMockSocketModule(ctrl)
		socket.EXPECT().RegisterFrameHandler(gomock.Any())

		h, err := New(Params{
			Controller: engine,
			Socket:     socket,
			Logger:     logger,
			Stats:      testScope,
		})
		require.NoError(t, err)
		assert.NotNil(t, h)
	})

	t.Run("registration failure", func(t *testing.T) {
		socket := socketfxmock.NewMockSocketModule(ctrl)
		socket.EXPECT().RegisterFrameHandler(gomock.Any()).Return(errors.New("frame handler already registered"))

		_, err := New(Params{
			Controller: engine,
			Socket:     socket,
			Logger:     logger,
			Stats:      testScope,
		})
		assert.Error(t, err)
	})
}

func TestHandleConnect(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().HandleSocketConnected(gomock.Any())
	h.HandleConnect(context.Background())
}

func TestHandleDisconnect(t *testing.T) {
	h, engine := newTestHandler(t)
	reason := errors.New("read tcp: connection reset by peer")
	engine.EXPECT().HandleSocketDisconnected(gomock.Any(), reason)
	h.HandleDisconnect(context.Background(), reason)
}

func TestHandleFrameMalformed(t *testing.T) {
	ctx := context.Background()

	// None of these reach the controller; the mock fails on any call.
	tests := []struct {
		name  string
		frame string
	}{
		{
			name:  "not an object",
			frame: `[1,2,3]`,
		},
		{
			name:  "truncated frame",
			frame: `{"type":`,
		},
		{
			name:  "missing type tag",
			frame: `{"workstream_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"}`,
		},
		{
			name:  "non-string type tag",
			frame: `{"type":12}`,
		},
		{
			name:  "missing variant field",
			frame: `{"type":"recipe_completed"}`,
		},
		{
			name:  "wrong field type",
			frame: `{"type":"recipe_step_advanced","session_id":"sess-1","current_step":"two","step_count":4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)
			h.HandleFrame(ctx, []byte(tt.frame))
		})
	}
}

func TestHandleFrameContinuesAfterDrop(t *testing.T) {
	ctx := context.Background()
	h, engine := newTestHandler(t)

	engine.EXPECT().ApplyRecipeStepAdvanced(gomock.Any(), gomock.Any()).
		Return(&errors.OrphanSessionError{SessionID: "sess-9"})
	engine.EXPECT().HandlePong(gomock.Any())

	// A dropped frame must not poison the stream: the malformed frame and the
	// failed apply are both swallowed, and the pong after them still routes.
	h.HandleFrame(ctx, []byte(`{"type":`))
	h.HandleFrame(ctx, []byte(`{"type":"recipe_step_advanced","session_id":"sess-9","current_step":2,"step_count":5}`))
	h.HandleFrame(ctx, []byte(`{"type":"pong"}`))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
