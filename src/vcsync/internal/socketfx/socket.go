// Package socketfx maintains the daemon's websocket link to the voice
// backend. It dials on startup, redials with backoff after any failure, and
// feeds inbound frames to a registered handler one at a time so downstream
// state always observes backend events in arrival order.
package socketfx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	tally "github.com/uber-go/tally"
	vcerrors "github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKey = "socket"

	_defaultHandshakeTimeoutMs    = 5000
	_defaultWriteTimeoutMs        = 5000
	_defaultPongTimeoutMs         = 45000
	_defaultPingIntervalMs        = 15000
	_defaultReconnectBackoffMs    = 500
	_defaultReconnectBackoffMaxMs = 15000

	_counterDials        = "dials"
	_counterDialFailures = "dial_failures"
	_counterDisconnects  = "disconnects"
	_counterFramesIn     = "frames_in"
	_counterFramesOut    = "frames_out"
	_gaugeConnected      = "connected"
)

// Module is an fx module providing the backend socket.
var Module = fx.Provide(New)

// SocketModule represents the managed connection to the backend.
type SocketModule interface {
	OnStart(ctx context.Context) error
	RegisterFrameHandler(handler FrameHandler) error
	WriteFrame(ctx context.Context, payload []byte) error
	Connected() bool
}

// FrameHandler receives connection lifecycle events and inbound frames.
// HandleFrame is called sequentially from the read loop; a slow handler
// delays subsequent frames rather than reordering them.
type FrameHandler interface {
	HandleConnect(ctx context.Context)
	HandleFrame(ctx context.Context, payload []byte)
	HandleDisconnect(ctx context.Context, err error)
}

// Config is the socket configuration block.
type Config struct {
	URL                   string `yaml:"url"`
	HandshakeTimeoutMs    int64  `yaml:"handshakeTimeoutMs"`
	WriteTimeoutMs        int64  `yaml:"writeTimeoutMs"`
	PongTimeoutMs         int64  `yaml:"pongTimeoutMs"`
	PingIntervalMs        int64  `yaml:"pingIntervalMs"`
	ReconnectBackoffMs    int64  `yaml:"reconnectBackoffMs"`
	ReconnectBackoffMaxMs int64  `yaml:"reconnectBackoffMaxMs"`
}

// Params define values to be used by the socket module.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type module struct {
	url              string
	handshakeTimeout time.Duration
	writeTimeout     time.Duration
	pongTimeout      time.Duration
	pingInterval     time.Duration
	backoffInitial   time.Duration
	backoffMax       time.Duration

	handler FrameHandler
	logger  *zap.SugaredLogger
	stats   tally.Scope

	mu      sync.RWMutex
	conn    *websocket.Conn
	writeMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates the managed socket and hooks its run loop into the lifecycle.
func New(p Params) (SocketModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := &module{
		logger: p.Logger.With("component", "socket"),
		stats:  p.Stats.SubScope("socket"),
		done:   make(chan struct{}),
	}
	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.OnStart,
		OnStop:  m.onStop,
	})
	return m, nil
}

// OnStart launches the connect loop. A frame handler must be registered
// first; frames have nowhere else to go.
func (m *module) OnStart(ctx context.Context) error {
	if m.handler == nil {
		return errors.New("cannot start socket, no frame handler set")
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	go m.run()
	return nil
}

// RegisterFrameHandler sets the handler for inbound frames and lifecycle
// events.
func (m *module) RegisterFrameHandler(handler FrameHandler) error {
	if m.handler != nil {
		return errors.New("cannot register a duplicate frame handler")
	}
	m.handler = handler
	return nil
}

// WriteFrame sends one text frame to the backend. Writes are serialized;
// calls while disconnected fail with NotConnectedError.
func (m *module) WriteFrame(ctx context.Context, payload []byte) error {
	m.mu.RLock()
	conn := m.conn
	m.mu.RUnlock()
	if conn == nil {
		return vcerrors.NotConnectedError
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(m.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	m.stats.Counter(_counterFramesOut).Inc(1)
	return nil
}

// Connected reports whether a backend connection is currently up.
func (m *module) Connected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conn != nil
}

func (m *module) onStop(ctx context.Context) error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	m.closeConn()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run dials until stopped. Successful connections reset the backoff; any
// read failure tears the connection down and starts the next attempt.
func (m *module) run() {
	defer close(m.done)
	backoff := m.backoffInitial
	for {
		conn, err := m.dial()
		if err != nil {
			m.stats.Counter(_counterDialFailures).Inc(1)
			m.logger.Warnw("backend dial failed", "url", m.url, "error", err, "retryIn", backoff)
			select {
			case <-m.ctx.Done():
				return
			case <-time.After(backoff):
			}
			backoff = backoff * 2
			if backoff > m.backoffMax {
				backoff = m.backoffMax
			}
			continue
		}

		backoff = m.backoffInitial
		m.stats.Counter(_counterDials).Inc(1)
		m.stats.Gauge(_gaugeConnected).Update(1)
		m.logger.Infow("backend connected", "url", m.url)
		m.setConn(conn)
		m.handler.HandleConnect(m.ctx)

		readErr := m.readLoop(conn)

		m.setConn(nil)
		conn.Close()
		m.stats.Gauge(_gaugeConnected).Update(0)
		m.stats.Counter(_counterDisconnects).Inc(1)
		m.handler.HandleDisconnect(m.ctx, readErr)

		select {
		case <-m.ctx.Done():
			return
		default:
		}
		m.logger.Warnw("backend disconnected", "error", readErr)
	}
}

func (m *module) dial() (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: m.handshakeTimeout}
	conn, _, err := dialer.DialContext(m.ctx, m.url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// readLoop feeds frames to the handler until the connection fails. Liveness
// rides on websocket pings: each pong extends the read deadline, so a dead
// peer surfaces as a read timeout within one pong window.
func (m *module) readLoop(conn *websocket.Conn) error {
	conn.SetReadDeadline(time.Now().Add(m.pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(m.pongTimeout))
	})

	pingDone := make(chan struct{})
	defer close(pingDone)
	go m.pingLoop(conn, pingDone)

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if messageType != websocket.TextMessage {
			m.logger.Debugw("ignoring non-text frame", "messageType", messageType)
			continue
		}
		conn.SetReadDeadline(time.Now().Add(m.pongTimeout))
		m.stats.Counter(_counterFramesIn).Inc(1)
		m.handler.HandleFrame(m.ctx, payload)
	}
}

func (m *module) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(m.writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func (m *module) setConn(conn *websocket.Conn) {
	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()
}

func (m *module) closeConn() {
	m.mu.RLock()
	conn := m.conn
	m.mu.RUnlock()
	if conn != nil {
		conn.Close()
	}
}

// processConfig parses the configuration values required by this module.
func (m *module) processConfig(cfg config.Provider) error {
	var c Config
	if err := cfg.Get(_configKey).Populate(&c); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKey, err)
	}
	if c.URL == "" {
		return fmt.Errorf("missing field %q in config", _configKey+".url")
	}

	m.url = c.URL
	m.handshakeTimeout = msOrDefault(c.HandshakeTimeoutMs, _defaultHandshakeTimeoutMs)
	m.writeTimeout = msOrDefault(c.WriteTimeoutMs, _defaultWriteTimeoutMs)
	m.pongTimeout = msOrDefault(c.PongTimeoutMs, _defaultPongTimeoutMs)
	m.pingInterval = msOrDefault(c.PingIntervalMs, _defaultPingIntervalMs)
	m.backoffInitial = msOrDefault(c.ReconnectBackoffMs, _defaultReconnectBackoffMs)
	m.backoffMax = msOrDefault(c.ReconnectBackoffMaxMs, _defaultReconnectBackoffMaxMs)
	return nil
}

func msOrDefault(v int64, fallback int64) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Millisecond
}
