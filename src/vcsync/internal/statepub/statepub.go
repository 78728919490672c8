// Package statepub coalesces state-change notifications for the UI layer.
// Registries mutate their authoritative state synchronously and mark their
// topic dirty here; the publisher commits published snapshots and notifies
// subscribers once per topic after a fixed debounce window.
package statepub

import (
	"context"
	"fmt"
	"sync"
	"time"

	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/internal/clock"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKey         = "publish"
	_defaultDebounceMs = 100
	_subscriberBuffer  = 16

	_counterFlushes = "flushes"
	_counterDropped = "dropped_notifications"
)

// Module is an fx module providing the publisher.
var Module = fx.Provide(New)

// Topic identifies one published state collection.
type Topic string

const (
	TopicWorkstreams Topic = "workstreams"
	TopicRecipes     Topic = "recipes"
	TopicResources   Topic = "resources"
	TopicUploads     Topic = "uploads"
)

// Publication is one registry's published side. Commit swaps the registry's
// authoritative state into its published snapshot; it is only called by the
// publisher during a flush.
type Publication interface {
	Topic() Topic
	Commit()
}

// Publisher batches dirty topics behind a debounce window. The window is
// measured from the first unflushed mark; later marks join the batch without
// extending it.
type Publisher interface {
	Register(pub Publication)
	MarkDirty(topic Topic)
	Subscribe() <-chan []Topic
	Close()
}

// Params are inbound parameters to construct a publisher.
type Params struct {
	fx.In

	Clock     clock.Clock
	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Lifecycle fx.Lifecycle
}

type publishConfig struct {
	DebounceMs int64 `yaml:"debounceMs"`
}

type publisher struct {
	clock  clock.Clock
	logger *zap.SugaredLogger
	stats  tally.Scope
	window time.Duration

	mu       sync.Mutex
	sources  map[Topic]Publication
	dirty    map[Topic]struct{}
	order    []Topic
	timer    clock.Timer
	flushing bool
	closed   bool
	subs     []chan []Topic
	wg       sync.WaitGroup
}

// New constructs a publisher and flushes any pending batch on shutdown.
func New(p Params) (Publisher, error) {
	var cfg publishConfig
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("populate publish config: %w", err)
	}
	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = _defaultDebounceMs
	}

	pub := &publisher{
		clock:   p.Clock,
		logger:  p.Logger.With("component", "statepub"),
		stats:   p.Stats.SubScope("publish"),
		window:  time.Duration(cfg.DebounceMs) * time.Millisecond,
		sources: make(map[Topic]Publication),
		dirty:   make(map[Topic]struct{}),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pub.Close()
			return nil
		},
	})
	return pub, nil
}

// Register adds a publication source. Topics registered twice keep the last
// source.
func (p *publisher) Register(pub Publication) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources[pub.Topic()] = pub
}

// MarkDirty queues the topic for the next flush. The first mark of a batch
// arms the debounce timer; marks for an already-dirty topic are no-ops.
func (p *publisher) MarkDirty(topic Topic) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	if _, ok := p.sources[topic]; !ok {
		p.logger.Debugw("mark for unregistered topic", "topic", topic)
		return
	}
	if _, ok := p.dirty[topic]; ok {
		return
	}
	p.dirty[topic] = struct{}{}
	p.order = append(p.order, topic)
	if p.timer == nil {
		p.timer = p.clock.AfterFunc(p.window, func() {
			p.mu.Lock()
			p.timer = nil
			p.mu.Unlock()
			p.flush()
		})
	}
}

// Subscribe returns a channel carrying the flushed topics of each batch, in
// first-marked order. A subscriber that falls behind misses batches rather
// than delaying them. The channel closes when the publisher closes.
func (p *publisher) Subscribe() <-chan []Topic {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch := make(chan []Topic, _subscriberBuffer)
	if p.closed {
		close(ch)
		return ch
	}
	p.subs = append(p.subs, ch)
	return ch
}

// Close stops the timer, flushes anything pending, and closes subscriber
// channels. Marks after Close are dropped.
func (p *publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()

	p.flush()
	p.wg.Wait()

	p.mu.Lock()
	for _, ch := range p.subs {
		close(ch)
	}
	p.subs = nil
	p.mu.Unlock()
}

func (p *publisher) flush() {
	p.mu.Lock()
	if p.flushing || len(p.order) == 0 {
		p.mu.Unlock()
		return
	}
	p.flushing = true
	p.wg.Add(1)
	batch := p.order
	p.order = nil
	p.dirty = make(map[Topic]struct{})
	pubs := make([]Publication, 0, len(batch))
	for _, topic := range batch {
		pubs = append(pubs, p.sources[topic])
	}
	subs := make([]chan []Topic, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, pub := range pubs {
		pub.Commit()
	}
	for _, ch := range subs {
		select {
		case ch <- batch:
		default:
			p.stats.Counter(_counterDropped).Inc(1)
		}
	}
	p.stats.Counter(_counterFlushes).Inc(1)

	p.mu.Lock()
	p.flushing = false
	p.mu.Unlock()
	p.wg.Done()
}
