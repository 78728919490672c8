package statepub

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/internal/clock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu   sync.Mutex
	fn   func()
	dead bool
}

func (c *manualClock) Now() time.Time        { return time.Unix(0, 0).UTC() }
func (c *manualClock) Sleep(d time.Duration) {}

func (c *manualClock) AfterFunc(d time.Duration, fn func()) clock.Timer {
	t := &manualTimer{fn: fn}
	c.mu.Lock()
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

// fire runs every timer armed so far. Timers armed while firing wait for the
// next call.
func (c *manualClock) fire() {
	c.mu.Lock()
	due := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range due {
		if !t.stopped() {
			t.fn()
		}
	}
}

func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped() {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.dead
	t.dead = true
	return !was
}

func (t *manualTimer) stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dead
}

type fakePublication struct {
	topic    Topic
	mu       sync.Mutex
	commits  int
	onCommit func()
}

func (f *fakePublication) Topic() Topic { return f.topic }

func (f *fakePublication) Commit() {
	f.mu.Lock()
	f.commits++
	f.mu.Unlock()
	if f.onCommit != nil {
		f.onCommit()
	}
}

func (f *fakePublication) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

func newTestPublisher(c clock.Clock, window time.Duration) *publisher {
	return &publisher{
		clock:   c,
		logger:  zap.NewNop().Sugar(),
		stats:   tally.NewTestScope("testing", make(map[string]string, 0)),
		window:  window,
		sources: make(map[Topic]Publication),
		dirty:   make(map[Topic]struct{}),
	}
}

func TestNew(t *testing.T) {
	t.Run("configured window", func(t *testing.T) {
		provider, err := config.NewStaticProvider(map[string]interface{}{
			"publish": map[string]interface{}{"debounceMs": 25},
		})
		require.NoError(t, err)
		lc := fxtest.NewLifecycle(t)
		pub, err := New(Params{
			Clock:     clock.New(),
			Config:    provider,
			Logger:    zap.NewNop().Sugar(),
			Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
			Lifecycle: lc,
		})
		require.NoError(t, err)
		assert.Equal(t, 25*time.Millisecond, pub.(*publisher).window)
		lc.RequireStart().RequireStop()
	})

	t.Run("default window", func(t *testing.T) {
		provider, err := config.NewStaticProvider(map[string]interface{}{})
		require.NoError(t, err)
		pub, err := New(Params{
			Clock:     clock.New(),
			Config:    provider,
			Logger:    zap.NewNop().Sugar(),
			Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
			Lifecycle: fxtest.NewLifecycle(t),
		})
		require.NoError(t, err)
		assert.Equal(t, 100*time.Millisecond, pub.(*publisher).window)
	})
}

func TestFlushAfterWindow(t *testing.T) {
	p := newTestPublisher(clock.New(), 10*time.Millisecond)
	defer p.Close()
	recipes := &fakePublication{topic: TopicRecipes}
	p.Register(recipes)
	sub := p.Subscribe()

	p.MarkDirty(TopicRecipes)

	batch := <-sub
	assert.Equal(t, []Topic{TopicRecipes}, batch)
	assert.Equal(t, 1, recipes.count())
}

func TestRapidMarksShareOneWindow(t *testing.T) {
	c := &manualClock{}
	p := newTestPublisher(c, 100*time.Millisecond)
	recipes := &fakePublication{topic: TopicRecipes}
	resources := &fakePublication{topic: TopicResources}
	p.Register(recipes)
	p.Register(resources)
	sub := p.Subscribe()

	p.MarkDirty(TopicRecipes)
	p.MarkDirty(TopicRecipes)
	p.MarkDirty(TopicResources)
	p.MarkDirty(TopicRecipes)

	// All marks ride the timer armed by the first one.
	assert.Equal(t, 1, c.pending())

	c.fire()
	assert.Equal(t, []Topic{TopicRecipes, TopicResources}, <-sub)
	assert.Equal(t, 1, recipes.count())
	assert.Equal(t, 1, resources.count())

	// The next mark opens a fresh window.
	p.MarkDirty(TopicRecipes)
	assert.Equal(t, 1, c.pending())
	c.fire()
	assert.Equal(t, []Topic{TopicRecipes}, <-sub)
	assert.Equal(t, 2, recipes.count())
}

func TestMarkDuringFlushJoinsNextBatch(t *testing.T) {
	c := &manualClock{}
	p := newTestPublisher(c, 100*time.Millisecond)
	resources := &fakePublication{topic: TopicResources}
	recipes := &fakePublication{topic: TopicRecipes}
	recipes.onCommit = func() { p.MarkDirty(TopicResources) }
	p.Register(recipes)
	p.Register(resources)
	sub := p.Subscribe()

	p.MarkDirty(TopicRecipes)
	c.fire()
	assert.Equal(t, []Topic{TopicRecipes}, <-sub)
	assert.Equal(t, 0, resources.count())

	// The mark made mid-flush armed a second window.
	require.Equal(t, 1, c.pending())
	c.fire()
	assert.Equal(t, []Topic{TopicResources}, <-sub)
	assert.Equal(t, 1, resources.count())
}

func TestUnregisteredTopicIgnored(t *testing.T) {
	c := &manualClock{}
	p := newTestPublisher(c, 100*time.Millisecond)

	p.MarkDirty(TopicUploads)
	assert.Equal(t, 0, c.pending())
}

func TestClose(t *testing.T) {
	c := &manualClock{}
	p := newTestPublisher(c, 100*time.Millisecond)
	recipes := &fakePublication{topic: TopicRecipes}
	p.Register(recipes)
	sub := p.Subscribe()

	p.MarkDirty(TopicRecipes)
	p.Close()

	// Pending batch flushes synchronously, then the channel closes.
	batch, ok := <-sub
	require.True(t, ok)
	assert.Equal(t, []Topic{TopicRecipes}, batch)
	_, ok = <-sub
	assert.False(t, ok)
	assert.Equal(t, 1, recipes.count())

	p.MarkDirty(TopicRecipes)
	assert.Equal(t, 1, recipes.count())
	assert.Equal(t, 0, c.pending())

	late := p.Subscribe()
	_, ok = <-late
	assert.False(t, ok)

	// Closing twice is harmless.
	p.Close()
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
