// Package resources mirrors the backend's uploaded-resource collection. The
// backend owns the collection and announces replacements and deletions; the
// registry never edits entries locally.
package resources

import (
	"context"
	"sync"

	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey = "resources"

	_gaugeResources       = "resources"
	_counterUploadResults = "upload_results"
)

// Controller mirrors backend resource events.
type Controller interface {
	// ReplaceAll swaps the whole collection for the backend's latest listing.
	// An empty listing is a valid replacement.
	ReplaceAll(ctx context.Context, storageLocation string, resources []entity.Resource)

	// RemoveByFilename drops the entry with the given filename. Unknown
	// filenames are ignored.
	RemoveByFilename(ctx context.Context, filename string)

	// RecordUploadOutcome stores the latest upload result. The collection
	// itself only changes when the backend announces a new listing.
	RecordUploadOutcome(ctx context.Context, result entity.UploadResult)

	// Listing returns the published collection in backend order.
	Listing(ctx context.Context) []entity.Resource

	// StorageLocation returns the published backend storage location.
	StorageLocation(ctx context.Context) string

	// LastUpload returns the published upload result, if any upload has
	// finished since startup.
	LastUpload(ctx context.Context) (entity.UploadResult, bool)
}

// Params are inbound parameters to initialize the registry.
type Params struct {
	fx.In

	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Publisher statepub.Publisher
}

type controller struct {
	logger    *zap.SugaredLogger
	stats     tally.Scope
	publisher statepub.Publisher

	mu              sync.RWMutex
	resources       []entity.Resource
	storageLocation string
	lastUpload      *entity.UploadResult
	pubResources    []entity.Resource
	pubStorage      string
	pubLastUpload   *entity.UploadResult
}

// New creates a resource registry and registers its publication topics.
func New(p Params) Controller {
	c := &controller{
		logger:    p.Logger.With("component", _nameKey),
		stats:     p.Stats.SubScope(_nameKey),
		publisher: p.Publisher,
	}
	p.Publisher.Register(resourcesPublication{c})
	p.Publisher.Register(uploadsPublication{c})
	return c
}

// resourcesPublication publishes the collection and storage location.
type resourcesPublication struct{ c *controller }

func (p resourcesPublication) Topic() statepub.Topic { return statepub.TopicResources }
func (p resourcesPublication) Commit()               { p.c.commitResources() }

// uploadsPublication publishes the single upload-result slot.
type uploadsPublication struct{ c *controller }

func (p uploadsPublication) Topic() statepub.Topic { return statepub.TopicUploads }
func (p uploadsPublication) Commit()               { p.c.commitUploads() }

func (c *controller) ReplaceAll(ctx context.Context, storageLocation string, resources []entity.Resource) {
	defer c.updateMetrics()
	c.mu.Lock()
	c.resources = resources
	c.storageLocation = storageLocation
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicResources)
}

func (c *controller) RemoveByFilename(ctx context.Context, filename string) {
	defer c.updateMetrics()
	c.mu.Lock()
	kept := c.resources[:0:0]
	for _, r := range c.resources {
		if r.Filename != filename {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(c.resources) {
		c.mu.Unlock()
		c.logger.Debugw("delete for untracked resource", "filename", filename)
		return
	}
	c.resources = kept
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicResources)
}

func (c *controller) RecordUploadOutcome(ctx context.Context, result entity.UploadResult) {
	c.stats.Counter(_counterUploadResults).Inc(1)
	c.mu.Lock()
	c.lastUpload = &result
	c.mu.Unlock()
	c.publisher.MarkDirty(statepub.TopicUploads)
}

func (c *controller) Listing(ctx context.Context) []entity.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Resource, len(c.pubResources))
	copy(out, c.pubResources)
	return out
}

func (c *controller) StorageLocation(ctx context.Context) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pubStorage
}

func (c *controller) LastUpload(ctx context.Context) (entity.UploadResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.pubLastUpload == nil {
		return entity.UploadResult{}, false
	}
	return *c.pubLastUpload, true
}

func (c *controller) commitResources() {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]entity.Resource, len(c.resources))
	copy(snapshot, c.resources)
	c.pubResources = snapshot
	c.pubStorage = c.storageLocation
}

func (c *controller) commitUploads() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastUpload == nil {
		c.pubLastUpload = nil
		return
	}
	result := *c.lastUpload
	c.pubLastUpload = &result
}

func (c *controller) updateMetrics() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.stats.Gauge(_gaugeResources).Update(float64(len(c.resources)))
}
