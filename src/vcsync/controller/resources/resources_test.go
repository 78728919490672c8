package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub"
	"github.com/voicecode/vcsync/src/vcsync/internal/statepub/statepubmock"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestController(t *testing.T) (*controller, *statepubmock.MockPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	publisher := statepubmock.NewMockPublisher(ctrl)
	publisher.EXPECT().Register(gomock.Any()).Times(2)
	c := New(Params{
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", make(map[string]string, 0)),
		Publisher: publisher,
	})
	return c.(*controller), publisher
}

func sampleListing() []entity.Resource {
	return []entity.Resource{
		{Filename: "design.pdf", Path: "/uploads/design.pdf", Size: 120000, Timestamp: "2026-08-20T10:00:00Z"},
		{Filename: "notes.md", Path: "/uploads/notes.md", Size: 900, Timestamp: "2026-08-20T10:05:00Z"},
	}
}

func TestPublicationTopics(t *testing.T) {
	c, _ := newTestController(t)
	assert.Equal(t, statepub.TopicResources, resourcesPublication{c}.Topic())
	assert.Equal(t, statepub.TopicUploads, uploadsPublication{c}.Topic())
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicResources).Times(2)
	c.ReplaceAll(ctx, "/uploads", sampleListing())

	// The published view lags until commit.
	assert.Empty(t, c.Listing(ctx))
	assert.Empty(t, c.StorageLocation(ctx))

	c.commitResources()
	listing := c.Listing(ctx)
	require.Len(t, listing, 2)
	assert.Equal(t, "design.pdf", listing[0].Filename)
	assert.Equal(t, "notes.md", listing[1].Filename)
	assert.Equal(t, "/uploads", c.StorageLocation(ctx))

	// An empty listing is a real replacement, not a no-op.
	c.ReplaceAll(ctx, "/uploads", nil)
	c.commitResources()
	assert.Empty(t, c.Listing(ctx))
}

func TestRemoveByFilename(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicResources).Times(2)
	c.ReplaceAll(ctx, "/uploads", sampleListing())
	c.RemoveByFilename(ctx, "design.pdf")

	// Unknown filenames change nothing and publish nothing.
	c.RemoveByFilename(ctx, "missing.txt")

	c.commitResources()
	listing := c.Listing(ctx)
	require.Len(t, listing, 1)
	assert.Equal(t, "notes.md", listing[0].Filename)
}

func TestRecordUploadOutcome(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	_, ok := c.LastUpload(ctx)
	assert.False(t, ok)

	publisher.EXPECT().MarkDirty(statepub.TopicUploads)
	c.RecordUploadOutcome(ctx, entity.UploadResult{Filename: "design.pdf", Success: true})

	// The collection is untouched by upload results.
	c.commitResources()
	c.commitUploads()
	assert.Empty(t, c.Listing(ctx))

	result, ok := c.LastUpload(ctx)
	require.True(t, ok)
	assert.Equal(t, "design.pdf", result.Filename)
	assert.True(t, result.Success)
}

func TestListingIsACopy(t *testing.T) {
	ctx := context.Background()
	c, publisher := newTestController(t)

	publisher.EXPECT().MarkDirty(statepub.TopicResources)
	c.ReplaceAll(ctx, "/uploads", sampleListing())
	c.commitResources()

	listing := c.Listing(ctx)
	listing[0].Filename = "mutated.bin"

	fresh := c.Listing(ctx)
	assert.Equal(t, "design.pdf", fresh[0].Filename)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
