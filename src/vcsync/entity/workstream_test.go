package entity

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/voicecode/vcsync/src/vcsync/factory"
)

func TestIsCleared(t *testing.T) {
	sessionID := factory.UUID()
	tests := []struct {
		name       string
		workstream Workstream
		want       bool
	}{
		{
			name:       "no session",
			workstream: Workstream{ID: factory.UUID()},
			want:       true,
		},
		{
			name:       "attached session",
			workstream: Workstream{ID: factory.UUID(), ActiveSessionID: &sessionID},
			want:       false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.workstream.IsCleared())
		})
	}
}

func TestClearSessionState(t *testing.T) {
	sessionID := factory.UUID()
	preview := "last reply text"
	queuedAt := time.Now().UTC()
	w := Workstream{
		ID:               factory.UUID(),
		Name:             "api-server",
		WorkingDirectory: "/home/dev/api-server",
		ActiveSessionID:  &sessionID,
		MessageCount:     14,
		Preview:          &preview,
		UnreadCount:      3,
		IsPriority:       true,
		PriorityLabel:    PriorityHigh,
		PriorityOrder:    2,
		QueuedAt:         &queuedAt,
	}

	w.ClearSessionState()

	assert.Nil(t, w.ActiveSessionID)
	assert.Zero(t, w.MessageCount)
	assert.Nil(t, w.Preview)
	assert.True(t, w.IsCleared())

	assert.Equal(t, "api-server", w.Name)
	assert.Equal(t, "/home/dev/api-server", w.WorkingDirectory)
	assert.Equal(t, 3, w.UnreadCount)
	assert.True(t, w.IsPriority)
	assert.Equal(t, PriorityHigh, w.PriorityLabel)
	assert.Equal(t, int64(2), w.PriorityOrder)
	assert.Equal(t, &queuedAt, w.QueuedAt)
}

func TestWireID(t *testing.T) {
	w := Workstream{ID: uuid.Must(uuid.FromString("123E4567-E89B-42D3-A456-426614174000"))}
	assert.Equal(t, "123e4567-e89b-42d3-a456-426614174000", w.WireID())
}

func TestPriorityLabelRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityNormal.Rank())
	assert.Greater(t, PriorityNormal.Rank(), PriorityLow.Rank())
	assert.Greater(t, PriorityLow.Rank(), PriorityLabel("bogus").Rank())
}

func TestPriorityLabelValid(t *testing.T) {
	assert.True(t, PriorityNormal.Valid())
	assert.False(t, PriorityLabel("urgent").Valid())
}
