// Package mapper converts between wire, entity, and model representations.
package mapper

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/model"
)

// WorkstreamToModel maps a Workstream entity to its model equivalent.
func WorkstreamToModel(w *entity.Workstream) *model.Workstream {
	return &model.Workstream{
		ID:               w.ID,
		Name:             w.Name,
		WorkingDirectory: w.WorkingDirectory,
		ActiveSessionID:  w.ActiveSessionID,
		MessageCount:     w.MessageCount,
		Preview:          w.Preview,
		UnreadCount:      w.UnreadCount,
		IsPriority:       w.IsPriority,
		PriorityLabel:    string(w.PriorityLabel),
		PriorityOrder:    w.PriorityOrder,
		QueuedAt:         w.QueuedAt,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

// ModelToWorkstream maps a model Workstream to its entity equivalent.
func ModelToWorkstream(w *model.Workstream) (*entity.Workstream, error) {
	return &entity.Workstream{
		ID:               w.ID,
		Name:             w.Name,
		WorkingDirectory: w.WorkingDirectory,
		ActiveSessionID:  w.ActiveSessionID,
		MessageCount:     w.MessageCount,
		Preview:          w.Preview,
		UnreadCount:      w.UnreadCount,
		IsPriority:       w.IsPriority,
		PriorityLabel:    entity.PriorityLabel(w.PriorityLabel),
		PriorityOrder:    w.PriorityOrder,
		QueuedAt:         w.QueuedAt,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}, nil
}

// ParseWorkstreamID parses a wire-form workstream identifier. Any casing is
// accepted; the parsed UUID renders back to the lowercase canonical form the
// backend requires.
func ParseWorkstreamID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse workstream id %q: %w", raw, err)
	}
	return id, nil
}
