// Package entity contains the domain types for the vcsync daemon.
package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// PriorityLabel bands queued workstreams for coarse ordering.
type PriorityLabel string

const (
	// PriorityLow is the lowest band.
	PriorityLow PriorityLabel = "low"
	// PriorityNormal is the default band.
	PriorityNormal PriorityLabel = "normal"
	// PriorityHigh is the highest band.
	PriorityHigh PriorityLabel = "high"
)

var _labelRank = map[PriorityLabel]int{
	PriorityLow:    1,
	PriorityNormal: 2,
	PriorityHigh:   3,
}

// Rank returns the label's position in the low-to-high ordering.
// Unknown labels rank below low.
func (p PriorityLabel) Rank() int {
	return _labelRank[p]
}

// Valid reports whether the label is one of the known bands.
func (p PriorityLabel) Valid() bool {
	_, ok := _labelRank[p]
	return ok
}

// Workstream is a persistent conversation target: a named working directory
// the user sends prompts and recipes to, optionally bound to one live
// backend session. Pointer fields are absent when nil.
type Workstream struct {
	ID               uuid.UUID     `json:"id" zap:"id"`
	Name             string        `json:"name" zap:"name"`
	WorkingDirectory string        `json:"workingDirectory" zap:"workingDirectory"`
	ActiveSessionID  *uuid.UUID    `json:"activeSessionId,omitempty" zap:"activeSessionId"`
	MessageCount     int           `json:"messageCount" zap:"messageCount"`
	Preview          *string       `json:"preview,omitempty" zap:"-"`
	UnreadCount      int           `json:"unreadCount" zap:"unreadCount"`
	IsPriority       bool          `json:"isPriority" zap:"isPriority"`
	PriorityLabel    PriorityLabel `json:"priorityLabel,omitempty" zap:"priorityLabel"`
	PriorityOrder    int64         `json:"priorityOrder" zap:"priorityOrder"`
	QueuedAt         *time.Time    `json:"queuedAt,omitempty" zap:"-"`
	CreatedAt        time.Time     `json:"createdAt" zap:"-"`
	UpdatedAt        time.Time     `json:"updatedAt" zap:"-"`
}

// IsCleared reports whether the workstream has no attached backend session.
// Cleared state is derived, never stored.
func (w *Workstream) IsCleared() bool {
	return w.ActiveSessionID == nil
}

// ClearSessionState detaches the active session and resets conversation
// state. Name, working directory, and priority placement are untouched.
func (w *Workstream) ClearSessionState() {
	w.ActiveSessionID = nil
	w.MessageCount = 0
	w.Preview = nil
}

// WireID returns the identifier in the wire form the backend expects:
// lowercase canonical UUID text.
func (w *Workstream) WireID() string {
	return w.ID.String()
}
