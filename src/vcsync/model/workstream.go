// Package model contains repository-layer representations of vcsync domain
// types. Enum-like entity fields flatten to plain strings here.
package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Workstream is the stored representation of one workstream row.
type Workstream struct {
	ID               uuid.UUID
	Name             string
	WorkingDirectory string
	ActiveSessionID  *uuid.UUID
	MessageCount     int
	Preview          *string
	UnreadCount      int
	IsPriority       bool
	PriorityLabel    string
	PriorityOrder    int64
	QueuedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
