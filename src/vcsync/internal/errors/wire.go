package errors

import (
	stderr "errors"
	"fmt"
)

// MalformedMessageError indicates that an inbound frame could not be decoded
// into a known message. The frame is dropped and the stream continues.
type MalformedMessageError struct {
	// MessageType holds the declared type when the frame parsed far enough to
	// read it, otherwise empty.
	MessageType string
	Reason      string
}

// Error is an implementation of the error interface.
func (n *MalformedMessageError) Error() string {
	if n.MessageType == "" {
		return fmt.Sprintf("malformed message: %s", n.Reason)
	}
	return fmt.Sprintf("malformed %q message: %s", n.MessageType, n.Reason)
}

// IsMalformed reports whether MalformedMessageError is part of the error chain.
func IsMalformed(e error) bool {
	var m *MalformedMessageError
	return stderr.As(e, &m)
}

// OrphanSessionError indicates a recipe event referencing a session with no
// registered recipe. Logged as an anomaly, never fatal.
type OrphanSessionError struct {
	SessionID string
	Event     string
}

// Error is an implementation of the error interface.
func (n *OrphanSessionError) Error() string {
	return fmt.Sprintf("%s references unknown session %q", n.Event, n.SessionID)
}
