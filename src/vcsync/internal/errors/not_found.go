package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// WorkstreamNotFoundError is a service domain error for a workstream id with
// no stored record. Clear confirmations for deleted workstreams surface this
// and are absorbed as no-ops.
type WorkstreamNotFoundError struct {
	ID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *WorkstreamNotFoundError) Error() string {
	return fmt.Sprintf("workstream %q not found", n.ID)
}

// NotFoundWorkstream returns a workstream id and true if WorkstreamNotFoundError
// is part of the error chain.
func NotFoundWorkstream(e error) (_ uuid.UUID, ok bool) {
	var nf *WorkstreamNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.ID, true
}
