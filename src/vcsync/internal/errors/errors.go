package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NotConnectedError reports that no backend connection is established.
	NotConnectedError = New("backend connection is not established")
	// NoActiveSessionError reports that the workstream has no attached session.
	NoActiveSessionError = New("workstream has no active session")
)

// IsRetryable reports whether the operation may succeed unchanged once the
// backend connection is reestablished.
func IsRetryable(e error) bool {
	return stderr.Is(e, NotConnectedError)
}
