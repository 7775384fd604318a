package domain

import "errors"

// ErrIMAPNotConfigured aborts a cycle before any connection is attempted.
var ErrIMAPNotConfigured = errors.New("IMAP is not configured. Please set IMAP_HOST, IMAP_USER, and IMAP_PASS in .env")

// ConnectionError wraps a failure to reach or authenticate to the mailbox.
// It is fatal for the whole cycle; per-message problems never use it.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "failed to connect to IMAP: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
