package domain

import "context"

// InboundMessage is the envelope-level view of a mailbox message. It only
// lives for the duration of one poll cycle and is never persisted.
type InboundMessage struct {
	UID       uint32
	Subject   string
	From      string
	MessageID string
}

// MailSession is one authenticated connection with the inbox selected.
// Implementations must release the folder when Close is called.
type MailSession interface {
	// SearchUnseen returns the UIDs of unseen messages whose subject
	// contains the given token.
	SearchUnseen(subjectToken string) ([]uint32, error)
	// FetchEnvelopes resolves UIDs to envelope data in provider order.
	FetchEnvelopes(uids []uint32) ([]InboundMessage, error)
	// DownloadText downloads the message and returns its decoded text body.
	// An empty string with a nil error means the message had no body.
	DownloadText(uid uint32) (string, error)
	MarkSeen(uid uint32) error
	Close() error
}

// MailDialer opens a fresh session per poll cycle. Sessions are never shared
// across cycles.
type MailDialer interface {
	Dial(ctx context.Context) (MailSession, error)
}

// PollResult is the aggregate outcome of one reconciliation cycle.
type PollResult struct {
	Processed int      `json:"processed"`
	Errors    []string `json:"errors"`
}
