package imapclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"

	inboxdomain "rfphub-backend/internal/inbox/domain"
)

// Config holds mailbox connection settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
}

// Dialer opens IMAP sessions against a fixed mailbox. It implements
// inbox domain MailDialer.
type Dialer struct {
	cfg Config
}

func NewDialer(cfg Config) *Dialer {
	return &Dialer{cfg: cfg}
}

func (d *Dialer) Dial(ctx context.Context) (inboxdomain.MailSession, error) {
	return Dial(ctx, d.cfg)
}

// Client is one authenticated IMAP session with INBOX selected.
type Client struct {
	c *client.Client
}

// Dial connects, authenticates and selects INBOX. The context deadline bounds
// the TCP dial; IMAP v1 commands themselves are not context-aware.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	dialer := &net.Dialer{}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	var c *client.Client
	var err error
	if cfg.Secure {
		c, err = client.DialWithDialerTLS(dialer, addr, nil)
	} else {
		c, err = client.DialWithDialer(dialer, addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	if err := c.Login(cfg.Username, cfg.Password); err != nil {
		_ = c.Logout()
		return nil, fmt.Errorf("login as %s: %w", cfg.Username, err)
	}

	// Read-write select: the session owns the folder until Close.
	if _, err := c.Select("INBOX", false); err != nil {
		_ = c.Logout()
		return nil, fmt.Errorf("select INBOX: %w", err)
	}

	return &Client{c: c}, nil
}

func (s *Client) SearchUnseen(subjectToken string) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	criteria.Header.Add("Subject", subjectToken)

	uids, err := s.c.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("search unseen: %w", err)
	}
	return uids, nil
}

func (s *Client) FetchEnvelopes(uids []uint32) ([]inboxdomain.InboundMessage, error) {
	if len(uids) == 0 {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uids...)

	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid}
	ch := make(chan *imap.Message, len(uids))
	done := make(chan error, 1)
	go func() {
		done <- s.c.UidFetch(seqSet, items, ch)
	}()

	var messages []inboxdomain.InboundMessage
	for msg := range ch {
		if msg.Envelope == nil {
			continue
		}
		var from string
		if len(msg.Envelope.From) > 0 {
			from = msg.Envelope.From[0].Address()
		}
		messages = append(messages, inboxdomain.InboundMessage{
			UID:       msg.Uid,
			Subject:   msg.Envelope.Subject,
			From:      from,
			MessageID: msg.Envelope.MessageId,
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetch envelopes: %w", err)
	}
	return messages, nil
}

// DownloadText fetches the full message source and returns its plain-text
// content. Uses a peek fetch so the download itself never sets \Seen.
func (s *Client) DownloadText(uid uint32) (string, error) {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchUid}

	ch := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- s.c.UidFetch(seqSet, items, ch)
	}()

	var body string
	for msg := range ch {
		if r := msg.GetBody(section); r != nil {
			body = decodeTextBody(r)
		}
	}

	if err := <-done; err != nil {
		return "", fmt.Errorf("download uid %d: %w", uid, err)
	}
	return body, nil
}

func (s *Client) MarkSeen(uid uint32) error {
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	item := imap.FormatFlagsOp(imap.AddFlags, true)
	flags := []interface{}{imap.SeenFlag}
	return s.c.UidStore(seqSet, item, flags, nil)
}

func (s *Client) Close() error {
	return s.c.Logout()
}

// decodeTextBody accumulates every inline text/plain part into one UTF-8
// blob. Non-MIME messages fall back to the raw source.
func decodeTextBody(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}

	var sb strings.Builder
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			break
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, cerr := h.ContentType()
			if cerr == nil && contentType == "text/plain" {
				part, rerr := io.ReadAll(p.Body)
				if rerr == nil {
					sb.Write(part)
				}
			}
		}
	}

	if sb.Len() == 0 {
		return string(raw)
	}
	return sb.String()
}
