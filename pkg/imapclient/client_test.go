package imapclient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

func TestDecodeTextBody_SinglePart(t *testing.T) {
	raw := crlf(`From: vendor@x.com
To: buyer@example.com
Subject: RFP #42: our offer
Content-Type: text/plain; charset=utf-8

We can deliver for $1000.
`)

	body := decodeTextBody(strings.NewReader(raw))
	assert.Contains(t, body, "We can deliver for $1000.")
}

func TestDecodeTextBody_MultipartPrefersPlainText(t *testing.T) {
	raw := crlf(`From: vendor@x.com
To: buyer@example.com
Subject: RFP #42: our offer
MIME-Version: 1.0
Content-Type: multipart/alternative; boundary=frontier

--frontier
Content-Type: text/plain; charset=utf-8

plain text offer
--frontier
Content-Type: text/html; charset=utf-8

<p>html offer</p>
--frontier--
`)

	body := decodeTextBody(strings.NewReader(raw))
	assert.Contains(t, body, "plain text offer")
	assert.NotContains(t, body, "<p>html offer</p>")
}

func TestDecodeTextBody_NonMIMEFallsBackToRaw(t *testing.T) {
	raw := "this is not a mime message at all"
	assert.Equal(t, raw, decodeTextBody(strings.NewReader(raw)))
}
