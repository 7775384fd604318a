package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	assert.False(t, New(Config{}).Configured())
	assert.False(t, New(Config{Host: "smtp.example.com"}).Configured())
	assert.False(t, New(Config{Host: "smtp.example.com", Username: "u"}).Configured())
	assert.True(t, New(Config{Host: "smtp.example.com", Username: "u", Password: "p"}).Configured())
}

func TestSend_NotConfigured(t *testing.T) {
	err := New(Config{}).Send("vendor@x.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP is not configured")
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("buyer@example.com", "vendor@x.com", "RFP #42: Laptops", "line one\nline two")

	headers, body, found := strings.Cut(msg, "\r\n\r\n")
	require.True(t, found, "headers and body separated by a blank line")

	assert.Contains(t, headers, "From: buyer@example.com")
	assert.Contains(t, headers, "To: vendor@x.com")
	assert.Contains(t, headers, "Subject: RFP #42: Laptops")
	assert.Contains(t, headers, "Content-Type: text/plain; charset=utf-8")
	assert.Equal(t, "line one\r\nline two", body, "bare newlines become CRLF")
}
