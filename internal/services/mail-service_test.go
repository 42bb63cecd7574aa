package services

import (
	"bufio"
	"net"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP accepts one plain session and returns the DATA payload.
func fakeSMTP(t *testing.T) (host, port string, data <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		tp := textproto.NewConn(conn)
		_ = tp.PrintfLine("220 localhost ready")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			switch {
			case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
				_ = tp.PrintfLine("250 localhost")
			case strings.HasPrefix(line, "MAIL FROM"), strings.HasPrefix(line, "RCPT TO"):
				_ = tp.PrintfLine("250 OK")
			case line == "DATA":
				_ = tp.PrintfLine("354 go ahead")
				lines, err := tp.ReadDotLines()
				if err != nil {
					return
				}
				out <- strings.Join(lines, "\n")
				_ = tp.PrintfLine("250 queued")
			case line == "QUIT":
				_ = tp.PrintfLine("221 bye")
				return
			default:
				_ = tp.PrintfLine("502 not implemented")
			}
		}
	}()

	h, p, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return h, p, out
}

func TestMailServiceSend(t *testing.T) {
	host, port, data := fakeSMTP(t)
	svc := NewMailService(host, port, "", "", "portal@example.com", "Thesis Portal")

	require.NoError(t, svc.Send("admin@example.com", "New thesis submission", "<p>hello</p>"))

	msg := <-data
	assert.Contains(t, msg, "From: Thesis Portal <portal@example.com>")
	assert.Contains(t, msg, "To: admin@example.com")
	assert.Contains(t, msg, "Subject: New thesis submission")
	assert.Contains(t, msg, `Content-Type: text/html; charset="UTF-8"`)
	assert.Contains(t, msg, "<p>hello</p>")
}

func TestMailServiceNeedsRecipient(t *testing.T) {
	svc := NewMailService("127.0.0.1", "1", "", "", "portal@example.com", "")
	assert.Error(t, svc.Send("", "subject", "body"))
}

func TestMailServiceFromDefaultsToUser(t *testing.T) {
	svc := NewMailService("smtp.example.com", "587", "bot@example.com", "pw", "", "")
	assert.Equal(t, "bot@example.com", svc.fromHeader())
}

func TestBuildMessageUsesCRLF(t *testing.T) {
	msg := string(buildMessage("a@example.com", "b@example.com", "hi", "<b>x</b>"))
	r := textproto.NewReader(bufio.NewReader(strings.NewReader(msg)))
	header, err := r.ReadMIMEHeader()
	require.NoError(t, err)
	assert.Equal(t, "hi", header.Get("Subject"))
	assert.Equal(t, "1.0", header.Get("Mime-Version"))
}
