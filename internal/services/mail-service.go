package services

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// MailService sends HTML mail through one SMTP relay using STARTTLS and
// PLAIN auth.
type MailService struct {
	host     string
	port     string
	user     string
	password string
	from     string
	fromName string

	dialTimeout time.Duration
	sendTimeout time.Duration
}

func NewMailService(host, port, user, password, from, fromName string) *MailService {
	if from == "" {
		from = user
	}
	return &MailService{
		host:        host,
		port:        port,
		user:        user,
		password:    password,
		from:        from,
		fromName:    fromName,
		dialTimeout: 8 * time.Second,
		sendTimeout: 15 * time.Second,
	}
}

func (s *MailService) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("mail: no recipient")
	}

	msg := buildMessage(s.fromHeader(), to, subject, htmlBody)
	addr := net.JoinHostPort(s.host, s.port)

	log.Printf("[MAIL] smtp sending to=%s via=%s", to, addr)
	if err := s.sendSMTPWithTimeout(addr, to, msg); err != nil {
		return err
	}
	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (s *MailService) fromHeader() string {
	if s.fromName == "" {
		return s.from
	}
	return fmt.Sprintf("%s <%s>", s.fromName, s.from)
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	return []byte(strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n"))
}

func (s *MailService) sendSMTPWithTimeout(addr, to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", addr, s.dialTimeout)
	if err != nil {
		return err
	}
	// bounds the whole exchange, not only the dial
	_ = conn.SetDeadline(time.Now().Add(s.sendTimeout))

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return err
		}
	}
	if s.user != "" {
		if err := c.Auth(smtp.PlainAuth("", s.user, s.password, s.host)); err != nil {
			return err
		}
	}

	if err := c.Mail(s.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
