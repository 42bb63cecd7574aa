package services

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailService sends through the SendGrid v3 mail API.
type SendGridMailService struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridMailService targets api.sendgrid.com when host is empty.
func NewSendGridMailService(apiKey, host, from, fromName string) *SendGridMailService {
	req := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	req.Method = "POST"

	return &SendGridMailService{
		client:   &sendgrid.Client{Request: req},
		from:     from,
		fromName: fromName,
	}
}

func (s *SendGridMailService) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("mail: no recipient")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", to),
		"A new thesis record was submitted.",
		htmlBody,
	)

	log.Printf("[MAIL] sendgrid sending to=%s", to)
	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid http error (%d): %s", resp.StatusCode, resp.Body)
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}
