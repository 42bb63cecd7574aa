package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/interfaces"
	"github.com/SundayYogurt/thesis_service/internal/templates"
	"github.com/bytedance/sonic"
)

// MailHandler turns thesis events read from Kafka into notification mail.
type MailHandler struct {
	Mailer   interfaces.Mailer
	NotifyTo string
	Subject  string
}

func NewMailHandler(mailer interfaces.Mailer, notifyTo, subject string) *MailHandler {
	return &MailHandler{Mailer: mailer, NotifyTo: notifyTo, Subject: subject}
}

type newSubmissionMail struct {
	ID          string
	Name        string
	UserType    string
	ThesisTitle string
	ReceivedAt  string
}

func (h *MailHandler) HandleMessage(_ context.Context, key, value []byte) error {
	var event dto.ThesisEvent
	if err := sonic.Unmarshal(value, &event); err != nil {
		log.Printf("invalid event payload key=%s: %s", string(key), string(value))
		return err
	}

	switch event.Event {
	case dto.EventThesisSubmitted:
		return h.sendNewSubmission(event)
	default:
		log.Printf("[MAIL] skip event=%s id=%s", event.Event, event.ID)
		return nil
	}
}

func (h *MailHandler) sendNewSubmission(event dto.ThesisEvent) error {
	if h.NotifyTo == "" {
		log.Printf("[MAIL] NOTIFY_TO not set, dropping %s id=%s", event.Event, event.ID)
		return nil
	}

	body, err := templates.Render(templates.NewSubmission, newSubmissionMail{
		ID:          event.ID.String(),
		Name:        event.Name,
		UserType:    userTypeLabel(event.UserType),
		ThesisTitle: event.ThesisTitle,
		ReceivedAt:  event.CreatedAt.In(time.Local).Format("Jan 2, 2006 3:04 PM"),
	})
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	subject := h.Subject
	if event.ThesisTitle != "" {
		subject = fmt.Sprintf("%s: %s", h.Subject, event.ThesisTitle)
	}

	log.Printf("[MAIL] new submission id=%s, sending...", event.ID)
	return h.Mailer.Send(h.NotifyTo, subject, body)
}

func userTypeLabel(t string) string {
	switch t {
	case "lpu":
		return "LPU"
	case "non-lpu":
		return "Non-LPU"
	}
	return t
}
