package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SundayYogurt/thesis_service/config"
	"github.com/SundayYogurt/thesis_service/infra/queue"
	"github.com/SundayYogurt/thesis_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/thesis_service/internal/interfaces"
	"github.com/SundayYogurt/thesis_service/internal/services"
)

func main() {
	// ---------- Load Config ----------
	cfg := config.LoadConfig()

	if cfg.KafkaBroker == "" {
		log.Fatal("KAFKA_BROKER is required")
	}
	if cfg.NotifyTo == "" {
		log.Println("Warning: NOTIFY_TO is empty, events will be read but no mail is sent")
	}

	log.Println("Thesis Notifier starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	// ---------- Init Service ----------
	mailer := newMailer(cfg)

	// ---------- Init Handler ----------
	handler := handlers.NewMailHandler(mailer, cfg.NotifyTo, cfg.MailSubject)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------- Start Listening ----------
	log.Println("Thesis Notifier listening for events...")
	if err := consumer.Listen(ctx); err != nil {
		log.Printf("consumer stopped: %v", err)
	}
	log.Println("Thesis Notifier stopped")
}

func newMailer(cfg config.Config) interfaces.Mailer {
	switch strings.ToLower(cfg.MailProvider) {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			log.Fatal("SENDGRID_API_KEY is required when MAIL_PROVIDER=sendgrid")
		}
		log.Println("MailProvider=sendgrid")
		return services.NewSendGridMailService(cfg.SendGridAPIKey, "", cfg.MailFrom, cfg.MailFromName)
	case "", "smtp":
		log.Printf("MailProvider=smtp host=%s:%s", cfg.SMTPHost, cfg.SMTPPort)
		return services.NewMailService(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.MailFrom,
			cfg.MailFromName,
		)
	default:
		log.Fatalf("unknown MAIL_PROVIDER %q", cfg.MailProvider)
		return nil
	}
}
