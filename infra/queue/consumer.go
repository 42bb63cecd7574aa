package queue

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// MessageReader is the part of *kafka.Reader the consumer loop needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Reader      MessageReader
	Handler     interfaces.ConsumerHandler
	ServiceName string
}

func NewKafkaConsumer(broker, topic, groupID, username, password string, handler interfaces.ConsumerHandler) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	if username != "" {
		dialer.TLS = &tls.Config{}
		dialer.SASLMechanism = plain.Mechanism{
			Username: username,
			Password: password,
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3, //10KB
		MaxBytes: 10e6, //10MB
		Dialer:   dialer,
	})

	return &KafkaConsumer{
		Reader:      reader,
		Handler:     handler,
		ServiceName: "Thesis Notifier",
	}
}

// Listen reads until ctx is cancelled. Handler errors are logged and the
// message is not retried.
func (kc *KafkaConsumer) Listen(ctx context.Context) error {
	defer func() {
		if err := kc.Reader.Close(); err != nil {
			log.Printf("[%s] close reader: %v", kc.ServiceName, err)
		}
	}()

	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			log.Printf("[%s] read error: %v", kc.ServiceName, err)
			continue
		}

		log.Printf("[%s] received key=%s", kc.ServiceName, string(msg.Key))

		if err := kc.Handler.HandleMessage(ctx, msg.Key, msg.Value); err != nil {
			log.Printf("[%s] handler error: %v", kc.ServiceName, err)
		}
	}
}
