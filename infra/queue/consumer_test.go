package queue

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	steps  []func() (kafka.Message, error)
	closed bool
}

func (r *scriptedReader) ReadMessage(_ context.Context) (kafka.Message, error) {
	if len(r.steps) == 0 {
		return kafka.Message{}, io.EOF
	}
	step := r.steps[0]
	r.steps = r.steps[1:]
	return step()
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

type recordingHandler struct {
	keys []string
	err  error
}

func (h *recordingHandler) HandleMessage(_ context.Context, key, _ []byte) error {
	h.keys = append(h.keys, string(key))
	return h.err
}

func msg(key string) func() (kafka.Message, error) {
	return func() (kafka.Message, error) {
		return kafka.Message{Key: []byte(key), Value: []byte(`{}`)}, nil
	}
}

func TestListenDeliversUntilReaderEnds(t *testing.T) {
	reader := &scriptedReader{steps: []func() (kafka.Message, error){
		msg("a"),
		func() (kafka.Message, error) { return kafka.Message{}, errors.New("transient") },
		msg("b"),
	}}
	handler := &recordingHandler{err: errors.New("smtp down")}
	kc := &KafkaConsumer{Reader: reader, Handler: handler, ServiceName: "test"}

	require.NoError(t, kc.Listen(context.Background()))
	assert.Equal(t, []string{"a", "b"}, handler.keys)
	assert.True(t, reader.closed)
}

func TestListenStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{steps: []func() (kafka.Message, error){
		func() (kafka.Message, error) {
			cancel()
			return kafka.Message{}, context.Canceled
		},
		msg("never"),
	}}
	handler := &recordingHandler{}
	kc := &KafkaConsumer{Reader: reader, Handler: handler, ServiceName: "test"}

	require.NoError(t, kc.Listen(ctx))
	assert.Empty(t, handler.keys)
}

func TestNilProducerSkipsPublish(t *testing.T) {
	p := NewProducer("", "", "", "")
	assert.Nil(t, p)
	assert.NoError(t, p.PublishMessage(context.Background(), []byte("k"), []byte("v")))
	assert.NoError(t, p.Close())
}
