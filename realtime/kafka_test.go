package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafka.Message
}

func (c *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	c.msgs = append(c.msgs, msgs...)
	return nil
}

type keyed struct {
	ID string `json:"id"`
}

func (k keyed) EventKey() string { return k.ID }

func TestKafkaPublisher(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w, timeout: time.Second}

	Fanout{nil, p}.Publish(EventOrderCreated, keyed{ID: "o-7"})

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "o-7", string(w.msgs[0].Key))

	var ev struct {
		Type string `json:"type"`
		Data keyed  `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, EventOrderCreated, ev.Type)
	assert.Equal(t, "o-7", ev.Data.ID)
}

func TestNewKafkaPublisherDisabled(t *testing.T) {
	assert.Nil(t, NewKafkaPublisher("", "orders"))
	assert.Nil(t, NewKafkaPublisher(" , ", "orders"))

	p := NewKafkaPublisher("localhost:9092", "orders")
	require.NotNil(t, p)
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.True(t, w.Async)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.NotNil(t, w.Completion)
}
