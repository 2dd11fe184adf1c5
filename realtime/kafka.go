package realtime

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher forwards order events to a Kafka topic for downstream consumers.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

// NewKafkaPublisher returns nil when no brokers are configured.
func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 || topic == "" {
		return nil
	}
	// Publish returns without waiting for the broker; Completion logs failed deliveries.
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion:   logDelivery,
		},
		timeout: 5 * time.Second,
	}
}

func logDelivery(msgs []kafka.Message, err error) {
	if err != nil {
		logger.WithComponent("realtime").WithError(err).WithField("messages", len(msgs)).Warn("kafka delivery failed")
	}
}

// Publish keys messages by order id when the payload carries one.
func (k *KafkaPublisher) Publish(eventType string, data interface{}) {
	value, err := json.Marshal(Event{Type: eventType, Data: data, At: time.Now().UTC()})
	if err != nil {
		return
	}

	msg := kafka.Message{Value: value, Headers: []kafka.Header{{Key: "type", Value: []byte(eventType)}}}
	if keyer, ok := data.(interface{ EventKey() string }); ok {
		msg.Key = []byte(keyer.EventKey())
	}

	ctx, cancel := context.WithTimeout(context.Background(), k.timeout)
	defer cancel()
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		logger.WithComponent("realtime").WithError(err).WithField("type", eventType).Warn("kafka publish failed")
	}
}

func (k *KafkaPublisher) Close() error {
	if c, ok := k.writer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Fanout publishes every event to each non-nil publisher.
type Fanout []Publisher

func (f Fanout) Publish(eventType string, data interface{}) {
	for _, p := range f {
		if p != nil {
			p.Publish(eventType, data)
		}
	}
}
