// Package events publishes fire-and-forget audit events for mutations.
// A nil Producer is valid and drops everything, so the rest of the app
// never has to check whether Kafka is configured.
package events

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns nil when no broker or topic is configured.
func NewProducer(broker, topic string) *Producer {
	if broker == "" || topic == "" {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Send publishes an event such as "task.created". Failures are logged and
// never surfaced to the request that triggered them.
func (p *Producer) Send(ctx context.Context, action string) {
	if p == nil {
		return
	}
	msg := kafka.Message{
		Key:   []byte(time.Now().Format(time.RFC3339Nano)),
		Value: []byte(action),
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Println("failed to write event:", err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
