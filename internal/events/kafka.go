package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// Producer is the part of *kafka.Writer the publisher needs.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes ledger events as JSON, keyed by product id so the
// events of one product stay ordered within a partition.
type KafkaPublisher struct {
	producer Producer
	logger   *zap.Logger
}

func NewKafkaPublisher(broker, topic string, logger *zap.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		BatchSize:              100,
		AllowAutoTopicCreation: true,
	}
	return NewKafkaPublisherWithProducer(w, logger)
}

func NewKafkaPublisherWithProducer(p Producer, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: p, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", e.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(e.ProductID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}

	// Consumers continue the trace from these headers.
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	if err := p.producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}

	p.logger.Debug("Published ledger event",
		zap.String("type", e.Type),
		zap.Int64("product_id", e.ProductID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
