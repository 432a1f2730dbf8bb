package responder

import (
	"context"
	"fmt"

	kafkalib "github.com/s21platform/kafka-lib"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

type producer interface {
	ProduceMessage(ctx context.Context, message any, key any) error
	Close() error
}

// Client publishes triggers for automated participants, keyed by stream id.
type Client struct {
	producer producer
}

func New(cfg *config.Config) *Client {
	producerConfig := kafkalib.DefaultProducerConfig(cfg.Kafka.Host, cfg.Kafka.Port, cfg.Kafka.ResponderTopic)
	producerConfig.Timeout = cfg.Responder.Timeout

	return &Client{producer: kafkalib.NewProducer(producerConfig)}
}

func (c *Client) Close() {
	_ = c.producer.Close()
}

func (c *Client) Trigger(ctx context.Context, trigger model.ResponderTrigger) error {
	if err := c.producer.ProduceMessage(ctx, trigger, trigger.StreamID); err != nil {
		return fmt.Errorf("failed to publish trigger: %w", err)
	}

	return nil
}
