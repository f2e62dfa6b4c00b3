package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type VideoEventHandler interface {
	HandleVideoEvent(ctx context.Context, event *VideoEvent) error
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &Consumer{conn: conn, channel: ch}, nil
}

// ConsumeVideoEvents delivers queued video events to the handler on a
// background goroutine until ctx is cancelled. Handler failures nack and
// requeue the message once.
func (c *Consumer) ConsumeVideoEvents(ctx context.Context, handler VideoEventHandler) error {
	msgs, err := c.channel.Consume(
		VideoEventQueue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("Video event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("Video event consumer channel closed")
					return
				}
				var event VideoEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					hlog.Errorf("Failed to unmarshal video event: %v", err)
					d.Nack(false, false)
					continue
				}
				if err := handler.HandleVideoEvent(ctx, &event); err != nil {
					hlog.Errorf("Failed to handle video event %s: %v", event.EventID, err)
					d.Nack(false, !d.Redelivered)
					continue
				}
				d.Ack(false)
			}
		}
	}()
	return nil
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
