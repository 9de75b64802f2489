package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"ReelHub.com/cmd/model"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Consumer drains the action event queue into the action_logs collection.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logs    *mongo.Collection
}

func NewConsumer(rabbitmqURL string, logs *mongo.Collection) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	return &Consumer{conn: conn, channel: ch, logs: logs}, nil
}

// Start consumes until the context is cancelled. Individual bad messages
// are dropped, not requeued.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(
		ActionEventQueue,
		"action-log-writer",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume action event queue: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				c.handle(ctx, d)
			}
		}
	}()
	return nil
}

func (c *Consumer) handle(ctx context.Context, d amqp091.Delivery) {
	var event ActionEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		logrus.Warnf("dropping malformed action event: %v", err)
		d.Nack(false, false)
		return
	}

	entry := &model.ActionLog{
		EventId:    event.EventId,
		UserId:     event.UserId,
		Action:     event.Action,
		TargetType: event.TargetType,
		TargetId:   event.TargetId,
		Device:     event.Device,
		Location:   event.Location,
		CreatedAt:  event.Timestamp,
	}
	if _, err := c.logs.InsertOne(ctx, entry); err != nil {
		logrus.Warnf("failed to persist action event %s: %v", event.EventId, err)
		d.Nack(false, true)
		return
	}
	d.Ack(false)
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
