package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ActionEventExchange = "action_events"
	ActionEventQueue    = "action_event_queue"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		ActionEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare action event exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		ActionEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare action event queue: %w", err)
	}

	err = p.channel.QueueBind(
		ActionEventQueue,
		"",
		ActionEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind action event queue: %w", err)
	}

	return nil
}

// Record publishes an action event. Any failure is logged and swallowed so
// the parent request never sees it.
func (p *Producer) Record(ctx context.Context, event *ActionEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to marshal action event: %v", err)
		return
	}

	err = p.channel.PublishWithContext(
		ctx,
		ActionEventExchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to publish action event %s: %v", event.Action, err)
		return
	}

	hlog.CtxInfof(ctx, "Published action event: %s user=%s target=%s/%s",
		event.Action, event.UserId, event.TargetType, event.TargetId)
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
