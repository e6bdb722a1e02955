// Package rabbitmq publishes order domain events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"deliveryapi/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.OrderEventPublisher. Events are routed by their
// EventName, so consumers bind queues with keys such as "order.#".
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher publishes through an already open channel.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With(slog.String("component", "rabbitmq_publisher")),
	}
}

// statusChangedMessage is the JSON body of an order.status_changed message.
type statusChangedMessage struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Total        string    `json:"total"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	body, err := json.Marshal(statusChangedMessage{
		OrderID:      event.OrderID.String(),
		CustomerID:   event.CustomerID.String(),
		RestaurantID: event.RestaurantID.String(),
		From:         event.From.String(),
		To:           event.To.String(),
		Total:        event.Total.String(),
		OccurredAt:   event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.EventName(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		p.exchange,        // exchange
		event.EventName(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.OrderID.String() + ":" + event.To.String(),
			Timestamp:    event.OccurredAt.UTC(),
			Type:         event.EventName(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	p.logger.DebugContext(ctx, "order event published",
		slog.String("exchange", p.exchange),
		slog.String("routing_key", event.EventName()),
		slog.String("order_id", event.OrderID.String()),
		slog.Int("message_size", len(body)),
	)
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher writes events to the log. It stands in for the broker when
// no RabbitMQ URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With(slog.String("component", "log_publisher"))}
}

func (p *LogPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	p.logger.InfoContext(ctx, event.EventName(),
		slog.String("order_id", event.OrderID.String()),
		slog.String("from", event.From.String()),
		slog.String("to", event.To.String()),
		slog.String("total", event.Total.String()),
	)
	return nil
}
