package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

var _ Publisher = (*AMQP)(nil)

// AMQP publishes changes to a durable topic exchange, routed by Change.RoutingKey.
type AMQP struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func DialAMQP(url, exchange string) (*AMQP, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	a := &AMQP{conn: conn, channel: channel, exchange: exchange}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return a, nil
}

func (a *AMQP) Publish(ctx context.Context, c Change) error {
	body, err := c.Encode()
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = a.channel.PublishWithContext(
		ctx,
		a.exchange,     // exchange
		c.RoutingKey(), // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   c.At,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish change: %w", err)
	}

	slog.DebugContext(ctx, "published change", "resource", c.Resource, "action", c.Action, "member", c.Member)

	return nil
}

// Listen binds a private queue to every change and calls handler for each until ctx is done.
// Messages that fail to decode are dropped.
func (a *AMQP) Listen(ctx context.Context, handler func(Change)) error {
	q, err := a.channel.QueueDeclare(
		"",    // name, server generated
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := a.channel.QueueBind(q.Name, "#", a.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	msgs, err := a.channel.ConsumeWithContext(ctx, q.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-msgs:
			if !ok {
				return fmt.Errorf("change channel closed")
			}

			c, err := Decode(delivery.Body)
			if err != nil {
				slog.ErrorContext(ctx, "failed to decode change", "error", err)
				continue
			}

			handler(c)
		}
	}
}

func (a *AMQP) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}

	if a.conn != nil {
		return a.conn.Close()
	}

	return nil
}
