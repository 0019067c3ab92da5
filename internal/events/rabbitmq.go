package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/easybanking/backoffice/internal/domain"
)

// RabbitMQRelay forwards domain events to a RabbitMQ topic exchange as JSON.
// It is registered as a bus subscriber, so delivery shares the bus's
// at-most-once, fire-and-forget semantics.
type RabbitMQRelay struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// eventEnvelope is the wire format consumed by downstream services.
type eventEnvelope struct {
	EventID        string             `json:"eventId"`
	EventType      string             `json:"eventType"`
	EventTimestamp string             `json:"eventTimestamp"`
	Payload        domain.DomainEvent `json:"payload"`
}

// NewRabbitMQRelay connects to RabbitMQ and declares the topic exchange.
func NewRabbitMQRelay(url, exchange string) (*RabbitMQRelay, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

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
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("RabbitMQ relay initialized: exchange=%s", exchange)

	return &RabbitMQRelay{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Relay publishes the event to the exchange with routing key
// "bank.operations.<event-name>". Registered on the bus via Bus.Subscribe.
func (r *RabbitMQRelay) Relay(ctx context.Context, event domain.DomainEvent) error {
	envelope := eventEnvelope{
		EventID:        uuid.New().String(),
		EventType:      event.EventName(),
		EventTimestamp: event.OccurredOn().UTC().Format(time.RFC3339),
		Payload:        event,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	routingKey := "bank.operations." + event.EventName()

	err = r.channel.PublishWithContext(ctx,
		r.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   event.OccurredOn(),
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.EventName(), err)
	}

	return nil
}

// Close releases the channel and connection.
func (r *RabbitMQRelay) Close() error {
	if err := r.channel.Close(); err != nil {
		r.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	return r.conn.Close()
}
