package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"mini-crm/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.crm"
	ExchangeKind = "topic"
)

// RabbitMQPublisher публикует события лидов в topic exchange.
type RabbitMQPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

// NewRabbitMQPublisher подключается к брокеру и объявляет exchange.
func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQPublisher{conn: conn, ch: ch}, nil
}

// Publish отправляет событие с ключом маршрутизации, равным его типу.
func (p *RabbitMQPublisher) Publish(ctx context.Context, event domain.LeadEvent) error {
	msg, err := toPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx,
		ExchangeName,       // Exchange
		string(event.Type), // Key
		false,              // Mandatory
		false,              // Immediate
		msg,
	)
}

// Close закрывает канал и соединение.
func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func toPublishing(event domain.LeadEvent) (amqp.Publishing, error) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
	}, nil
}

// NopPublisher используется, когда брокер не настроен.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.LeadEvent) error { return nil }
