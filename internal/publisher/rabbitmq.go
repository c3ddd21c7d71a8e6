package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"linkwatch/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// ContentMessage is the envelope consumed by downstream workers, such as the
// summary digest builder.
type ContentMessage struct {
	Event     string       `json:"event"`
	GuildID   string       `json:"guild_id"`
	LinkID    string       `json:"link_id"`
	Platform  string       `json:"platform"`
	Handle    string       `json:"handle"`
	Content   EventPayload `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
}

type EventPayload struct {
	ContentID   string    `json:"content_id"`
	ContentType string    `json:"content_type"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	MediaURL    *string   `json:"media_url,omitempty"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

func (r *RabbitMQ) Publish(ctx context.Context, link *domain.Link, event *domain.LinkEvent) error {
	msg := ContentMessage{
		Event:    "content.detected",
		GuildID:  link.GuildID,
		LinkID:   link.ID,
		Platform: string(link.Platform),
		Handle:   link.ProfileHandle,
		Content: EventPayload{
			ContentID:   event.ContentID,
			ContentType: string(event.ContentType),
			Title:       event.Title,
			Description: event.Description,
			MediaURL:    event.MediaURL,
			URL:         event.URL,
			PublishedAt: event.PublishedAt,
		},
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published content event",
		"link_id", link.ID,
		"content_id", event.ContentID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
