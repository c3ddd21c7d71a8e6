//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"linkwatch/internal/domain"
	"linkwatch/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) testLink() *domain.Link {
	return &domain.Link{
		ID:            "link-1",
		GuildID:       "guild-1",
		Platform:      domain.PlatformYouTube,
		ProfileHandle: "creator",
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishContentEvent() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-content",
		RoutingKey: "test-routing-key-content",
		QueueName:  "test-queue-content",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	event := &domain.LinkEvent{
		ID:          "event-1",
		LinkID:      "link-1",
		ContentID:   "vid-123",
		ContentType: domain.ContentTypeVideo,
		Title:       utils.Ptr("New upload"),
		URL:         "https://youtube.com/watch?v=vid-123",
		PublishedAt: now,
	}

	err = pub.Publish(s.ctx, s.testLink(), event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received ContentMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("content.detected", received.Event)
	s.Equal("guild-1", received.GuildID)
	s.Equal("link-1", received.LinkID)
	s.Equal("youtube", received.Platform)
	s.Equal("vid-123", received.Content.ContentID)
	s.Equal("video", received.Content.ContentType)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	now := time.Now().Truncate(time.Millisecond)
	event := &domain.LinkEvent{
		ID:          "event-2",
		LinkID:      "link-1",
		ContentID:   "vid-456",
		ContentType: domain.ContentTypeVideo,
		Title:       utils.Ptr("Full Title"),
		Description: utils.Ptr("Full Description"),
		MediaURL:    utils.Ptr("https://example.com/thumb.jpg"),
		URL:         "https://youtube.com/watch?v=vid-456",
		PublishedAt: now,
	}

	err = pub.Publish(s.ctx, s.testLink(), event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)

	var received ContentMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)

	s.Equal("content.detected", received.Event)
	s.Equal("creator", received.Handle)
	s.NotNil(received.Content.Title)
	s.Equal("Full Title", *received.Content.Title)
	s.NotNil(received.Content.Description)
	s.Equal("Full Description", *received.Content.Description)
	s.NotNil(received.Content.MediaURL)
	s.Equal("https://example.com/thumb.jpg", *received.Content.MediaURL)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	event := &domain.LinkEvent{
		ID:          "event-3",
		LinkID:      "link-1",
		ContentID:   "vid-999",
		ContentType: domain.ContentTypeVideo,
		URL:         "https://youtube.com/watch?v=vid-999",
		PublishedAt: time.Now(),
	}

	err = pub.Publish(s.ctx, s.testLink(), event)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
