// Package notify publishes release events to project- and user-scoped
// channels. Delivery is fire-and-forget: callers log publish failures and
// carry on.
package notify

import (
	"context"
	"log/slog"
	"time"
)

type EventType string

const (
	EventReleaseCreated EventType = "release.created"
	EventReleaseUpdated EventType = "release.updated"
	EventReleaseDeleted EventType = "release.deleted"
)

// Message is the body delivered on a routing key.
type Message struct {
	Type      EventType
	ProjectID string
	ReleaseID string
	Version   string
	Text      string
	Timestamp time.Time
}

func ProjectRoutingKey(projectID string) string {
	return "releaser.project." + projectID
}

func UserRoutingKey(email string) string {
	return "releaser.user." + email
}

// Publisher delivers a message on a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg Message) error
}

// NoopPublisher drops every message.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, Message) error { return nil }

// LogPublisher writes each message to a structured logger.
type LogPublisher struct {
	Logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, routingKey string, msg Message) error {
	p.Logger.InfoContext(ctx, "notification",
		"routing_key", routingKey,
		"type", string(msg.Type),
		"project_id", msg.ProjectID,
		"release_id", msg.ReleaseID,
		"version", msg.Version,
		"message", msg.Text,
	)
	return nil
}
