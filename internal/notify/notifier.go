package notify

import (
	"context"
	"log/slog"
	"time"
)

// Notifier fans a release message out to the project channel and to each
// recipient's user channel. Publish errors are logged, never returned.
type Notifier struct {
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time
}

func NewNotifier(publisher Publisher, logger *slog.Logger) *Notifier {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{publisher: publisher, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

func (n *Notifier) Notify(ctx context.Context, msg Message, recipients ...string) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = n.now()
	}
	n.publish(ctx, ProjectRoutingKey(msg.ProjectID), msg)
	for _, email := range recipients {
		if email == "" {
			continue
		}
		n.publish(ctx, UserRoutingKey(email), msg)
	}
}

func (n *Notifier) publish(ctx context.Context, key string, msg Message) {
	if err := n.publisher.Publish(ctx, key, msg); err != nil {
		n.logger.WarnContext(ctx, "notification publish failed",
			"routing_key", key,
			"type", string(msg.Type),
			"error", err.Error(),
		)
	}
}
