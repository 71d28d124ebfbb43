package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/releaser/internal/notify"
)

// RecordingPublisher keeps published messages in memory. When Err is set
// every Publish fails with it and nothing is recorded.
type RecordingPublisher struct {
	mu       sync.Mutex
	Err      error
	messages []Delivery
}

type Delivery struct {
	RoutingKey string
	Message    notify.Message
}

func (r *RecordingPublisher) Publish(_ context.Context, routingKey string, msg notify.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Delivery{RoutingKey: routingKey, Message: msg})
	return nil
}

func (r *RecordingPublisher) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.messages))
	copy(out, r.messages)
	return out
}
