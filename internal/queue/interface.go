package queue

import (
	"context"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
)

// Publisher hands messages to the durable email queue. Publishing is
// best-effort from the caller's point of view: the order workflow logs a
// failed publish and moves on.
type Publisher interface {
	Publish(ctx context.Context, msg *models.EmailMessage) error
	Close() error
}

// Handler processes one delivery. A nil return acknowledges the message;
// an error leaves it unacknowledged (nack without requeue, dead-letter
// routing is broker policy).
type Handler func(ctx context.Context, body []byte) error

// Consumer runs the blocking worker loop until the context is cancelled or
// the underlying channel closes.
type Consumer interface {
	Consume(ctx context.Context, handler Handler) error
	Close() error
}
