package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConnected = errors.New("rabbitmq is not connected")

// RabbitMQ is a process-lifetime client around one connection and one
// channel, constructed in main and injected everywhere it is needed.
type RabbitMQ struct {
	cfg *config.RabbitMQ

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitMQ(cfg *config.RabbitMQ) *RabbitMQ {
	return &RabbitMQ{cfg: cfg}
}

// Connect dials the broker with a bounded number of retries and a fixed
// delay between attempts. After the retries are exhausted the client is left
// disconnected; a later Publish will attempt one reconnect on its own.
func (q *RabbitMQ) Connect(ctx context.Context) error {

	q.mu.Lock()
	defer q.mu.Unlock()

	var lastErr error

	for attempt := 1; attempt <= q.cfg.ConnectRetries; attempt++ {

		lastErr = q.connectLocked()
		if lastErr == nil {
			slog.Info("RabbitMQ connected", slog.String("queue", q.cfg.Queue))
			return nil
		}

		slog.Error("RabbitMQ connection failed",
			slog.Int("attempt", attempt),
			slog.Int("retries_left", q.cfg.ConnectRetries-attempt),
			slog.String("error", lastErr.Error()))

		if attempt < q.cfg.ConnectRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(q.cfg.RetryDelay):
			}
		}
	}

	return fmt.Errorf("rabbitmq connection failed after %d attempts: %w", q.cfg.ConnectRetries, lastErr)
}

// connectLocked dials once and declares the durable queue. Caller holds q.mu.
func (q *RabbitMQ) connectLocked() error {

	conn, err := amqp.Dial(q.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(q.cfg.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", q.cfg.Queue, err)
	}

	q.conn = conn
	q.ch = ch

	return nil
}

// ensureChannelLocked performs the single lazy reconnect attempt a publish
// is allowed before erroring. Caller holds q.mu.
func (q *RabbitMQ) ensureChannelLocked() error {

	if q.ch != nil && q.conn != nil && !q.conn.IsClosed() {
		return nil
	}

	if err := q.connectLocked(); err != nil {
		return fmt.Errorf("%w: %s", ErrNotConnected, err.Error())
	}

	slog.Info("RabbitMQ reconnected", slog.String("queue", q.cfg.Queue))

	return nil
}

func (q *RabbitMQ) Publish(ctx context.Context, msg *models.EmailMessage) error {

	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.ensureChannelLocked(); err != nil {
		return err
	}

	err = q.ch.PublishWithContext(ctx, "", q.cfg.Queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", q.cfg.Queue, err)
	}

	return nil
}

// Consume blocks on the delivery stream, acking on a nil handler result and
// nacking without requeue otherwise.
func (q *RabbitMQ) Consume(ctx context.Context, handler Handler) error {

	q.mu.Lock()
	if err := q.ensureChannelLocked(); err != nil {
		q.mu.Unlock()
		return err
	}
	ch := q.ch
	q.mu.Unlock()

	deliveries, err := ch.Consume(q.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consumer on queue %s: %w", q.cfg.Queue, err)
	}

	slog.Info("Waiting for messages", slog.String("queue", q.cfg.Queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed for queue %s", q.cfg.Queue)
			}

			if err := handler(ctx, d.Body); err != nil {
				slog.Error("Message processing failed", slog.String("error", err.Error()))

				if nackErr := d.Nack(false, false); nackErr != nil {
					slog.Error("Failed to nack message", slog.String("error", nackErr.Error()))
				}

				continue
			}

			if ackErr := d.Ack(false); ackErr != nil {
				slog.Error("Failed to ack message", slog.String("error", ackErr.Error()))
			}
		}
	}
}

// Ping reports whether the connection is currently open; used by the health
// endpoint.
func (q *RabbitMQ) Ping(ctx context.Context) error {

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.conn == nil || q.conn.IsClosed() {
		return ErrNotConnected
	}

	return nil
}

func (q *RabbitMQ) Close() error {

	q.mu.Lock()
	defer q.mu.Unlock()

	var errs []error

	if q.ch != nil {
		if err := q.ch.Close(); err != nil {
			errs = append(errs, err)
		}
		q.ch = nil
	}

	if q.conn != nil {
		if err := q.conn.Close(); err != nil {
			errs = append(errs, err)
		}
		q.conn = nil
	}

	return errors.Join(errs...)
}
