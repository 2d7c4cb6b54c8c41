package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/metrics"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/pkg/sendgrid"
)

// NotificationService turns queue deliveries into outbound emails. It is the
// consuming half of the email pipeline; the API processes only ever publish.
type NotificationService interface {
	HandleMessage(ctx context.Context, body []byte) error
}

type notificationService struct {
	emailService sendgrid.EmailService
	storeName    string
}

func NewNotificationService(emailService sendgrid.EmailService, storeName string) NotificationService {
	return &notificationService{emailService: emailService, storeName: storeName}
}

// HandleMessage satisfies the queue handler contract: a nil return acks the
// delivery, an error leaves it for broker policy. Malformed payloads are
// errors too, redelivering them could never succeed.
func (n *notificationService) HandleMessage(ctx context.Context, body []byte) error {

	logger := middleware.LoggerFromContext(ctx)

	var msg models.EmailMessage

	if err := json.Unmarshal(body, &msg); err != nil {
		metrics.EmailMessagesConsumed.WithLabelValues("unknown", "failed").Inc()

		return fmt.Errorf("failed to decode email message: %w", err)
	}

	if err := msg.Validate(); err != nil {
		metrics.EmailMessagesConsumed.WithLabelValues(string(msg.Type), "failed").Inc()

		return fmt.Errorf("invalid email message: %w", err)
	}

	req, err := n.buildEmail(&msg)
	if err != nil {
		metrics.EmailMessagesConsumed.WithLabelValues(string(msg.Type), "failed").Inc()

		return err
	}

	if err := n.emailService.Send(ctx, req); err != nil {
		metrics.EmailMessagesConsumed.WithLabelValues(string(msg.Type), "failed").Inc()
		logger.Error("Failed to send email", slog.String("type", string(msg.Type)),
			slog.String("recipient", msg.Email), slog.Any("error", err))

		return fmt.Errorf("failed to send %s email: %w", msg.Type, err)
	}

	metrics.EmailMessagesConsumed.WithLabelValues(string(msg.Type), "ok").Inc()
	logger.Info("Email sent", slog.String("type", string(msg.Type)), slog.String("recipient", msg.Email))

	return nil
}

func (n *notificationService) buildEmail(msg *models.EmailMessage) (*models.EmailNotificationRequest, error) {

	name := msg.Name
	if name == "" {
		name = "there"
	}

	switch msg.Type {

	case models.EmailTypeWelcome:
		return &models.EmailNotificationRequest{
			To:      msg.Email,
			Subject: fmt.Sprintf("Welcome to %s!", n.storeName),
			Content: fmt.Sprintf("Hi %s,\n\nYour account is ready. Browse the catalog and happy reading!\n\nThe %s team", name, n.storeName),
			HTMLContent: fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Browse the catalog and happy reading!</p><p>The %s team</p>",
				name, n.storeName),
		}, nil

	case models.EmailTypeResetPassword:
		if msg.Link == "" {
			return nil, fmt.Errorf("reset password message for %s has no link", msg.Email)
		}

		return &models.EmailNotificationRequest{
			To:      msg.Email,
			Subject: "Reset your password",
			Content: fmt.Sprintf("Hi %s,\n\nUse the link below to reset your password. It expires in one hour.\n\n%s\n\nIf you did not request this, you can ignore this email.", name, msg.Link),
			HTMLContent: fmt.Sprintf("<p>Hi %s,</p><p><a href=%q>Reset your password</a>. The link expires in one hour.</p><p>If you did not request this, you can ignore this email.</p>",
				name, msg.Link),
		}, nil

	case models.EmailTypeOrderConfirmation:
		if msg.OrderID == "" {
			return nil, fmt.Errorf("order confirmation message for %s has no order id", msg.Email)
		}

		return &models.EmailNotificationRequest{
			To:      msg.Email,
			Subject: fmt.Sprintf("Order %s confirmed", msg.OrderID),
			Content: fmt.Sprintf("Hi %s,\n\nThanks for your order! Your order %s has been confirmed and is being prepared.\n\nThe %s team", name, msg.OrderID, n.storeName),
			HTMLContent: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for your order! Your order <strong>%s</strong> has been confirmed and is being prepared.</p><p>The %s team</p>",
				name, msg.OrderID, n.storeName),
		}, nil

	default:
		// Validate already rejected unknown types; this keeps the switch
		// exhaustive for future message kinds.
		return nil, fmt.Errorf("unhandled email message type: %q", msg.Type)
	}
}
