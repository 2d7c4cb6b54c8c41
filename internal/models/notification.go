package models

import "fmt"

// EmailMessageType discriminates the messages carried on the email queue.
// Every consumer switch over it must handle all three and reject anything
// else, so an unknown type never acks silently.
type EmailMessageType string

const (
	EmailTypeWelcome           EmailMessageType = "WELCOME_EMAIL"
	EmailTypeResetPassword     EmailMessageType = "RESET_PASSWORD"
	EmailTypeOrderConfirmation EmailMessageType = "ORDER_CONFIRMATION"
)

// EmailMessage is the wire schema of the durable email queue. Link is set for
// RESET_PASSWORD, OrderID for ORDER_CONFIRMATION.
type EmailMessage struct {
	Type    EmailMessageType `json:"type"`
	Email   string           `json:"email"`
	Name    string           `json:"name,omitempty"`
	Link    string           `json:"link,omitempty"`
	OrderID string           `json:"orderId,omitempty"`
}

func (m *EmailMessage) Validate() error {
	switch m.Type {
	case EmailTypeWelcome, EmailTypeResetPassword, EmailTypeOrderConfirmation:
	default:
		return fmt.Errorf("unknown email message type: %q", m.Type)
	}

	if m.Email == "" {
		return fmt.Errorf("email message of type %s has no recipient", m.Type)
	}

	return nil
}

// EmailNotificationRequest is what the email sending port consumes.
type EmailNotificationRequest struct {
	To          string `json:"to" validate:"required,email"`
	Subject     string `json:"subject" validate:"required"`
	Content     string `json:"content" validate:"required"`
	HTMLContent string `json:"html_content,omitempty"`
}
