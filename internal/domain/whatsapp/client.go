package whatsapp

import "context"

// Client defines an interface for delivering a WhatsApp text message.
// This helps in decoupling the application logic from the concrete provider.
type Client interface {
	// Send delivers one message to the recipient phone number (E.164).
	// A nil error means the provider accepted the message; delivery itself
	// is not guaranteed and never verified.
	Send(ctx context.Context, phone, message string) error
}
