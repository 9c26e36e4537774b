// internal/app/gateway/telegram.go
package gateway

import (
	"context"
	"net/http"
)

// TelegramMessageLimit is Telegram's own per-message length cap. The console
// shows a counter against it but does not enforce it; the gateway and
// Telegram are the real gate.
const TelegramMessageLimit = 4096

// SendTelegramMessage posts one message to the configured channel. Exactly
// one attempt: there is no retry or queueing, by contract.
func (c *Client) SendTelegramMessage(ctx context.Context, text string) error {
	payload := map[string]string{"message": text}
	_, err := c.do(ctx, http.MethodPost, "/telegram/send", nil, payload)
	return err
}
