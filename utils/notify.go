package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WelcomeNotification is the payload posted to the downstream automation
// webhook (email sequences, WhatsApp, etc) when a purchase creates an account.
type WelcomeNotification struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Event    string `json:"event"`
	Phone    string `json:"phone,omitempty"`
}

var notifyClient = &http.Client{Timeout: 10 * time.Second}

// PostWelcome delivers the welcome notification to url. Best-effort: callers
// log the returned error and move on, the purchase flow never depends on it.
func PostWelcome(ctx context.Context, url string, n WelcomeNotification) error {
	if url == "" {
		return nil
	}
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := notifyClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("welcome webhook returned status %d", resp.StatusCode)
	}
	return nil
}
