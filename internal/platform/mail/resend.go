// Package mail delivers transactional email through the Resend HTTP API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blazer444/Talkalot/internal/shared/ratelimiter"
)

// defaultBaseURL is the Resend API endpoint.
const defaultBaseURL = "https://api.resend.com"

// ErrMissingAPIKey is returned when the client is constructed without an
// API key. The server refuses to start in that case.
var ErrMissingAPIKey = errors.New("resend api key is required but not configured")

// ResendClient sends email through the Resend API.
type ResendClient struct {
	apiKey   string
	from     string
	fromName string
	baseURL  string
	client   *http.Client
	limiter  ratelimiter.RateLimiterInterface
}

// NewResendClient creates a ResendClient. Returns ErrMissingAPIKey when the
// key is empty so startup can fail fast.
func NewResendClient(apiKey, from, fromName string, client *http.Client, limiter ratelimiter.RateLimiterInterface) (*ResendClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		baseURL:  defaultBaseURL,
		client:   client,
		limiter:  limiter,
	}, nil
}

// sendRequest is the Resend /emails payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SendWelcomeEmail sends the welcome email to a freshly registered user.
func (r *ResendClient) SendWelcomeEmail(ctx context.Context, email, name, clientURL string) error {
	payload := sendRequest{
		From:    fmt.Sprintf("%s <%s>", r.fromName, r.from),
		To:      []string{email},
		Subject: "Bem vindo ao Talkalot!",
		HTML:    welcomeEmailHTML(name, clientURL),
	}

	if r.limiter != nil {
		r.limiter.WaitIfNeeded()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// The status code alone decides the outcome; the body is decoded
	// best-effort for the message id and the provider error text.
	var out sendResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		out = sendResponse{}
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("resend http %d: %s", res.StatusCode, out.Message)
	}

	slog.Info("welcome email sent", "email", email, "message_id", out.ID)
	return nil
}
