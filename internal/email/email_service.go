// Package email sends transactional mail through the Resend API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/money"
)

const (
	defaultBaseURL = "https://api.resend.com"
	defaultFrom    = "orders@paperid.in"
)

// OrderConfirmation is the content of the "order placed" mail.
type OrderConfirmation struct {
	OrderID        string
	TrackingNumber string
	Total          int64
	ItemCount      int
}

type Service interface {
	SendOrderConfirmation(ctx context.Context, to, userName string, o OrderConfirmation) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
	client    *http.Client
}

// NewResendService returns a Resend client. An empty baseURL targets the
// public API.
func NewResendService(apiKey, from, baseURL string) (Service, error) {
	apiKey = strings.Trim(apiKey, "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from = strings.TrimSpace(strings.Trim(from, "\""))
	if from == "" {
		from = defaultFrom
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to, userName string, o OrderConfirmation) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for shopping with Paperid! Your order <b>%s</b> (%d item(s), %s) is being prepared.</p><p>Tracking number: <b>%s</b></p>",
		html.EscapeString(userName),
		html.EscapeString(o.OrderID),
		o.ItemCount,
		money.Format(o.Total),
		html.EscapeString(o.TrackingNumber),
	)
	return s.send(ctx, to, "Your Paperid order "+o.OrderID, body)
}

func (s *resendService) send(ctx context.Context, to, subject, htmlBody string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderConfirmation(_ context.Context, _, _ string, _ OrderConfirmation) error {
	return nil
}
