package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// resendEmailService sends contact mail through Resend's transactional
// HTTP API. Any non-2xx upstream status is a hard failure for the request;
// there is no retry.
type resendEmailService struct {
	apiKey      string
	senderEmail string
	senderName  string
	toEmail     string
	baseURL     string
	client      *http.Client
}

func NewResendEmailService(apiKey, senderEmail, senderName, toEmail string) IEmailService {
	return &resendEmailService{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		toEmail:     toEmail,
		baseURL:     defaultResendBaseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

func (s *resendEmailService) SendContactMessage(ctx context.Context, msg *ContactMessage) (ProviderAck, error) {
	payload := resendSendRequest{
		From:    fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail),
		To:      []string{s.toEmail},
		ReplyTo: msg.ReplyTo,
		Subject: fmt.Sprintf("Portfolio contact from %s", msg.Name),
		Html:    BuildContactBody(msg),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/emails", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resend error: status %d, body: %s", resp.StatusCode, truncateBody(bodyBytes, 512))
	}

	var ack ProviderAck
	if err := json.Unmarshal(bodyBytes, &ack); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return ack, nil
}

func truncateBody(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
