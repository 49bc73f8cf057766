package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"communityhub/internal/adapters/secrets"
	"communityhub/internal/domain"
)

const sendgridBaseURL = "https://api.sendgrid.com"

// sendgridMailer sends through the SendGrid v3 mail/send endpoint. The API
// key comes from a process-lifetime secret cache; a failed key lookup makes
// the mailer report unconfigured instead of erroring on every send.
type sendgridMailer struct {
	key         *secrets.Cache
	fromAddress string
	fromName    string
	baseURL     string
	client      *http.Client
	logger      *slog.Logger
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To  []sgAddress `json:"to"`
	CC  []sgAddress `json:"cc,omitempty"`
	BCC []sgAddress `json:"bcc,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPayload struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	ReplyTo          *sgAddress          `json:"reply_to,omitempty"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (s *sendgridMailer) Provider() string { return "sendgrid" }

func (s *sendgridMailer) Configured(ctx context.Context) bool {
	_, err := s.key.Get()
	return err == nil
}

func (s *sendgridMailer) Send(ctx context.Context, msg *domain.OutboundEmail) error {
	key, err := s.key.Get()
	if err != nil {
		return domain.ErrMailerNotConfigured
	}

	payload := sgPayload{
		Personalizations: []sgPersonalization{{
			To:  toAddresses(msg.To),
			CC:  toAddresses(msg.CC),
			BCC: toAddresses(msg.BCC),
		}},
		From:    sgAddress{Email: s.fromAddress, Name: s.fromName},
		Subject: msg.Subject,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &sgAddress{Email: msg.ReplyTo}
	}
	// SendGrid requires text/plain before text/html.
	if msg.TextBody != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/plain", Value: msg.TextBody})
	}
	if msg.HTMLBody != "" {
		payload.Content = append(payload.Content, sgContent{Type: "text/html", Value: msg.HTMLBody})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sendgrid payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	defer resp.Body.Close()

	// SendGrid acknowledges accepted mail with 202 (200 on some legacy
	// endpoints); anything else is a rejection.
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusAccepted {
		s.logger.Info("email accepted by sendgrid", "status", resp.StatusCode, "recipients", len(msg.To))
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &domain.SendError{StatusCode: resp.StatusCode, Body: string(raw)}
}

func toAddresses(emails []string) []sgAddress {
	if len(emails) == 0 {
		return nil
	}
	out := make([]sgAddress, len(emails))
	for i, e := range emails {
		out[i] = sgAddress{Email: e}
	}
	return out
}
