package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"communityhub/config"
	"communityhub/internal/adapters/secrets"
	"communityhub/internal/domain"
)

// NewMailer creates a mailer from config. Provider "sendgrid" uses the
// SendGrid v3 REST API with the key resolved lazily through the secret store;
// "ses" uses AWS SES; "noop" or unknown uses a mailer that reports itself
// unconfigured and logs what it would send.
func NewMailer(cfg config.EmailConfig, store secrets.Store, logger *slog.Logger) domain.Mailer {
	switch cfg.Provider {
	case "sendgrid":
		return &sendgridMailer{
			key:         secrets.NewCache(store, cfg.SendGridKeyName),
			fromAddress: cfg.FromAddress,
			fromName:    cfg.FromName,
			baseURL:     sendgridBaseURL,
			client:      &http.Client{Timeout: 30 * time.Second},
			logger:      logger,
		}
	case "ses":
		awsCfg := aws.Config{
			Region: cfg.SESRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.SESAccessKeyID, cfg.SESSecretKey, ""),
			),
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			configured:  cfg.SESAccessKeyID != "" && cfg.SESSecretKey != "",
			fromAddress: cfg.FromAddress,
			fromName:    cfg.FromName,
			logger:      logger,
		}
	default:
		if cfg.Provider != "noop" {
			logger.Warn("unknown email provider, using noop", "provider", cfg.Provider)
		}
		return &noopMailer{logger: logger}
	}
}

type sesMailer struct {
	client      *ses.Client
	configured  bool
	fromAddress string
	fromName    string
	logger      *slog.Logger
}

func (s *sesMailer) Provider() string { return "ses" }

func (s *sesMailer) Configured(ctx context.Context) bool { return s.configured }

func (s *sesMailer) Send(ctx context.Context, msg *domain.OutboundEmail) error {
	source := s.fromAddress
	if s.fromName != "" {
		source = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}
	input := &ses.SendEmailInput{
		Source: aws.String(source),
		Destination: &types.Destination{
			ToAddresses:  msg.To,
			CcAddresses:  msg.CC,
			BccAddresses: msg.BCC,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if msg.HTMLBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.TextBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.Info("email sent via SES", "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Provider() string { return "noop" }

func (n *noopMailer) Configured(ctx context.Context) bool { return false }

func (n *noopMailer) Send(ctx context.Context, msg *domain.OutboundEmail) error {
	n.logger.Info("email would be sent (noop)", "to", msg.To, "subject", msg.Subject)
	return domain.ErrMailerNotConfigured
}
