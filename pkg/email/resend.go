package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

// EmailService sends transactional mail through Resend. When no API key is
// configured the service stays enabled=false and every send is a logged
// no-op, so local development works without an account.
type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	enabled  bool
	logger   *zap.Logger
}

func NewEmailService(apiKey, fromAddress, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     fromAddress,
		fromName: fromName,
		enabled:  apiKey != "",
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, username string) error {
	if !s.enabled {
		s.logger.Debug("email service disabled, skipping welcome email",
			zap.String("to", to))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: "Welcome to EventMate",
		Html: fmt.Sprintf(
			"<h2>Welcome, %s!</h2><p>Your account is ready. Set your location and start discovering events near you.</p>",
			username,
		),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Warn("failed to send welcome email",
			zap.String("to", to),
			zap.Error(err))
		return err
	}

	return nil
}
