package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"go.uber.org/zap"
)

var ErrRelayFailed = errors.New("subscription could not be delivered")

const newsletterSource = "Website Newsletter Form"

type NewsletterSignup struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterService keeps nothing locally, so a relay failure is the
// caller's to retry.
type NewsletterService struct {
	relay   NotificationRelay
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewNewsletterService(relay NotificationRelay, m *metrics.Metrics, logger *zap.Logger) *NewsletterService {
	return &NewsletterService{relay: relay, metrics: m, logger: logger}
}

func (s *NewsletterService) Subscribe(ctx context.Context, signup NewsletterSignup) error {
	signup.Email = strings.TrimSpace(signup.Email)
	if err := validate.Struct(signup); err != nil {
		return err
	}

	payload := NewsletterPayload{
		Subject: "New Newsletter Subscription",
		Email:   signup.Email,
		Source:  newsletterSource,
	}
	if err := notify(ctx, s.relay, s.metrics, s.logger, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}
	return nil
}
