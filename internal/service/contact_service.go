package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/repository/contract"
)

// Simple local@domain.tld shape. Exotic but technically valid addresses are
// rejected; that trade is accepted for simplicity.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// SanitizeForHtml escapes the five HTML metacharacters so user-supplied
// text cannot inject markup into the outgoing email body.
func SanitizeForHtml(text string) string {
	return htmlEscaper.Replace(text)
}

type ContactResult struct {
	Ack mailer.ProviderAck
	// Remaining is the quota left in the caller's window after this send.
	Remaining int
}

type IContactService interface {
	Submit(ctx context.Context, clientKey string, req *dto.ContactRequest) (*ContactResult, error)
}

type contactService struct {
	rateLimits contract.RateLimitRepository
	mail       mailer.IEmailService
	log        logger.ILogger

	window      time.Duration
	maxRequests int
}

func NewContactService(
	rateLimits contract.RateLimitRepository,
	mail mailer.IEmailService,
	log logger.ILogger,
	window time.Duration,
	maxRequests int,
) IContactService {
	return &contactService{
		rateLimits:  rateLimits,
		mail:        mail,
		log:         log,
		window:      window,
		maxRequests: maxRequests,
	}
}

// Submit runs the full relay lifecycle: quota check, validation,
// sanitization, then one dispatch attempt. There is no retry; on provider
// failure the caller must resubmit.
func (s *contactService) Submit(ctx context.Context, clientKey string, req *dto.ContactRequest) (*ContactResult, error) {
	count, resetAt, err := s.rateLimits.Hit(ctx, clientKey, s.window)
	if err != nil {
		// A broken limiter store must not take the relay down with it; the
		// quota is advisory, so fail open and log.
		s.log.Error("contact", "rate limit store failure, allowing request", map[string]interface{}{
			"error": err.Error(),
		})
		count = 1
		resetAt = time.Now().Add(s.window)
	}
	if count > int64(s.maxRequests) {
		s.log.Warn("contact", "rate limit exceeded", map[string]interface{}{
			"client":   clientKey,
			"count":    count,
			"reset_at": resetAt.Format(time.RFC3339),
		})
		return nil, ErrRateLimited
	}

	if err := validateContact(req); err != nil {
		return nil, err
	}

	msg := &mailer.ContactMessage{
		Name:    SanitizeForHtml(strings.TrimSpace(req.Name)),
		Email:   SanitizeForHtml(strings.TrimSpace(req.Email)),
		Message: SanitizeForHtml(strings.TrimSpace(req.Message)),
		ReplyTo: strings.TrimSpace(req.Email),
	}

	ack, err := s.mail.SendContactMessage(ctx, msg)
	if err != nil {
		// Log with enough context to diagnose; the caller only sees the
		// generic failure.
		s.log.Error("contact", "mail dispatch failed", map[string]interface{}{
			"error":  err.Error(),
			"client": clientKey,
		})
		return nil, ErrUpstreamFailure
	}

	remaining := s.maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	s.log.Info("contact", "contact message relayed", map[string]interface{}{
		"client":    clientKey,
		"remaining": remaining,
	})

	return &ContactResult{Ack: ack, Remaining: remaining}, nil
}

func validateContact(req *dto.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return NewValidationError("name", "name is required")
	}
	if len(name) > 100 {
		return NewValidationError("name", "name must be at most 100 characters")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return NewValidationError("email", "email is required")
	}
	if len(email) > 255 {
		return NewValidationError("email", "email must be at most 255 characters")
	}
	if !emailShape.MatchString(email) {
		return NewValidationError("email", "email must be a valid address")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return NewValidationError("message", "message is required")
	}
	if len(message) > 2000 {
		return NewValidationError("message", fmt.Sprintf("message must be at most 2000 characters, got %d", len(message)))
	}

	return nil
}
