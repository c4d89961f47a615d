package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/validation"
	"strings"
	"time"
)

// MailSender is the slice of the email service the orchestrator needs.
// *email.Service satisfies it; tests swap in a mock.
type MailSender interface {
	IsConfigured() bool
	NewMessageID() string
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg *email.Message) error
}

type contactUsecase struct {
	sender  MailSender
	profile domain.OwnerProfile
	catalog domain.SubjectCatalog
	now     func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender MailSender, profile domain.OwnerProfile, catalog domain.SubjectCatalog) domain.ContactUsecase {
	return &contactUsecase{
		sender:  sender,
		profile: profile,
		catalog: catalog,
		now:     time.Now,
	}
}

// SendContactMessage runs the submission pipeline: validate, verify the
// relay, render both emails, deliver the owner notification, then attempt
// the auto-reply best-effort. Each network step happens exactly once.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.SendReceipt, error) {
	// Validate input (additional validation beyond binding)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := validateRequest(req); err != nil {
		metrics.ContactSubmissions.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// Never attempt a connection without credentials
	if !uc.sender.IsConfigured() {
		metrics.ContactSubmissions.WithLabelValues("unavailable").Inc()
		return nil, apperror.ServiceUnavailable(
			"Contact service is temporarily unavailable. Please try again later.",
			email.ErrNotConfigured,
		)
	}

	// One verification round-trip per submission; failure is data, not a fault
	if err := uc.sender.Verify(ctx); err != nil {
		metrics.ContactSubmissions.WithLabelValues("unavailable").Inc()
		return nil, apperror.ServiceUnavailable(
			"Contact service is temporarily unavailable. Please try again later.",
			fmt.Errorf("relay verification failed: %w", err),
		)
	}

	notifHTML, notifText, err := email.RenderNotification(req, uc.profile, uc.catalog, uc.now())
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		return nil, apperror.Internal(err)
	}
	replyHTML, replyText, err := email.RenderAutoReply(req.Name, uc.profile)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		return nil, apperror.Internal(err)
	}

	subjectLabel := uc.catalog.Label(req.Subject)

	notification := &email.Message{
		ID:      uc.sender.NewMessageID(),
		To:      uc.profile.Email,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact Form: %s", subjectLabel),
		HTML:    notifHTML,
		Text:    notifText,
	}

	if err := uc.sender.Send(ctx, notification); err != nil {
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		return nil, classifySendError(err)
	}

	// The auto-reply rides on a successful notification and must never
	// change the reported outcome of the submission.
	autoReply := &email.Message{
		ID:      uc.sender.NewMessageID(),
		To:      req.Email,
		Subject: fmt.Sprintf("Thanks for reaching out, %s!", req.Name),
		HTML:    replyHTML,
		Text:    replyText,
	}
	uc.sendBestEffort(ctx, autoReply)

	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	return &domain.SendReceipt{EmailID: notification.ID}, nil
}

// sendBestEffort delivers msg but absorbs any failure: it is logged and
// counted so silent failures stay diagnosable, never escalated.
func (uc *contactUsecase) sendBestEffort(ctx context.Context, msg *email.Message) {
	if err := uc.sender.Send(ctx, msg); err != nil {
		metrics.AutoReplyFailures.Inc()
		logger.Log.Warn("auto-reply delivery failed",
			"email_id", msg.ID,
			"recipient", msg.To,
			"error", err)
	}
}

func validateRequest(req *domain.ContactRequest) error {
	if req.Name == "" {
		return apperror.BadRequest("name is required")
	}
	if req.Email == "" {
		return apperror.BadRequest("email is required")
	}
	if req.Subject == "" {
		return apperror.BadRequest("subject is required")
	}
	if req.Message == "" {
		return apperror.BadRequest("message is required")
	}
	if !validation.ValidEmail(req.Email) {
		return apperror.BadRequest("invalid email format")
	}
	return nil
}

// classifySendError maps a notification delivery failure onto the error
// taxonomy surfaced to the caller.
func classifySendError(err error) *apperror.AppError {
	const userMsg = "Failed to send message. Please try again later."
	switch {
	case errors.Is(err, email.ErrAuthFailed):
		return apperror.AuthenticationFailed(userMsg, err)
	case errors.Is(err, email.ErrConnectionFailed):
		return apperror.ConnectionFailed(userMsg, err)
	default:
		return apperror.SendFailed(userMsg, err)
	}
}
