package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,contact_email"`
	Company string `json:"company" binding:"omitempty,max=200"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendReceipt is the caller-visible result of a successful submission.
// EmailID identifies the notification delivery, not the auto-reply.
type SendReceipt struct {
	EmailID string `json:"emailId"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission, delivers the owner
	// notification and attempts a best-effort auto-reply to the sender.
	SendContactMessage(ctx context.Context, req *ContactRequest) (*SendReceipt, error)
}
