package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Mail Sender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailSender) NewMessageID() string {
	return m.Called().String(0)
}

func (m *MockMailSender) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMailSender) Send(ctx context.Context, msg *email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

var testProfile = domain.OwnerProfile{
	Name:    "Jane Owner",
	Title:   "Software Engineer",
	Website: "https://janeowner.dev",
	Email:   "owner@janeowner.dev",
}

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "general",
		Message: "Hello, interested in collaborating.",
	}
}

func appErrorKind(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestContactValidation(t *testing.T) {
	t.Run("Should reject missing fields before touching the transport", func(t *testing.T) {
		cases := map[string]*domain.ContactRequest{
			"name":    {Email: "a@b.co", Subject: "general", Message: "hi"},
			"email":   {Name: "A", Subject: "general", Message: "hi"},
			"subject": {Name: "A", Email: "a@b.co", Message: "hi"},
			"message": {Name: "A", Email: "a@b.co", Subject: "general"},
		}

		for field, req := range cases {
			sender := new(MockMailSender)
			uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

			receipt, err := uc.SendContactMessage(context.Background(), req)
			assert.Nil(t, receipt)
			appErr := appErrorKind(t, err)
			assert.Equal(t, apperror.KindBadRequest, appErr.Kind, "missing %s", field)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			assert.Contains(t, appErr.Message, field)
			sender.AssertNotCalled(t, "IsConfigured")
			sender.AssertNotCalled(t, "Verify")
		}
	})

	t.Run("Should treat whitespace-only fields as missing", func(t *testing.T) {
		sender := new(MockMailSender)
		uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

		req := validRequest()
		req.Message = "   \n\t "
		_, err := uc.SendContactMessage(context.Background(), req)
		appErr := appErrorKind(t, err)
		assert.Equal(t, apperror.KindBadRequest, appErr.Kind)
		assert.Contains(t, appErr.Message, "message")
	})

	t.Run("Should reject malformed email addresses", func(t *testing.T) {
		for _, bad := range []string{"not-an-email", "@example.com", "a@b", "a b@c.co", "a@b."} {
			sender := new(MockMailSender)
			uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

			req := validRequest()
			req.Email = bad
			_, err := uc.SendContactMessage(context.Background(), req)
			appErr := appErrorKind(t, err)
			assert.Equal(t, apperror.KindBadRequest, appErr.Kind, "email %q", bad)
			assert.Contains(t, appErr.Message, "email")
			sender.AssertNotCalled(t, "Verify")
		}
	})
}

func TestContactTransportGates(t *testing.T) {
	t.Run("Should fail unavailable without connecting when relay is unconfigured", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("IsConfigured").Return(false)
		uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

		_, err := uc.SendContactMessage(context.Background(), validRequest())
		appErr := appErrorKind(t, err)
		assert.Equal(t, apperror.KindServiceUnavailable, appErr.Kind)
		sender.AssertNotCalled(t, "Verify")
		sender.AssertNotCalled(t, "Send")
	})

	t.Run("Should fail unavailable without sending when verification fails", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Verify", mock.Anything).Return(errors.New("handshake rejected"))
		uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

		_, err := uc.SendContactMessage(context.Background(), validRequest())
		appErr := appErrorKind(t, err)
		assert.Equal(t, apperror.KindServiceUnavailable, appErr.Kind)
		sender.AssertNotCalled(t, "Send")
	})
}

func TestContactNotificationFailure(t *testing.T) {
	classifications := map[string]struct {
		sendErr error
		kind    apperror.Kind
	}{
		"auth errors":       {email.ErrAuthFailed, apperror.KindAuthenticationFailed},
		"connection errors": {email.ErrConnectionFailed, apperror.KindConnectionFailed},
		"generic errors":    {errors.New("452 mailbox full"), apperror.KindSendFailed},
	}

	for name, tc := range classifications {
		t.Run("Should classify "+name, func(t *testing.T) {
			sender := new(MockMailSender)
			sender.On("IsConfigured").Return(true)
			sender.On("Verify", mock.Anything).Return(nil)
			sender.On("NewMessageID").Return("msg-1")
			sender.On("Send", mock.Anything, mock.Anything).Return(tc.sendErr)
			uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

			receipt, err := uc.SendContactMessage(context.Background(), validRequest())
			assert.Nil(t, receipt)
			appErr := appErrorKind(t, err)
			assert.Equal(t, tc.kind, appErr.Kind)
			assert.Equal(t, http.StatusInternalServerError, appErr.Code)

			// The auto-reply must never be attempted after a failed notification
			sender.AssertNumberOfCalls(t, "Send", 1)
		})
	}
}

func TestContactAutoReply(t *testing.T) {
	t.Run("Should swallow auto-reply failure and still succeed", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Verify", mock.Anything).Return(nil)
		sender.On("NewMessageID").Return("notif-id").Once()
		sender.On("NewMessageID").Return("reply-id").Once()
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m *email.Message) bool {
			return m.To == testProfile.Email
		})).Return(nil)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(m *email.Message) bool {
			return m.To == "jane@example.com"
		})).Return(errors.New("mailbox unavailable"))
		uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

		receipt, err := uc.SendContactMessage(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "notif-id", receipt.EmailID)
		sender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("Should address the auto-reply to the submitter", func(t *testing.T) {
		sender := new(MockMailSender)
		sender.On("IsConfigured").Return(true)
		sender.On("Verify", mock.Anything).Return(nil)
		sender.On("NewMessageID").Return("id")

		var autoReply *email.Message
		sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			msg := args.Get(1).(*email.Message)
			if msg.To == "jane@example.com" {
				autoReply = msg
			}
		}).Return(nil)
		uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())

		_, err := uc.SendContactMessage(context.Background(), validRequest())
		require.NoError(t, err)
		require.NotNil(t, autoReply)
		assert.Empty(t, autoReply.ReplyTo)
		assert.Contains(t, autoReply.Subject, "Jane Doe")
		assert.Contains(t, autoReply.HTML, "Jane Doe")
		assert.Contains(t, autoReply.Text, "Hi Jane Doe")
	})
}

func TestContactHappyPath(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Verify", mock.Anything).Return(nil)
	sender.On("NewMessageID").Return("notif-id").Once()
	sender.On("NewMessageID").Return("reply-id").Once()

	var notification *email.Message
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*email.Message)
		if msg.To == testProfile.Email {
			notification = msg
		}
	}).Return(nil)

	uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())
	receipt, err := uc.SendContactMessage(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "notif-id", receipt.EmailID)

	require.NotNil(t, notification)
	assert.Equal(t, "jane@example.com", notification.ReplyTo, "owner replies go to the submitter")
	assert.Equal(t, "Contact Form: General Inquiry", notification.Subject)
	assert.Contains(t, notification.HTML, "Hello, interested in collaborating.")
	assert.NotEmpty(t, notification.Text)
}

func TestContactSubjectFallback(t *testing.T) {
	sender := new(MockMailSender)
	sender.On("IsConfigured").Return(true)
	sender.On("Verify", mock.Anything).Return(nil)
	sender.On("NewMessageID").Return("id")

	var notification *email.Message
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*email.Message)
		if msg.To == testProfile.Email {
			notification = msg
		}
	}).Return(nil)

	uc := usecase.NewContactUsecase(sender, testProfile, domain.DefaultSubjectCatalog())
	req := validRequest()
	req.Subject = "totally-unknown-key"
	_, err := uc.SendContactMessage(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, "Contact Form: New Inquiry", notification.Subject)
	assert.Contains(t, notification.HTML, "New Inquiry")
}
