package apperror

import "net/http"

// Kind classifies a failure for programmatic callers and metrics labels.
type Kind string

const (
	KindBadRequest           Kind = "bad_request"
	KindServiceUnavailable   Kind = "service_unavailable"
	KindAuthenticationFailed Kind = "authentication_failed"
	KindConnectionFailed     Kind = "connection_failed"
	KindSendFailed           Kind = "send_failed"
	KindInternal             Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(KindBadRequest, http.StatusBadRequest, message, nil)
}

// ServiceUnavailable covers a relay that is unconfigured or fails its
// verification handshake. The wire status is 500: the public contract
// only distinguishes client errors (400) from server errors (500).
func ServiceUnavailable(message string, err error) *AppError {
	return New(KindServiceUnavailable, http.StatusInternalServerError, message, err)
}

func AuthenticationFailed(message string, err error) *AppError {
	return New(KindAuthenticationFailed, http.StatusInternalServerError, message, err)
}

func ConnectionFailed(message string, err error) *AppError {
	return New(KindConnectionFailed, http.StatusInternalServerError, message, err)
}

func SendFailed(message string, err error) *AppError {
	return New(KindSendFailed, http.StatusInternalServerError, message, err)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}
