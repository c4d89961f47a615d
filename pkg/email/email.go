package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"go-portfolio-backend/config"
	"mime"
	"net"
	"net/smtp"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors used by callers to classify delivery failures.
var (
	ErrNotConfigured    = errors.New("email: relay credentials not configured")
	ErrAuthFailed       = errors.New("email: relay rejected credentials")
	ErrConnectionFailed = errors.New("email: relay unreachable")
)

// Service sends emails through an SMTP relay. Construction only stores
// configuration; every Verify/Send opens its own session against the
// relay, so a Service is safe for concurrent use.
type Service struct {
	host      string
	port      int
	secure    bool // implicit TLS vs STARTTLS upgrade
	username  string
	password  string
	fromName  string
	fromEmail string
	timeout   time.Duration
}

// Message is a single outbound email. ID becomes the Message-ID header
// and doubles as the delivery identifier returned to the caller.
type Message struct {
	ID      string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// NewService creates an email service from the relay configuration
func NewService(cfg *config.Config) *Service {
	timeout := time.Duration(cfg.SMTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		secure:    cfg.SMTPSecure,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromName:  cfg.OwnerName,
		fromEmail: cfg.SMTPFromEmail,
		timeout:   timeout,
	}
}

// IsConfigured checks if the service has valid relay credentials
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// NewMessageID returns a fresh delivery identifier for an outbound message.
func (s *Service) NewMessageID() string {
	return uuid.NewString()
}

// Verify performs the relay handshake (dial, EHLO, TLS, AUTH) and quits
// without sending anything. It returns the failure as data, never panics.
func (s *Service) Verify(ctx context.Context) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := s.authenticate(client); err != nil {
		return err
	}

	return client.Quit()
}

// Send delivers a single message over a fresh relay session.
func (s *Service) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	client, err := s.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := s.authenticate(client); err != nil {
		return err
	}

	if err := client.Mail(s.fromEmail); err != nil {
		return fmt.Errorf("email: MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("email: RCPT TO rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("email: DATA rejected: %w", err)
	}
	if _, err := w.Write(s.buildMIME(msg)); err != nil {
		return fmt.Errorf("email: failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("email: relay rejected message body: %w", err)
	}

	return client.Quit()
}

// connect dials the relay with a bounded deadline and negotiates TLS
// according to the configured mode. Port 465 style relays use implicit
// TLS; everything else upgrades via STARTTLS when the relay offers it.
func (s *Service) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, fmt.Sprintf("%d", s.port))

	dialer := &net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	// Bound the whole session, not just the dial
	_ = conn.SetDeadline(time.Now().Add(s.timeout))

	if s.secure {
		conn = tls.Client(conn, &tls.Config{ServerName: s.host})
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if !s.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				client.Close()
				return nil, fmt.Errorf("%w: STARTTLS failed: %v", ErrConnectionFailed, err)
			}
		}
	}

	return client, nil
}

// authenticate wraps any AUTH-stage failure as ErrAuthFailed: a relay
// that got far enough to evaluate credentials is reachable, so the
// remaining failure mode is the credentials themselves.
func (s *Service) authenticate(client *smtp.Client) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return nil
}

// buildMIME assembles the wire-format message. When a plain-text body is
// present the result is multipart/alternative with the HTML part last,
// so clients prefer it.
func (s *Service) buildMIME(msg *Message) []byte {
	var buf bytes.Buffer

	from := fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.fromName), s.fromEmail)
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", msg.ID, s.host)
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if msg.Text == "" {
		buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		buf.WriteString("\r\n")
		buf.WriteString(msg.HTML)
		return buf.Bytes()
	}

	boundary := "b-" + msg.ID
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	buf.WriteString(msg.Text)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	buf.WriteString(msg.HTML)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)
	return buf.Bytes()
}
