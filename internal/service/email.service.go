package service

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"go.uber.org/zap"
)

// Message is one composed email: both bodies are carried so recipients
// without HTML rendering still get the content.
type Message struct {
	To        string
	Subject   string
	HTMLBody  string
	PlainBody string
}

type EmailConfig struct {
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
}

const dialTimeout = 10 * time.Second

type EmailSender struct {
	cfg    EmailConfig
	logger *zap.Logger
}

func NewEmailSender(cfg EmailConfig, logger *zap.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, logger: logger}
}

// Configured reports whether the transport has everything it needs to
// actually talk to an SMTP server.
func (e *EmailSender) Configured() bool {
	return e.cfg.SMTPHost != "" && e.cfg.Username != "" && e.cfg.Password != ""
}

// Send delivers one message over SMTP with a STARTTLS upgrade before auth.
// When the transport is unconfigured it performs no network operation and
// returns nil, so the intake flow never fails just because mail is not set
// up. The dial is bounded so background senders cannot leak indefinitely.
func (e *EmailSender) Send(msg Message) error {
	if !e.Configured() {
		e.logger.Info("smtp not configured, skipping send",
			zap.String("recipient", msg.To),
			zap.String("subject", msg.Subject))
		return nil
	}

	from := e.cfg.FromEmail
	if from == "" {
		from = e.cfg.Username
	}

	boundary := "np-unlock-boundary"
	payload := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", msg.To) +
			fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
			"MIME-Version: 1.0\r\n" +
			fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary) +
			"\r\n" +
			fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			msg.PlainBody + "\r\n" +
			fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			msg.HTMLBody + "\r\n" +
			fmt.Sprintf("--%s--\r\n", boundary),
	)

	serverAddr := e.cfg.SMTPHost + ":" + e.cfg.SMTPPort

	conn, err := net.DialTimeout("tcp", serverAddr, dialTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}

	client, err := smtp.NewClient(conn, e.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Quit()

	tlsConfig := &tls.Config{ServerName: e.cfg.SMTPHost}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(msg.To); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	e.logger.Info("email sent",
		zap.String("recipient", msg.To),
		zap.String("subject", msg.Subject))
	return nil
}
