package service

import (
	"testing"

	"go.uber.org/zap"
)

func TestSendSkipsWhenUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  EmailConfig
	}{
		{"all empty", EmailConfig{}},
		{"missing host", EmailConfig{Username: "u@example.com", Password: "secret"}},
		{"missing user", EmailConfig{SMTPHost: "smtp.example.com", Password: "secret"}},
		{"missing password", EmailConfig{SMTPHost: "smtp.example.com", Username: "u@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := NewEmailSender(tt.cfg, zap.NewNop())
			if sender.Configured() {
				t.Fatal("sender should report unconfigured")
			}
			// No network operation may be attempted; the send is a no-op.
			err := sender.Send(Message{To: "jane@example.com", Subject: "hi"})
			if err != nil {
				t.Fatalf("unconfigured send must succeed as no-op, got %v", err)
			}
		})
	}
}

func TestConfigured(t *testing.T) {
	sender := NewEmailSender(EmailConfig{
		SMTPHost: "smtp.example.com",
		SMTPPort: "587",
		Username: "u@example.com",
		Password: "secret",
	}, zap.NewNop())
	if !sender.Configured() {
		t.Fatal("sender should report configured")
	}
}
