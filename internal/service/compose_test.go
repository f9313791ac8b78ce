package service

import (
	"strings"
	"testing"

	"unlock-service/internal/domain"
)

func sampleRequest() *domain.UnlockRequest {
	return &domain.UnlockRequest{
		Brand:  "Apple",
		Model:  "iPhone 12",
		Issue:  "Carrier Lock",
		IMEI:   "123456789012",
		Region: "AT&T",
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Notes:  "urgent",
		Status: domain.StatusNew,
	}
}

func TestComposeAdminAlert(t *testing.T) {
	msg := ComposeAdminAlert(sampleRequest(), "abc-123", "process@phonelockremover.com")

	if msg.To != "process@phonelockremover.com" {
		t.Errorf("recipient = %q, want admin address", msg.To)
	}
	for _, want := range []string{"Apple", "iPhone 12", "abc-123"} {
		if !strings.Contains(msg.Subject, want) {
			t.Errorf("subject %q missing %q", msg.Subject, want)
		}
	}
	for _, want := range []string{"Carrier Lock", "123456789012", "AT&T", "Jane Doe", "jane@example.com", "urgent", "new"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Errorf("html body missing %q", want)
		}
		if !strings.Contains(msg.PlainBody, want) {
			t.Errorf("plain body missing %q", want)
		}
	}
}

func TestComposeAdminAlertPlaceholders(t *testing.T) {
	req := sampleRequest()
	req.Region = ""
	req.Notes = ""

	msg := ComposeAdminAlert(req, "abc-123", "admin@example.com")
	if !strings.Contains(msg.PlainBody, "Region: -") {
		t.Errorf("plain body missing region placeholder:\n%s", msg.PlainBody)
	}
	if !strings.Contains(msg.PlainBody, "Notes: -") {
		t.Errorf("plain body missing notes placeholder:\n%s", msg.PlainBody)
	}
}

func TestComposeCustomerAck(t *testing.T) {
	msg := ComposeCustomerAck(sampleRequest(), "abc-123")

	if msg.To != "jane@example.com" {
		t.Errorf("recipient = %q, want customer email", msg.To)
	}
	if msg.Subject != "We received your unlock request" {
		t.Errorf("subject = %q", msg.Subject)
	}
	for _, want := range []string{"Jane Doe", "abc-123", "Apple iPhone 12", "Carrier Lock", "123456789012"} {
		if !strings.Contains(msg.PlainBody, want) {
			t.Errorf("plain body missing %q", want)
		}
	}
	if !strings.Contains(msg.PlainBody, "We'll contact you at this email") {
		t.Error("plain body missing follow-up sentence")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	req := sampleRequest()
	a := ComposeAdminAlert(req, "id-1", "admin@example.com")
	b := ComposeAdminAlert(req, "id-1", "admin@example.com")
	if a != b {
		t.Error("admin composition is not deterministic")
	}

	c := ComposeCustomerAck(req, "id-1")
	d := ComposeCustomerAck(req, "id-1")
	if c != d {
		t.Error("customer composition is not deterministic")
	}
}
