package service

import (
	"fmt"

	"unlock-service/internal/domain"
)

// Message composition is pure: the same (request, id) pair always produces
// the same message, and nothing here touches the network or the store.

// ComposeAdminAlert builds the administrator notification for a newly
// persisted unlock request.
func ComposeAdminAlert(req *domain.UnlockRequest, docID, adminEmail string) Message {
	subject := fmt.Sprintf("New Unlock Request • %s %s • %s", req.Brand, req.Model, docID)

	html := fmt.Sprintf(`
	<h2>New Unlock Request</h2>
	<p><strong>Reference ID:</strong> %s</p>
	<ul>
	  <li><strong>Brand:</strong> %s</li>
	  <li><strong>Model:</strong> %s</li>
	  <li><strong>Issue:</strong> %s</li>
	  <li><strong>IMEI/Serial:</strong> %s</li>
	  <li><strong>Region/Carrier:</strong> %s</li>
	  <li><strong>Name:</strong> %s</li>
	  <li><strong>Email:</strong> %s</li>
	  <li><strong>Notes:</strong> %s</li>
	</ul>
	<p>Status: %s</p>
	`, docID, req.Brand, req.Model, req.Issue, req.IMEI, orDash(req.Region),
		req.Name, req.Email, orDash(req.Notes), req.Status)

	text := fmt.Sprintf(
		"New Unlock Request\n"+
			"ID: %s\n"+
			"Brand: %s\nModel: %s\nIssue: %s\n"+
			"IMEI/Serial: %s\nRegion: %s\n"+
			"Name: %s\nEmail: %s\nNotes: %s\n"+
			"Status: %s\n",
		docID, req.Brand, req.Model, req.Issue, req.IMEI, orDash(req.Region),
		req.Name, req.Email, orDash(req.Notes), req.Status)

	return Message{
		To:        adminEmail,
		Subject:   subject,
		HTMLBody:  html,
		PlainBody: text,
	}
}

// ComposeCustomerAck builds the acknowledgment sent back to the submitting
// customer.
func ComposeCustomerAck(req *domain.UnlockRequest, docID string) Message {
	subject := "We received your unlock request"

	html := fmt.Sprintf(`
	<h2>Thanks, %s!</h2>
	<p>We've received your request and will get back to you shortly.</p>
	<p><strong>Reference ID:</strong> %s</p>
	<p>Summary:</p>
	<ul>
	  <li><strong>Device:</strong> %s %s</li>
	  <li><strong>Issue:</strong> %s</li>
	  <li><strong>IMEI/Serial:</strong> %s</li>
	  <li><strong>Region/Carrier:</strong> %s</li>
	</ul>
	<p>If anything is incorrect, reply to this email with corrections.</p>
	<p>— PhoneLockRemover</p>
	`, req.Name, docID, req.Brand, req.Model, req.Issue, req.IMEI, orDash(req.Region))

	text := fmt.Sprintf(
		"Thanks, %s! We received your unlock request.\n"+
			"Reference ID: %s\n"+
			"Device: %s %s\nIssue: %s\nIMEI/Serial: %s\nRegion/Carrier: %s\n"+
			"We'll contact you at this email once we review.\n",
		req.Name, docID, req.Brand, req.Model, req.Issue, req.IMEI, orDash(req.Region))

	return Message{
		To:        req.Email,
		Subject:   subject,
		HTMLBody:  html,
		PlainBody: text,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
