package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"unlock-service/pkg/xerrors"
)

// Status is the processing state of an unlock request. Unknown values are
// rejected at the boundary rather than passed through.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// ParseStatus maps a raw string onto the closed status set. An empty string
// defaults to StatusNew.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case "":
		return StatusNew, nil
	case StatusNew, StatusInProgress, StatusCompleted, StatusFailed:
		return Status(raw), nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

const (
	imeiMinLen = 8
	imeiMaxLen = 20
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UnlockRequest is a customer-submitted description of a locked device.
// Region and Notes are optional; an empty string means absent.
type UnlockRequest struct {
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Issue  string `json:"issue"`
	IMEI   string `json:"imei"`
	Region string `json:"region,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Notes  string `json:"notes,omitempty"`
	Status Status `json:"status"`
}

// StoredUnlockRequest is an unlock request as persisted, with the
// store-generated identifier and insertion timestamp.
type StoredUnlockRequest struct {
	ID string `json:"id"`
	UnlockRequest
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks field presence, IMEI length bounds, email syntax and the
// status enumeration. It normalizes an absent status to StatusNew and is the
// only place a request is allowed to change; validated requests are treated
// as immutable downstream.
func (r *UnlockRequest) Validate() error {
	ve := &xerrors.ValidationError{}

	if strings.TrimSpace(r.Brand) == "" {
		ve.Add("brand", "field required")
	}
	if strings.TrimSpace(r.Model) == "" {
		ve.Add("model", "field required")
	}
	if strings.TrimSpace(r.Issue) == "" {
		ve.Add("issue", "field required")
	}
	if strings.TrimSpace(r.Name) == "" {
		ve.Add("name", "field required")
	}

	switch {
	case r.IMEI == "":
		ve.Add("imei", "field required")
	case len(r.IMEI) < imeiMinLen:
		ve.Add("imei", fmt.Sprintf("must be at least %d characters", imeiMinLen))
	case len(r.IMEI) > imeiMaxLen:
		ve.Add("imei", fmt.Sprintf("must be at most %d characters", imeiMaxLen))
	}

	if r.Email == "" {
		ve.Add("email", "field required")
	} else if !emailRegex.MatchString(r.Email) {
		ve.Add("email", "invalid email format")
	}

	status, err := ParseStatus(string(r.Status))
	if err != nil {
		ve.Add("status", err.Error())
	} else {
		r.Status = status
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
