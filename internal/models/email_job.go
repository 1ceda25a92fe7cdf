package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailJobType identifies what a queued email job sends.
type EmailJobType string

const (
	EmailJobActivation    EmailJobType = "activation_email"
	EmailJobNewChildAlert EmailJobType = "new_child_alert"
)

// EmailJob is the message placed on the notification queue.
type EmailJob struct {
	ID         string       `json:"id"`
	Type       EmailJobType `json:"type"`
	Email      string       `json:"email,omitempty"`      // activation recipient
	Token      string       `json:"token,omitempty"`      // activation token
	ParentID   int64        `json:"parent_id,omitempty"`  // new child alert
	ChildName  string       `json:"child_name,omitempty"` // new child alert
	NotBefore  time.Time    `json:"not_before"`
	EnqueuedAt time.Time    `json:"enqueued_at"`
}

// NewActivationEmailJob builds an activation email job for email.
func NewActivationEmailJob(email, token string) EmailJob {
	now := time.Now().UTC()
	return EmailJob{
		ID:         uuid.NewString(),
		Type:       EmailJobActivation,
		Email:      email,
		Token:      token,
		NotBefore:  now,
		EnqueuedAt: now,
	}
}

// NewChildAlertJob builds an administrator alert about a new child, to be
// sent no earlier than delay from now.
func NewChildAlertJob(parentID int64, childName string, delay time.Duration) EmailJob {
	now := time.Now().UTC()
	return EmailJob{
		ID:         uuid.NewString(),
		Type:       EmailJobNewChildAlert,
		ParentID:   parentID,
		ChildName:  childName,
		NotBefore:  now.Add(delay),
		EnqueuedAt: now,
	}
}
