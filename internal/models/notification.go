package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationNewCustomer      NotificationType = "new_customer"
	NotificationOfferAccepted    NotificationType = "offer_accepted"
	NotificationOfferPublished   NotificationType = "offer_published"
	NotificationRequestPublished NotificationType = "request_published"
	NotificationAppointment      NotificationType = "appointment"
	NotificationFinanceUpdate    NotificationType = "finance_update"
	NotificationNewMessage       NotificationType = "new_message"
	NotificationReminder         NotificationType = "reminder"
	NotificationMarketing        NotificationType = "marketing"
	NotificationSystem           NotificationType = "system"
)

// Notification is an append-only event record with per-user read state.
// ActionType drives where the UI navigates when the entry is tapped.
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Timestamp  time.Time        `json:"timestamp"`
	Read       bool             `json:"read"`
	ActionType string           `json:"action_type,omitempty"`
}
