// Package notification contains the ephemeral alert record shown to users.
// Notifications are created through New, queued by the dispatcher, and only
// ever mutated by flipping the read flag.
package notification

import "time"

// Type categorizes what an alert is about.
type Type string

// Alert types.
const (
	TypeUrgent  Type = "urgent"
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
)

// Priority drives side effects when an alert is queued: high priority
// triggers the audible alert.
type Priority string

// Alert priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultDuration is how long an auto-removed alert stays in the active set.
const DefaultDuration = 5 * time.Second

// Notification is an ephemeral alert record. ID and Timestamp are assigned
// by the dispatcher when the alert is queued; everything else is set by the
// producer. AutoRemove alerts are removed after Duration; alerts with
// AutoRemove false persist until explicitly dismissed.
type Notification struct {
	ID         string
	Type       Type
	Title      string
	Message    string
	Priority   Priority
	Timestamp  time.Time
	Read       bool
	AutoRemove bool
	Duration   time.Duration

	// Location is an optional human-readable place reference, e.g. a
	// coordinate pair rounded for display.
	Location string
}

// New creates a notification with the documented defaults: unread,
// auto-removed after DefaultDuration. Producers flip AutoRemove off or
// adjust Duration before handing the alert to the dispatcher.
func New(t Type, priority Priority, title, message string) Notification {
	return Notification{
		Type:       t,
		Title:      title,
		Message:    message,
		Priority:   priority,
		AutoRemove: true,
		Duration:   DefaultDuration,
	}
}
