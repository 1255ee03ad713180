package entities

import "time"

type NotificationCategory string

const (
	NotificationStatusChange NotificationCategory = "status_change"
	NotificationInfo         NotificationCategory = "info"
	NotificationWarning      NotificationCategory = "warning"
)

// MaxNotifications is the number of entries a notification log retains.
const MaxNotifications = 50

// Notification is a user-facing alert kept in the requester's notification log.
type Notification struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	CreatedAt     time.Time            `json:"created_at"`
	Read          bool                 `json:"read"`
	Category      NotificationCategory `json:"category"`
	RequisitionID string               `json:"requisition_id,omitempty"`
}

// PrependNotification inserts n at the front of log and drops whatever falls beyond
// MaxNotifications. The input slice is not modified.
func PrependNotification(log []Notification, n Notification) []Notification {
	size := len(log) + 1
	if size > MaxNotifications {
		size = MaxNotifications
	}
	out := make([]Notification, 0, size)
	out = append(out, n)
	for _, existing := range log {
		if len(out) == MaxNotifications {
			break
		}
		out = append(out, existing)
	}
	return out
}
