// Package notify sends desktop notifications. Notifications are
// fire-and-forget: delivery failures never propagate to callers.
package notify

import "github.com/gen2brain/beeep"

const appName = "Dictation"

// previewLimit caps notification bodies carrying transcribed text.
const previewLimit = 100

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Notifier sends desktop notifications via the system notification service.
type Notifier struct {
	enabled bool
}

func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Notify shows a notification with the given urgency.
func (n *Notifier) Notify(title, body string, urgency Urgency) {
	if !n.enabled {
		return
	}
	if urgency == UrgencyCritical {
		_ = beeep.Alert(appName+": "+title, body, "")
		return
	}
	_ = beeep.Notify(appName+": "+title, body, "")
}

// Truncate shortens text to notification-preview length.
func Truncate(text string) string {
	if len(text) > previewLimit {
		return text[:previewLimit] + "..."
	}
	return text
}
