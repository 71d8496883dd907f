package model

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
)

// Notification is one row in the notifications panel. Timestamps are the
// display strings the panel shows, not real clock values.
type Notification struct {
	ID        string `json:"id"`
	Role      string `json:"-"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"is_read"`
	Type      string `json:"type"`
}
