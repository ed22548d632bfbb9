package models

// Notification types classify the originating resource.
const (
	NotificationBooking  = "booking"
	NotificationLaundry  = "laundry"
	NotificationCatering = "catering"
	NotificationSystem   = "system"
)

// Notification severities, presentation-only classifiers.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Notification mirrors the living-support service's notification resource.
type Notification struct {
	ID          int    `json:"id"`
	UserID      string `json:"user_id"`
	Type        string `json:"type"`
	ReferenceID int    `json:"reference_id,omitempty"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Severity    string `json:"severity"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}
