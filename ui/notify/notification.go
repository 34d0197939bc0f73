package notify

import "time"

// Category classifies a notification for icon and color selection.
type Category string

const (
	CategorySubject Category = "subject"
	CategorySystem  Category = "system"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryError   Category = "error"
	CategoryOther   Category = "other"
)

// Notification is a read-only view of a notification record. The backend
// owns the authoritative copy; this layer only renders the list and emits
// mark-read events upward.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Category  Category
	IsRead    bool
	CreatedAt time.Time
}
