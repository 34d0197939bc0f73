package preview

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zookegger/ExamPro-Scheduler-sub003/ui/notify"
)

// Store holds the in-memory fixture notifications backing the preview
// offcanvas. It stands in for the real notification backend, which owns the
// authoritative records in production.
type Store struct {
	mu    sync.Mutex
	items []notify.Notification
}

// NewStore returns a store seeded with fixture notifications.
func NewStore() *Store {
	return &Store{items: fixtureNotifications()}
}

// List returns a copy of the notifications, newest first.
func (s *Store) List() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notify.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, item := range s.items {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// MarkRead marks one notification read. It reports whether anything changed,
// so re-marking a read row stays a no-op.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id && !s.items[i].IsRead {
			s.items[i].IsRead = true
			return true
		}
	}
	return false
}

// MarkAllRead marks every notification read and returns how many changed.
func (s *Store) MarkAllRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for i := range s.items {
		if !s.items[i].IsRead {
			s.items[i].IsRead = true
			n++
		}
	}
	return n
}

func fixtureNotifications() []notify.Notification {
	now := time.Now()

	return []notify.Notification{
		{
			ID:        uuid.NewString(),
			Title:     "Mathematics final rescheduled",
			Message:   "The Grade 12 Mathematics final moved to Friday 09:00, room B204.",
			Category:  notify.CategorySubject,
			CreatedAt: now.Add(-10 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Schedule published",
			Message:   "The June exam schedule is now visible to teachers and students.",
			Category:  notify.CategorySuccess,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Room conflict detected",
			Message:   "Two exams are assigned to room A101 on Tuesday afternoon.",
			Category:  notify.CategoryWarning,
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Proctor assignment failed",
			Message:   "No available proctor for the Chemistry retake on Thursday.",
			Category:  notify.CategoryError,
			CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Title:     "Maintenance window",
			Message:   "The scheduler will be briefly unavailable Sunday 02:00–02:30.",
			Category:  notify.CategorySystem,
			IsRead:    true,
			CreatedAt: now.Add(-48 * time.Hour),
		},
	}
}
