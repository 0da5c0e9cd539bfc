package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	EventEnrollmentChanged = "enrollment_changed"
	EventSkillsChanged     = "skills_changed"
)

// ChangeEvent tells a client that server-side state it may be rendering
// has moved; dependent views refetch on receipt.
type ChangeEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	CourseID  string `json:"course_id,omitempty"`
	Enrolled  *bool  `json:"enrolled,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyEnrollmentChanged pushes an enrollment transition to the user's
// open connections. Safe no-op when no hub is wired (tests, startup).
func NotifyEnrollmentChanged(userID uuid.UUID, courseID string, enrolled bool) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := ChangeEvent{
		Type:      EventEnrollmentChanged,
		UserID:    userID.String(),
		CourseID:  courseID,
		Enrolled:  &enrolled,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Send(userID, b)
}

func NotifySkillsChanged(userID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := ChangeEvent{
		Type:      EventSkillsChanged,
		UserID:    userID.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Send(userID, b)
}
