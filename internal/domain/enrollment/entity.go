package enrollment

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is a user's membership record in a catalog course.
// Identity is the (user, course) pair; the store's composite key keeps
// the pair unique. No history is retained after unenrollment.
type Enrollment struct {
	UserID     uuid.UUID
	CourseID   string
	EnrolledAt time.Time
}
