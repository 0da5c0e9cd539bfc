package dto

import (
	"time"

	"skillseeker/internal/catalog"
)

// CourseResponse wraps a static catalog entry with per-caller state.
// Enrolled is omitted for anonymous requests.
type CourseResponse struct {
	catalog.Course
	Enrolled *bool `json:"enrolled,omitempty"`
}

type EnrollmentResponse struct {
	Course     catalog.Course `json:"course"`
	EnrolledAt time.Time      `json:"enrolled_at"`
}

type EnrollOutcomeResponse struct {
	CourseID        string `json:"course_id"`
	Enrolled        bool   `json:"enrolled"`
	AlreadyEnrolled bool   `json:"already_enrolled,omitempty"`
}
