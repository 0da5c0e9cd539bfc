package usecase

import (
	"context"
	"errors"
	"time"

	"skillseeker/internal/catalog"
	"skillseeker/internal/domain/enrollment"
	"skillseeker/internal/repository"
	"skillseeker/internal/ws"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrCourseNotFound = errors.New("course not found")

// EnrolledCourse pairs an enrollment row with its catalog entry.
type EnrolledCourse struct {
	Course     catalog.Course
	EnrolledAt time.Time
}

// EnrollResult reports the outcome of an enroll call. AlreadyEnrolled is
// user feedback, not an error: a duplicate enroll leaves exactly one row.
type EnrollResult struct {
	CourseID        string
	AlreadyEnrolled bool
}

type EnrollmentUsecase interface {
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]EnrolledCourse, error)
	IsEnrolled(ctx context.Context, userID uuid.UUID, courseID string) (bool, error)
	Enroll(ctx context.Context, userID uuid.UUID, courseID string) (EnrollResult, error)
	Unenroll(ctx context.Context, userID uuid.UUID, courseID string) error
}

type Enrollment struct {
	repo  repository.EnrollmentRepository
	cache StatsCache
}

func NewEnrollmentUsecase(repo repository.EnrollmentRepository, cache StatsCache) *Enrollment {
	return &Enrollment{repo: repo, cache: cache}
}

func (u *Enrollment) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]EnrolledCourse, error) {
	rows, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]EnrolledCourse, 0, len(rows))
	for _, e := range rows {
		c, ok := catalog.ByID(e.CourseID)
		if !ok {
			// Row for a course that left the catalog; skip rather than fail.
			continue
		}
		out = append(out, EnrolledCourse{Course: c, EnrolledAt: e.EnrolledAt})
	}
	return out, nil
}

func (u *Enrollment) IsEnrolled(ctx context.Context, userID uuid.UUID, courseID string) (bool, error) {
	if courseID == "" {
		return false, ErrInvalidInput
	}
	enrolled, err := u.repo.Exists(ctx, userID, courseID)
	if err != nil {
		return false, ErrInternal
	}
	return enrolled, nil
}

// Enroll inserts the (user, course) row. The store's composite key keeps
// the pair unique; a duplicate insert comes back as a benign
// already-enrolled outcome instead of a hard error.
func (u *Enrollment) Enroll(ctx context.Context, userID uuid.UUID, courseID string) (EnrollResult, error) {
	if userID == uuid.Nil {
		return EnrollResult{}, ErrUnauthorized
	}
	if !catalog.Exists(courseID) {
		return EnrollResult{}, ErrCourseNotFound
	}

	err := u.repo.Create(ctx, enrollment.Enrollment{UserID: userID, CourseID: courseID})
	if err != nil {
		if isUniqueViolation(err) {
			return EnrollResult{CourseID: courseID, AlreadyEnrolled: true}, nil
		}
		return EnrollResult{}, ErrInternal
	}

	u.invalidateStats(ctx, userID)
	ws.NotifyEnrollmentChanged(userID, courseID, true)
	return EnrollResult{CourseID: courseID}, nil
}

// Unenroll deletes the matching row. Deleting a row that does not exist
// is a no-op success.
func (u *Enrollment) Unenroll(ctx context.Context, userID uuid.UUID, courseID string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if courseID == "" {
		return ErrInvalidInput
	}

	affected, err := u.repo.Delete(ctx, userID, courseID)
	if err != nil {
		return ErrInternal
	}
	if affected == 0 {
		return nil
	}

	u.invalidateStats(ctx, userID)
	ws.NotifyEnrollmentChanged(userID, courseID, false)
	return nil
}

func (u *Enrollment) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, DashboardCacheKey(userID))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
