package repository

import (
	"context"

	"skillseeker/internal/database"
	"skillseeker/internal/domain/enrollment"

	"github.com/google/uuid"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]enrollment.Enrollment, error)
	Exists(ctx context.Context, userID uuid.UUID, courseID string) (bool, error)
	Create(ctx context.Context, e enrollment.Enrollment) error
	// Delete reports the number of removed rows; zero is a valid outcome,
	// not an error.
	Delete(ctx context.Context, userID uuid.UUID, courseID string) (int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresEnrollmentRepository struct {
	db database.DB
}

func NewPostgresEnrollmentRepository(db database.DB) *PostgresEnrollmentRepository {
	return &PostgresEnrollmentRepository{db: db}
}

func (r *PostgresEnrollmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]enrollment.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, course_id, enrolled_at
		 FROM enrollments
		 WHERE user_id = $1
		 ORDER BY enrolled_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]enrollment.Enrollment, 0)
	for rows.Next() {
		var e enrollment.Enrollment
		if err := rows.Scan(&e.UserID, &e.CourseID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEnrollmentRepository) Exists(ctx context.Context, userID uuid.UUID, courseID string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEnrollmentRepository) Create(ctx context.Context, e enrollment.Enrollment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO enrollments (user_id, course_id) VALUES ($1, $2)`,
		e.UserID, e.CourseID,
	)
	return err
}

func (r *PostgresEnrollmentRepository) Delete(ctx context.Context, userID uuid.UUID, courseID string) (int64, error) {
	return r.db.Exec(ctx,
		`DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`,
		userID, courseID,
	)
}

func (r *PostgresEnrollmentRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments WHERE user_id = $1`, userID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
