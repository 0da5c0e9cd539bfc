package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillseeker/internal/database"
	"skillseeker/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (skill.Skill, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

const skillColumns = `id, user_id, title, description, category, progress, created_at, updated_at`

func (r *PostgresSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+`
		 FROM skills
		 WHERE user_id = $1
		 ORDER BY title ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.Category, &s.Progress, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, user_id, title, description, category, progress)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.Title, s.Description, s.Category, s.Progress,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	return r.FindByID(ctx, s.ID, s.UserID)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills
		 SET title = $1, description = $2, category = $3, progress = $4, updated_at = now()
		 WHERE id = $5 AND user_id = $6`,
		s.Title, s.Description, s.Category, s.Progress, s.ID, s.UserID,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	if affected == 0 {
		return skill.Skill{}, skill.ErrNotFound
	}
	return r.FindByID(ctx, s.ID, s.UserID)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE user_id = $1`, userID)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.Category, &s.Progress, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}
