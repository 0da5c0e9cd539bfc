package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillseeker/internal/database"
	"skillseeker/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	Create(ctx context.Context, p profile.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Update(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (user_id, username, bio, interests, avatar_url)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5)`,
		p.UserID, p.Username, p.Bio, p.Interests, p.AvatarURL,
	)
	return err
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, COALESCE(username, ''), bio, interests, avatar_url, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE profiles
		 SET username = NULLIF($1, ''), bio = $2, interests = $3, avatar_url = $4, updated_at = now()
		 WHERE user_id = $5`,
		p.Username, p.Bio, p.Interests, p.AvatarURL, p.UserID,
	)
	if err != nil {
		return profile.Profile{}, err
	}
	if affected == 0 {
		return profile.Profile{}, profile.ErrNotFound
	}
	return r.GetByUserID(ctx, p.UserID)
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.UserID, &p.Username, &p.Bio, &p.Interests, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}
