package usecase

import (
	"context"
	"sort"
	"time"

	"skillseeker/internal/repository"

	"github.com/google/uuid"
)

// StatsCache is the slice of the Redis wrapper the usecases need. A nil
// cache means straight-through reads; cache failures never fail a request.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func DashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

type DashboardStats struct {
	SkillCount      int         `json:"skill_count"`
	AverageProgress int         `json:"average_progress"`
	EnrollmentCount int         `json:"enrollment_count"`
	TopSkills       []SkillItem `json:"top_skills"`
}

type DashboardUsecase interface {
	GetStats(ctx context.Context, userID uuid.UUID) (DashboardStats, error)
}

type Dashboard struct {
	skills      repository.SkillRepository
	enrollments repository.EnrollmentRepository
	cache       StatsCache
	ttl         time.Duration
}

func NewDashboardUsecase(skills repository.SkillRepository, enrollments repository.EnrollmentRepository, cache StatsCache, ttl time.Duration) *Dashboard {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Dashboard{skills: skills, enrollments: enrollments, cache: cache, ttl: ttl}
}

// GetStats derives the dashboard counters from the user's skills and
// enrollments, caching the result per user until the next write.
func (u *Dashboard) GetStats(ctx context.Context, userID uuid.UUID) (DashboardStats, error) {
	key := DashboardCacheKey(userID)

	if u.cache != nil {
		var cached DashboardStats
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	skills, err := u.skills.FindByUserID(ctx, userID)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}
	enrollmentCount, err := u.enrollments.CountByUserID(ctx, userID)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}

	stats := DashboardStats{
		SkillCount:      len(skills),
		EnrollmentCount: enrollmentCount,
		TopSkills:       []SkillItem{},
	}

	if len(skills) > 0 {
		total := 0
		items := make([]SkillItem, 0, len(skills))
		for _, s := range skills {
			total += s.Progress
			items = append(items, toSkillItem(s))
		}
		stats.AverageProgress = total / len(skills)

		sort.SliceStable(items, func(i, j int) bool { return items[i].Progress > items[j].Progress })
		if len(items) > 5 {
			items = items[:5]
		}
		stats.TopSkills = items
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, stats, u.ttl)
	}
	return stats, nil
}
