package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"skillseeker/internal/domain/enrollment"
	"skillseeker/internal/domain/skill"

	"github.com/google/uuid"
)

// mockStatsCache is a map-backed StatsCache shared by the usecase tests.
type mockStatsCache struct {
	data    map[string][]byte
	deleted []string
	getErr  error
}

func (m *mockStatsCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockStatsCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = b
	return nil
}

func (m *mockStatsCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.data, key)
	return nil
}

type mockEnrollmentRepo struct {
	items     []enrollment.Enrollment
	createErr error
	deleteErr error

	createCalls int
}

func (m *mockEnrollmentRepo) FindByUserID(context.Context, uuid.UUID) ([]enrollment.Enrollment, error) {
	return m.items, nil
}

func (m *mockEnrollmentRepo) Exists(_ context.Context, _ uuid.UUID, courseID string) (bool, error) {
	for _, e := range m.items {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e enrollment.Enrollment) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.items = append(m.items, e)
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, _ uuid.UUID, courseID string) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	for i := range m.items {
		if m.items[i].CourseID == courseID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockEnrollmentRepo) CountByUserID(context.Context, uuid.UUID) (int, error) {
	return len(m.items), nil
}

func TestDashboardUsecase_GetStats_Derivation(t *testing.T) {
	userID := uuid.New()
	skills := &mockSkillRepo{items: []skill.Skill{
		{ID: uuid.New(), UserID: userID, Title: "A", Category: "X", Progress: 20},
		{ID: uuid.New(), UserID: userID, Title: "B", Category: "X", Progress: 90},
		{ID: uuid.New(), UserID: userID, Title: "C", Category: "Y", Progress: 40},
	}}
	enrollments := &mockEnrollmentRepo{items: []enrollment.Enrollment{
		{UserID: userID, CourseID: "1"},
		{UserID: userID, CourseID: "3"},
	}}
	uc := NewDashboardUsecase(skills, enrollments, nil, time.Minute)

	stats, err := uc.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.SkillCount != 3 {
		t.Fatalf("expected 3 skills, got %d", stats.SkillCount)
	}
	if stats.AverageProgress != 50 {
		t.Fatalf("expected average 50, got %d", stats.AverageProgress)
	}
	if stats.EnrollmentCount != 2 {
		t.Fatalf("expected 2 enrollments, got %d", stats.EnrollmentCount)
	}
	if len(stats.TopSkills) != 3 || stats.TopSkills[0].Progress != 90 {
		t.Fatalf("expected top skills ordered by progress, got %+v", stats.TopSkills)
	}
}

func TestDashboardUsecase_GetStats_TopSkillsCapped(t *testing.T) {
	userID := uuid.New()
	repo := &mockSkillRepo{}
	for i := 0; i < 8; i++ {
		repo.items = append(repo.items, skill.Skill{
			ID: uuid.New(), UserID: userID, Title: "S", Progress: i * 10,
		})
	}
	uc := NewDashboardUsecase(repo, &mockEnrollmentRepo{}, nil, time.Minute)

	stats, err := uc.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(stats.TopSkills) != 5 {
		t.Fatalf("expected top skills capped at 5, got %d", len(stats.TopSkills))
	}
}

func TestDashboardUsecase_GetStats_CacheHitSkipsStore(t *testing.T) {
	userID := uuid.New()
	cache := &mockStatsCache{}
	cached := DashboardStats{SkillCount: 7, AverageProgress: 42, EnrollmentCount: 2, TopSkills: []SkillItem{}}
	if err := cache.SetJSON(context.Background(), DashboardCacheKey(userID), cached, time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// A repo that would report different numbers; the cached copy must win.
	skills := &mockSkillRepo{items: []skill.Skill{{ID: uuid.New(), Progress: 10}}}
	uc := NewDashboardUsecase(skills, &mockEnrollmentRepo{}, cache, time.Minute)

	stats, err := uc.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.SkillCount != 7 || stats.AverageProgress != 42 {
		t.Fatalf("expected cached stats, got %+v", stats)
	}
}

func TestDashboardUsecase_GetStats_CacheErrorFallsThrough(t *testing.T) {
	userID := uuid.New()
	cache := &mockStatsCache{getErr: context.DeadlineExceeded}
	skills := &mockSkillRepo{items: []skill.Skill{{ID: uuid.New(), UserID: userID, Title: "A", Progress: 60}}}
	uc := NewDashboardUsecase(skills, &mockEnrollmentRepo{}, cache, time.Minute)

	stats, err := uc.GetStats(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.SkillCount != 1 || stats.AverageProgress != 60 {
		t.Fatalf("expected stats derived from store, got %+v", stats)
	}
}
