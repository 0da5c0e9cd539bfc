package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"skillseeker/internal/domain/skill"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	items []skill.Skill
	err   error

	createCalls int
	updateCalls int
	deleteCalls int
	deleted     []uuid.UUID
}

func (m *mockSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]skill.Skill, error) {
	return m.items, m.err
}

func (m *mockSkillRepo) FindByID(_ context.Context, id uuid.UUID, _ uuid.UUID) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	for _, s := range m.items {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, skill.ErrNotFound
}

func (m *mockSkillRepo) Create(_ context.Context, s skill.Skill) (skill.Skill, error) {
	m.createCalls++
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	m.items = append(m.items, s)
	return s, nil
}

func (m *mockSkillRepo) Update(_ context.Context, s skill.Skill) (skill.Skill, error) {
	m.updateCalls++
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	for i := range m.items {
		if m.items[i].ID == s.ID {
			m.items[i] = s
			return s, nil
		}
	}
	return skill.Skill{}, skill.ErrNotFound
}

func (m *mockSkillRepo) Delete(_ context.Context, id uuid.UUID, _ uuid.UUID) error {
	m.deleteCalls++
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return skill.ErrNotFound
}

func (m *mockSkillRepo) CountByUserID(context.Context, uuid.UUID) (int, error) {
	return len(m.items), m.err
}

func TestSkillUsecase_ListSkills_Empty(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, nil)

	items, categories, err := uc.ListSkills(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
	if !reflect.DeepEqual(categories, []string{"All"}) {
		t.Fatalf("expected categories [All], got %v", categories)
	}
}

func TestSkillUsecase_ListSkills_DerivesDistinctCategories(t *testing.T) {
	userID := uuid.New()
	repo := &mockSkillRepo{items: []skill.Skill{
		{ID: uuid.New(), UserID: userID, Title: "CSS Grid", Category: "Design", Progress: 40},
		{ID: uuid.New(), UserID: userID, Title: "Go", Category: "Programming", Progress: 70},
		{ID: uuid.New(), UserID: userID, Title: "TypeScript", Category: "Programming", Progress: 55},
	}}
	uc := NewSkillUsecase(repo, nil)

	items, categories, err := uc.ListSkills(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if !reflect.DeepEqual(categories, []string{"All", "Design", "Programming"}) {
		t.Fatalf("unexpected categories: %v", categories)
	}
}

func TestSkillUsecase_AddSkill_Success(t *testing.T) {
	repo := &mockSkillRepo{}
	cache := &mockStatsCache{}
	uc := NewSkillUsecase(repo, cache)
	userID := uuid.New()

	item, err := uc.AddSkill(context.Background(), userID, AddSkillInput{
		Title:       "  Go  ",
		Description: "Concurrency and the standard library",
		Category:    "Programming",
		Progress:    30,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Title != "Go" {
		t.Fatalf("expected trimmed title, got %q", item.Title)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", repo.createCalls)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != DashboardCacheKey(userID) {
		t.Fatalf("expected dashboard cache invalidation, got %v", cache.deleted)
	}
}

func TestSkillUsecase_AddSkill_ValidationNeverReachesStore(t *testing.T) {
	cases := []struct {
		name  string
		in    AddSkillInput
		field string
	}{
		{"short title", AddSkillInput{Title: "G", Description: "long enough description", Category: "Misc", Progress: 10}, "title"},
		{"short description", AddSkillInput{Title: "Go", Description: "too short", Category: "Misc", Progress: 10}, "description"},
		{"missing category", AddSkillInput{Title: "Go", Description: "long enough description", Progress: 10}, "category"},
		{"progress below range", AddSkillInput{Title: "Go", Description: "long enough description", Category: "Misc", Progress: -1}, "progress"},
		{"progress above range", AddSkillInput{Title: "Go", Description: "long enough description", Category: "Misc", Progress: 101}, "progress"},
		{"single multibyte rune title", AddSkillInput{Title: "日", Description: "long enough description", Category: "Misc", Progress: 10}, "title"},
		{"nine multibyte rune description", AddSkillInput{Title: "Go", Description: "ééééééééé", Category: "Misc", Progress: 10}, "description"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockSkillRepo{}
			uc := NewSkillUsecase(repo, nil)

			_, err := uc.AddSkill(context.Background(), uuid.New(), tc.in)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := vErr.Fields[tc.field]; !ok {
				t.Fatalf("expected message for field %q, got %v", tc.field, vErr.Fields)
			}
			if repo.createCalls != 0 {
				t.Fatalf("store must not be called on invalid input")
			}
		})
	}
}

func TestSkillUsecase_AddSkill_MultibyteLengthsCountRunes(t *testing.T) {
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo, nil)

	// Two runes and ten runes respectively; byte length is irrelevant.
	_, err := uc.AddSkill(context.Background(), uuid.New(), AddSkillInput{
		Title:       "日本",
		Description: "éééééééééé",
		Category:    "Languages",
		Progress:    10,
	})
	if err != nil {
		t.Fatalf("rune-length-valid input must pass, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", repo.createCalls)
	}
}

func TestSkillUsecase_AddSkill_StoreFailure(t *testing.T) {
	repo := &mockSkillRepo{err: errors.New("connection reset")}
	uc := NewSkillUsecase(repo, nil)

	_, err := uc.AddSkill(context.Background(), uuid.New(), AddSkillInput{
		Title:       "Go",
		Description: "Concurrency and the standard library",
		Category:    "Programming",
		Progress:    30,
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSkillUsecase_UpdateSkill_PartialMerge(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	repo := &mockSkillRepo{items: []skill.Skill{{
		ID:          skillID,
		UserID:      userID,
		Title:       "Go",
		Description: "Concurrency and the standard library",
		Category:    "Programming",
		Progress:    30,
	}}}
	uc := NewSkillUsecase(repo, nil)

	progress := 80
	item, err := uc.UpdateSkill(context.Background(), userID, skillID, UpdateSkillInput{Progress: &progress})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Progress != 80 {
		t.Fatalf("expected progress 80, got %d", item.Progress)
	}
	if item.Title != "Go" || item.Category != "Programming" {
		t.Fatalf("untouched fields must survive the merge: %+v", item)
	}
}

func TestSkillUsecase_UpdateSkill_InvalidMergedState(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	repo := &mockSkillRepo{items: []skill.Skill{{
		ID:          skillID,
		UserID:      userID,
		Title:       "Go",
		Description: "Concurrency and the standard library",
		Category:    "Programming",
		Progress:    30,
	}}}
	uc := NewSkillUsecase(repo, nil)

	progress := 150
	_, err := uc.UpdateSkill(context.Background(), userID, skillID, UpdateSkillInput{Progress: &progress})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("store must not be called on invalid merged state")
	}
	if repo.items[0].Progress != 30 {
		t.Fatalf("stored skill must be untouched, got progress %d", repo.items[0].Progress)
	}
}

func TestSkillUsecase_UpdateSkill_NotFound(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, nil)

	title := "Rust"
	_, err := uc.UpdateSkill(context.Background(), uuid.New(), uuid.New(), UpdateSkillInput{Title: &title})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkillUsecase_DeleteSkill(t *testing.T) {
	userID := uuid.New()
	skillID := uuid.New()
	repo := &mockSkillRepo{items: []skill.Skill{{ID: skillID, UserID: userID, Title: "Go"}}}
	uc := NewSkillUsecase(repo, nil)

	if err := uc.DeleteSkill(context.Background(), userID, skillID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected skill removed")
	}

	if err := uc.DeleteSkill(context.Background(), userID, skillID); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound on second delete, got %v", err)
	}
}
