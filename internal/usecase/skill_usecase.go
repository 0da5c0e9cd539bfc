package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"skillseeker/internal/domain/skill"
	"skillseeker/internal/repository"
	"skillseeker/internal/ws"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

// AllCategory is the pseudo-category heading the derived filter set.
const AllCategory = "All"

type AddSkillInput struct {
	Title       string
	Description string
	Category    string
	Progress    int
}

type UpdateSkillInput struct {
	Title       *string
	Description *string
	Category    *string
	Progress    *int
}

type SkillItem struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]SkillItem, []string, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (SkillItem, error)
	UpdateSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, in UpdateSkillInput) (SkillItem, error)
	DeleteSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type Skill struct {
	repo  repository.SkillRepository
	cache StatsCache
}

func NewSkillUsecase(repo repository.SkillRepository, cache StatsCache) *Skill {
	return &Skill{repo: repo, cache: cache}
}

// ListSkills returns the user's skills ordered by title together with the
// derived category filter set. Zero skills is a valid result: an empty
// list and exactly ["All"].
func (u *Skill) ListSkills(ctx context.Context, userID uuid.UUID) ([]SkillItem, []string, error) {
	rows, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, ErrInternal
	}

	items := make([]SkillItem, 0, len(rows))
	for _, s := range rows {
		items = append(items, toSkillItem(s))
	}
	return items, deriveCategories(rows), nil
}

func (u *Skill) AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (SkillItem, error) {
	if err := validateSkillFields(in.Title, in.Description, in.Category, in.Progress); err != nil {
		return SkillItem{}, err
	}

	created, err := u.repo.Create(ctx, skill.Skill{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Progress:    in.Progress,
	})
	if err != nil {
		return SkillItem{}, ErrInternal
	}

	u.invalidateStats(ctx, userID)
	ws.NotifySkillsChanged(userID)
	return toSkillItem(created), nil
}

func (u *Skill) UpdateSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID, in UpdateSkillInput) (SkillItem, error) {
	if skillID == uuid.Nil {
		return SkillItem{}, ErrInvalidInput
	}

	current, err := u.repo.FindByID(ctx, skillID, userID)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}

	if in.Title != nil {
		current.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		current.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		current.Category = strings.TrimSpace(*in.Category)
	}
	if in.Progress != nil {
		current.Progress = *in.Progress
	}

	if err := validateSkillFields(current.Title, current.Description, current.Category, current.Progress); err != nil {
		return SkillItem{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return SkillItem{}, ErrSkillNotFound
		}
		return SkillItem{}, ErrInternal
	}

	u.invalidateStats(ctx, userID)
	ws.NotifySkillsChanged(userID)
	return toSkillItem(updated), nil
}

func (u *Skill) DeleteSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, skillID, userID); err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	u.invalidateStats(ctx, userID)
	ws.NotifySkillsChanged(userID)
	return nil
}

func (u *Skill) invalidateStats(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, DashboardCacheKey(userID))
}

// validateSkillFields rejects bad input before any store call; messages
// are field-scoped so forms can annotate the offending control.
// Lengths count runes so multibyte input is measured in characters.
func validateSkillFields(title, description, category string, progress int) error {
	v := newValidationError()
	if utf8.RuneCountInString(strings.TrimSpace(title)) < 2 {
		v.add("title", "Skill name must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) < 10 {
		v.add("description", "Description must be at least 10 characters")
	}
	if strings.TrimSpace(category) == "" {
		v.add("category", "Please select a category")
	}
	if progress < 0 || progress > 100 {
		v.add("progress", "Progress must be between 0 and 100")
	}
	return v.orNil()
}

// deriveCategories is the filter tab set: the distinct categories across
// the current skills, first-seen order, always prefixed with "All".
func deriveCategories(rows []skill.Skill) []string {
	out := []string{AllCategory}
	seen := map[string]bool{}
	for _, s := range rows {
		if s.Category == "" || seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}

func toSkillItem(s skill.Skill) SkillItem {
	return SkillItem{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Progress:    s.Progress,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
