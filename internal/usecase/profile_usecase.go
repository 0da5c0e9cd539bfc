package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"skillseeker/internal/domain/profile"
	"skillseeker/internal/repository"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

// UpdateProfileInput carries the settable profile fields. Nil means
// "leave unchanged"; only username, bio and interests are writable.
type UpdateProfileInput struct {
	Username  *string
	Bio       *string
	Interests *string
}

// ProfileItem is the profile as pages consume it. Onboarded is derived
// from the username field alone; there is deliberately no client-side
// fallback flag that could drift from it.
type ProfileItem struct {
	UserID    uuid.UUID
	Username  string
	Bio       string
	Interests string
	AvatarURL string
	Onboarded bool
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ProfileItem, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfileItem, error)
}

type Profile struct {
	profiles repository.ProfileRepository
}

func NewProfileUsecase(profiles repository.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (ProfileItem, error) {
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ProfileItem{}, ErrProfileNotFound
		}
		return ProfileItem{}, ErrInternal
	}
	return toProfileItem(p), nil
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfileItem, error) {
	if in.Username == nil && in.Bio == nil && in.Interests == nil {
		return ProfileItem{}, ErrInvalidInput
	}

	if err := validateProfileInput(in); err != nil {
		return ProfileItem{}, err
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ProfileItem{}, ErrProfileNotFound
		}
		return ProfileItem{}, ErrInternal
	}

	if in.Username != nil {
		p.Username = strings.TrimSpace(*in.Username)
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Interests != nil {
		p.Interests = strings.TrimSpace(*in.Interests)
	}

	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ProfileItem{}, ErrProfileNotFound
		}
		// The partial unique index on lower(username) is the arbiter of
		// name ownership; a violation is ordinary user input, not a fault.
		if isUniqueViolation(err) {
			v := newValidationError()
			v.add("username", "Username is already taken")
			return ProfileItem{}, v.orNil()
		}
		return ProfileItem{}, ErrInternal
	}
	return toProfileItem(updated), nil
}

func validateProfileInput(in UpdateProfileInput) error {
	v := newValidationError()
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		switch {
		case name == "":
			v.add("username", "Username is required")
		case utf8.RuneCountInString(name) < 3:
			v.add("username", "Username must be at least 3 characters")
		}
	}
	return v.orNil()
}

func toProfileItem(p profile.Profile) ProfileItem {
	return ProfileItem{
		UserID:    p.UserID,
		Username:  p.Username,
		Bio:       p.Bio,
		Interests: p.Interests,
		AvatarURL: p.AvatarURL,
		Onboarded: p.Onboarded(),
	}
}
