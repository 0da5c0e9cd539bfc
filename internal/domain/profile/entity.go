package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is per-user account metadata. Username stays empty until the
// onboarding form is submitted; a non-empty username is what marks the
// account as onboarded. The server field is the only source of truth.
type Profile struct {
	UserID    uuid.UUID
	Username  string
	Bio       string
	Interests string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) Onboarded() bool {
	return strings.TrimSpace(p.Username) != ""
}
