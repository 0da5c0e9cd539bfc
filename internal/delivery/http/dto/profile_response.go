package dto

import "github.com/google/uuid"

// ProfileResponse includes the derived onboarded flag so clients never
// re-derive it from username heuristics of their own.
type ProfileResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	Interests string    `json:"interests"`
	AvatarURL string    `json:"avatar_url"`
	Onboarded bool      `json:"onboarded"`
}
