package dto

import (
	"time"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SkillListResponse carries the skills plus the derived filter tab set.
type SkillListResponse struct {
	Skills     []SkillResponse `json:"skills"`
	Categories []string        `json:"categories"`
}
