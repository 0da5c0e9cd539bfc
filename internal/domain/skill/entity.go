package skill

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("skill not found")

// Skill is a user-tracked competency with a 0-100 progress value.
// Category is free text; it only drives grouping and filter tabs.
type Skill struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Category    string
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
