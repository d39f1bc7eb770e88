package todo

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

// Todo is a household task, optionally with a due date.
type Todo struct {
	ID       uuid.UUID
	Owner    household.Member
	Text     string
	Done     bool
	Due      *time.Time
	Position int
}
