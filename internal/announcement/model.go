package announcement

import "time"

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateParams carries a partial edit; nil fields are left untouched.
type UpdateParams struct {
	Title   *string
	Message *string
	Active  *bool
}

func (p UpdateParams) empty() bool {
	return p.Title == nil && p.Message == nil && p.Active == nil
}
