package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// CampusOptions are the delivery locations the storefront serves.
var CampusOptions = []string{
	"CAS Department",
	"CBA Department",
	"CET Department",
	"EDUC Department",
	"CCMADI Department",
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Contact   string    `json:"contact"`
	Facebook  *string   `json:"facebook,omitempty"`
	Campus    string    `json:"campus"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthUser is the resolved identity handed to callers of CurrentUser.
type AuthUser struct {
	User
	IsAdmin bool `json:"is_admin"`
}

type SignUpParams struct {
	Username string
	Password string
	Contact  string
	Facebook string
	Campus   string
}
