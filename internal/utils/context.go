package utils

import "context"

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	UserRoleKey contextKey = "role"
)

// SetUserContext sets user info into context (called by auth middleware)
func SetUserContext(ctx context.Context, id int, username string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}

// GetUsernameFromContext retrieves the username safely
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// GetUserRoleFromContext retrieves the role, empty when anonymous
func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}
