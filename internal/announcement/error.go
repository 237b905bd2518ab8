package announcement

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
)
