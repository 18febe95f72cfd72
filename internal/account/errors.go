package account

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoChanges    = errors.New("no fields to update")
)
