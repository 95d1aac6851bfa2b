package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserContactExists = errors.New("contact already registered")
)
