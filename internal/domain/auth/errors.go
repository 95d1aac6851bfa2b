package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid contact or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
