package user

import "time"

// User is an HR operator who may record lifecycle events. Users log in with their phone contact.
type User struct {
	ID           string
	Name         string
	Contact      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
